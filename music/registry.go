// SPDX-License-Identifier: EPL-2.0

package music

import (
	"github.com/ik5/picosfx/audio"
	"github.com/ik5/picosfx/formats/aiff"
	"github.com/ik5/picosfx/formats/flac"
	"github.com/ik5/picosfx/formats/mp3"
	"github.com/ik5/picosfx/formats/vorbis"
	"github.com/ik5/picosfx/formats/wav"
)

// DefaultRegistry returns a registry holding every decoder in formats.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{}, []byte("RIFF"))
	reg.Register("ogg", vorbis.Decoder{}, []byte("OggS"))
	reg.Register("flac", flac.Decoder{}, []byte("fLaC"))
	reg.Register("aiff", aiff.Decoder{}, []byte("FORM"))
	// ID3v2 tag, or a bare MPEG-1 Layer III frame sync
	reg.Register("mp3", mp3.Decoder{},
		[]byte("ID3"),
		[]byte{0xFF, 0xFB}, []byte{0xFF, 0xFA},
		[]byte{0xFF, 0xF3}, []byte{0xFF, 0xF2},
	)

	return reg
}
