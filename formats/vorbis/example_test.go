// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/picosfx/audio"
	"github.com/ik5/picosfx/formats/vorbis"
)

// ExampleDecoder_Decode decodes an Ogg Vorbis music track and resamples it to the
// mixer rate.
func ExampleDecoder_Decode() {
	f, err := os.Open("d_e1m1.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := vorbis.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	music := audio.NewResampler(src, 49716)
	fmt.Printf("%d Hz -> %d Hz, %d channels\n", src.SampleRate(), music.SampleRate(), music.Channels())
}
