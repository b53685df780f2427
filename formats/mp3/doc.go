// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 music through github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo, so every Source from this package
// reports two channels whatever the file holds. Samples come out as float32
// in [-1,1).
//
//	src, err := mp3.Decoder{}.Decode(bytes.NewReader(lumpData))
//	if err != nil {
//	    return err
//	}
//	music := audio.NewResampler(src, 49716)
//
// A decoder error mid-stream is returned once, together with the samples
// decoded before it. Later reads return io.EOF.
package mp3
