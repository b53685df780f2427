// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/picosfx/audio"
	"github.com/ik5/picosfx/formats/aiff"
)

// ExampleDecoder_Decode decodes an AIFF music track and resamples it to the
// mixer rate.
func ExampleDecoder_Decode() {
	f, err := os.Open("d_e1m1.aif")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := aiff.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	music := audio.NewResampler(src, 49716)
	fmt.Printf("%d Hz -> %d Hz, %d channels\n", src.SampleRate(), music.SampleRate(), music.Channels())
}
