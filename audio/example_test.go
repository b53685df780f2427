// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/picosfx/audio"
	"github.com/ik5/picosfx/internal/audiotest"
)

// Example_resampler converts a 44.1kHz tone to the OPL-derived mixer rate.
func Example_resampler() {
	source := audiotest.NewSineSource(44100, 1, 44100, 440.0)
	resampler := audio.NewResampler(source, 49716)

	fmt.Printf("Output sample rate: %d Hz\n", resampler.SampleRate())
	fmt.Printf("Channels: %d\n", resampler.Channels())

	buf := make([]float32, 4096)
	total := 0
	for {
		n, err := resampler.ReadSamples(buf)
		total += n
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	fmt.Printf("Total samples read: %d\n", total)
	// Output:
	// Output sample rate: 49716 Hz
	// Channels: 1
	// Total samples read: 49716
}

// Example_processingChain resamples a 5.1 stream and folds it to mono.
func Example_processingChain() {
	source := audiotest.NewConstantSource(48000, 6, 48000, 0.5)
	mono := audio.NewMonoMixer(audio.NewResampler(source, 8000))

	buf := make([]float32, 4096)
	total := 0
	for {
		n, err := mono.ReadSamples(buf)
		total += n
		if err != nil {
			break
		}
	}

	fmt.Printf("Sample rate: %d Hz, channels: %d\n", mono.SampleRate(), mono.Channels())
	fmt.Printf("Total samples: %d\n", total)
	fmt.Printf("Last value: %.1f\n", buf[0])
	// Output:
	// Sample rate: 8000 Hz, channels: 1
	// Total samples: 8000
	// Last value: 0.5
}

type toneDecoder struct{}

func (toneDecoder) Decode(io.Reader) (audio.Source, error) {
	return audiotest.NewSineSource(16000, 1, 1000, 440.0), nil
}

// Example_registry picks a decoder from the first bytes of a music lump.
func Example_registry() {
	registry := audio.NewRegistry()
	registry.Register("tone", toneDecoder{}, []byte("TONE"))

	name, decoder, ok := registry.Detect([]byte("TONE\x01\x02"))
	fmt.Println(name, ok)

	src, _ := decoder.Decode(nil)
	fmt.Printf("%d Hz, %d channel\n", src.SampleRate(), src.Channels())

	_, _, ok = registry.Detect([]byte("MUS\x1a"))
	fmt.Println(ok)
	// Output:
	// tone true
	// 16000 Hz, 1 channel
	// false
}
