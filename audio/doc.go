// SPDX-License-Identifier: EPL-2.0

// Package audio holds the float32 streaming stages behind the music
// generator: the Source contract, a Resampler, a MonoMixer and a Registry of
// decoders.
//
// # Sources
//
// A Source yields interleaved float32 samples in [-1, 1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Decoders in the formats packages return Sources, and Resampler and
// MonoMixer wrap one, so stages stack freely. ReadSamples only returns whole
// frames. At the end of the stream it returns io.EOF, possibly together with
// the last samples, and keeps returning io.EOF after that:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    consume(buf[:n])
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// # Rate conversion
//
//	res := audio.NewResampler(src, 49716)
//
// Output frame k sits at source position k*srcRate/dstRate, tracked in
// integers, so one second in is exactly one second out. Values between
// source frames come from Catmull-Rom interpolation. Downsampling runs a
// one-pole low-pass over the input first.
//
// # Channel folding
//
// MonoMixer averages all channels of a frame into one. The music generator
// folds anything that is neither mono nor stereo through it.
//
// # Detection
//
// Music lumps have no file name, so the Registry recognizes formats by their
// leading bytes:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{}, []byte("RIFF"))
//	name, dec, ok := reg.Detect(lumpData)
//
// Resampler and MonoMixer allocate their buffers up front; ReadSamples does
// not allocate.
package audio
