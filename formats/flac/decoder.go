// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/picosfx/audio"
)

// frameReader is the part of flac.Stream the source needs.
type frameReader interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	dec        frameReader
	closer     io.Closer
	sampleRate int
	channels   int
	scale      float32

	cur  *frame.Frame
	pos  int // next sample index within cur
	done bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *source) remaining() int {
	if s.cur == nil || len(s.cur.Subframes) == 0 {
		return 0
	}
	return len(s.cur.Subframes[0].Samples) - s.pos
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	frames := len(dst) / s.channels
	written := 0

	for written < frames {
		if s.remaining() == 0 {
			if s.done {
				return written * s.channels, io.EOF
			}

			f, err := s.dec.ParseNext()
			if err != nil {
				s.done = true
				if errors.Is(err, io.EOF) {
					return written * s.channels, io.EOF
				}
				return written * s.channels, fmt.Errorf("%w", err)
			}
			if len(f.Subframes) < s.channels {
				s.done = true
				return written * s.channels, ErrChannelMismatch
			}

			s.cur = f
			s.pos = 0
			continue
		}

		n := min(frames-written, s.remaining())
		out := dst[written*s.channels:]
		for i := range n {
			for c := range s.channels {
				out[i*s.channels+c] = float32(s.cur.Subframes[c].Samples[s.pos+i]) * s.scale
			}
		}
		s.pos += n
		written += n
	}

	return written * s.channels, nil
}

// Decoder decodes FLAC through mewkiz/flac.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	if info.NChannels == 0 || info.SampleRate == 0 {
		stream.Close()
		return nil, ErrUnsupportedLayout
	}
	if info.BitsPerSample == 0 || info.BitsPerSample > 32 {
		stream.Close()
		return nil, ErrUnsupportedLayout
	}

	return &source{
		dec:        stream,
		closer:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		scale:      1 / float32(uint64(1)<<(info.BitsPerSample-1)),
	}, nil
}
