// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/picosfx/audio"
)

// maxEmptyReads bounds how often a Read may come back empty before the
// stream is treated as stalled.
const maxEmptyReads = 64

// oggReader is the part of oggvorbis.Reader the source needs. Read fills
// interleaved values and returns how many it wrote.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	done       bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}

	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, nil
	}

	for range maxEmptyReads {
		n, err := s.dec.Read(dst[:want])
		n -= n % s.channels

		switch {
		case err == nil && n == 0:
			// page boundary without audio
			continue
		case err == nil:
			return n, nil
		case errors.Is(err, io.EOF):
			s.done = true
			return n, io.EOF
		default:
			s.done = true
			return n, fmt.Errorf("%w", err)
		}
	}

	s.done = true
	return 0, io.ErrNoProgress
}

// Decoder decodes Ogg Vorbis through jfreymuth/oggvorbis.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
