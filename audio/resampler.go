// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/picosfx/utils"
)

// Resampler streams src at another sample rate using cubic interpolation.
// It preserves the channel count and runs a one-pole low-pass over the input
// when downsampling.
type Resampler struct {
	src      Source
	srcRate  int64
	dstRate  int
	channels int

	// frames[0..3] hold source frames t-1, t, t+1, t+2; valid marks the ones
	// that came from the source rather than edge padding.
	frames [4][]float32
	valid  [4]bool
	primed bool
	cur    int64 // source index of frames[1]
	out    int64 // output frames produced so far

	in    []float32
	inPos int
	eof   bool
	err   error

	useFilter   bool
	filterAlpha float32
	filterState []float32
	seeded      bool // filterState holds a real frame
}

// NewResampler wraps src so it reads at dstRate.
func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:         src,
		srcRate:     int64(src.SampleRate()),
		dstRate:     dstRate,
		channels:    channels,
		in:          make([]float32, 0, 4096-4096%channels),
		useFilter:   src.SampleRate() > dstRate,
		filterAlpha: 0.5,
		filterState: make([]float32, channels),
	}
	for i := range r.frames {
		r.frames[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// nextFrame copies the next source frame into dst.
func (r *Resampler) nextFrame(dst []float32) bool {
	for r.inPos+r.channels > len(r.in) {
		if r.eof {
			return false
		}

		n, err := r.src.ReadSamples(r.in[:cap(r.in)])
		r.in = r.in[:n-n%r.channels]
		r.inPos = 0

		if err != nil {
			r.eof = true
			if !errors.Is(err, io.EOF) {
				r.err = fmt.Errorf("%w", err)
			}
		}
		if n == 0 && err == nil {
			// a source with nothing ready yet; try again on the next read
			return false
		}
	}

	copy(dst, r.in[r.inPos:r.inPos+r.channels])
	r.inPos += r.channels

	if r.useFilter {
		if !r.seeded {
			// start the filter from the first frame instead of silence
			copy(r.filterState, dst)
			r.seeded = true
		}
		for c := range dst {
			dst[c] = r.filterAlpha*dst[c] + (1-r.filterAlpha)*r.filterState[c]
			r.filterState[c] = dst[c]
		}
	}
	return true
}

// shift drops frames[0] and pulls a new frames[3], repeating frames[2] once
// the source runs out.
func (r *Resampler) shift() {
	first := r.frames[0]
	copy(r.frames[:], r.frames[1:])
	copy(r.valid[:], r.valid[1:])
	r.frames[3] = first

	r.valid[3] = r.nextFrame(r.frames[3])
	if !r.valid[3] {
		copy(r.frames[3], r.frames[2])
	}
}

func (r *Resampler) prime() bool {
	if !r.nextFrame(r.frames[1]) {
		return false
	}
	r.valid[1] = true
	copy(r.frames[0], r.frames[1])

	for i := 2; i < 4; i++ {
		r.valid[i] = r.nextFrame(r.frames[i])
		if !r.valid[i] {
			copy(r.frames[i], r.frames[i-1])
		}
	}

	r.primed = true
	return true
}

func (r *Resampler) end(written int) (int, error) {
	if !r.eof {
		return written * r.channels, nil
	}
	if r.err != nil {
		return written * r.channels, r.err
	}
	return written * r.channels, io.EOF
}

// ReadSamples produces samples at the destination rate. len(dst) must be a
// multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed && !r.prime() {
		return r.end(0)
	}

	want := len(dst) / r.channels
	written := 0
	dstRate := int64(r.dstRate)
	for written < want {
		// output frame k sits at source position k*srcRate/dstRate, kept
		// exact so the frame count does not drift
		pos := r.out * r.srcRate
		for pos/dstRate > r.cur {
			r.cur++
			r.shift()
		}
		if !r.valid[1] {
			return r.end(written)
		}

		x := float32(pos%dstRate) / float32(dstRate)
		out := dst[written*r.channels:]
		for c := range r.channels {
			out[c] = utils.CubicInterpolate(r.frames[0][c], r.frames[1][c], r.frames[2][c], r.frames[3][c], x)
		}

		written++
		r.out++
	}

	return written * r.channels, nil
}
