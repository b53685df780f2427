// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"encoding/binary"
	"fmt"
	"sync/atomic"
)

// Producer is the mixer's view of a Pool.
type Producer interface {
	// Take returns an empty buffer, or false when none is free right now.
	Take() (*Buffer, bool)
	// Give queues a filled buffer for playback.
	Give(buf *Buffer)
}

// Pool is a single-producer single-consumer exchange of a fixed set of
// buffers.
type Pool struct {
	free   chan *Buffer
	full   chan *Buffer
	frames int

	// reader state, only touched by the consumer goroutine
	cur *Buffer
	pos int

	underruns atomic.Uint64
}

// NewPool allocates count buffers of frames stereo frames each, all free.
func NewPool(count, frames int) (*Pool, error) {
	if count < 1 || frames < 1 {
		return nil, fmt.Errorf("%d buffers of %d frames: %w", count, frames, ErrInvalidPool)
	}

	p := &Pool{
		free:   make(chan *Buffer, count),
		full:   make(chan *Buffer, count),
		frames: frames,
	}
	for range count {
		p.free <- NewBuffer(frames)
	}

	return p, nil
}

// Frames returns the capacity of every buffer, in frames.
func (p *Pool) Frames() int { return p.frames }

// Size returns the number of buffers owned by the pool.
func (p *Pool) Size() int { return cap(p.free) }

// Take returns a free buffer marked empty, or false when none is free.
func (p *Pool) Take() (*Buffer, bool) {
	select {
	case buf := <-p.free:
		buf.SampleCount = 0
		return buf, true
	default:
		return nil, false
	}
}

// Give never blocks: a buffer is only ever in one queue, so each queue has
// room for all of them.
func (p *Pool) Give(buf *Buffer) {
	p.full <- buf
}

// Next returns the oldest filled buffer, or false when none is queued.
func (p *Pool) Next() (*Buffer, bool) {
	select {
	case buf := <-p.full:
		return buf, true
	default:
		return nil, false
	}
}

// Recycle hands a played buffer back to the producer.
func (p *Pool) Recycle(buf *Buffer) {
	buf.SampleCount = 0
	p.free <- buf
}

// Queued returns the number of filled buffers waiting for the consumer.
func (p *Pool) Queued() int { return len(p.full) }

// Underruns returns how many times Read had to pad with silence.
func (p *Pool) Underruns() uint64 { return p.underruns.Load() }

// Read implements io.Reader over the filled buffers as little-endian int16
// frames. When no audio is queued the rest of dst is filled with silence so a
// device thread never waits on the game loop. Read never returns an error.
func (p *Pool) Read(dst []byte) (int, error) {
	// stay frame aligned
	want := len(dst) - len(dst)%(2*Channels)
	n := 0

	for n < want {
		if p.cur == nil {
			buf, ok := p.Next()
			if !ok {
				clear(dst[n:want])
				p.underruns.Add(1)
				return want, nil
			}
			p.cur, p.pos = buf, 0
		}

		samples := p.cur.Frames()
		for p.pos < len(samples) && n < want {
			binary.LittleEndian.PutUint16(dst[n:], uint16(samples[p.pos]))
			p.pos++
			n += 2
		}

		if p.pos >= len(samples) {
			p.Recycle(p.cur)
			p.cur = nil
		}
	}

	return n, nil
}
