// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ik5/picosfx/formats/wav"
	"github.com/ik5/picosfx/sink"
)

// Writer is a sound device that writes everything mixed into a WAV stream.
type Writer struct {
	dst io.WriteSeeker

	mu     sync.Mutex
	pool   *sink.Pool
	wav    *wav.Writer
	frames int
}

// New creates a capture device writing to dst. dst must stay open until
// Close returns.
func New(dst io.WriteSeeker) *Writer {
	return &Writer{dst: dst}
}

// Open starts a WAV stream in format f fed from pool.
func (w *Writer) Open(pool *sink.Pool, f sink.Format) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pool != nil {
		return ErrAlreadyOpen
	}

	w.pool = pool
	w.wav = wav.NewWriter(w.dst, f.SampleRate, f.Channels)
	w.frames = 0
	return nil
}

// Drain writes every queued buffer and recycles it. It returns the number of
// frames written.
func (w *Writer) Drain() (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.drain()
}

func (w *Writer) drain() (int, error) {
	if w.pool == nil {
		return 0, ErrNotOpen
	}

	written := 0
	for {
		buf, ok := w.pool.Next()
		if !ok {
			return written, nil
		}

		frames := buf.SampleCount
		err := w.wav.WriteInt16(buf.Frames())
		w.pool.Recycle(buf)
		if err != nil {
			return written, fmt.Errorf("capture: %w", err)
		}
		written += frames
		w.frames += frames
	}
}

// Run drains the pool every interval until ctx is done.
func (w *Writer) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := w.Drain(); err != nil {
				return err
			}
		}
	}
}

// Frames returns the number of frames captured so far.
func (w *Writer) Frames() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.frames
}

// Close drains what is left and finalizes the WAV header. It does not close
// the destination.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pool == nil {
		return nil
	}

	_, err := w.drain()
	if cerr := w.wav.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("capture: %w", cerr)
	}
	w.pool = nil
	w.wav = nil

	return err
}
