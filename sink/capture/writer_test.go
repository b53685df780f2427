// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ik5/picosfx/formats/wav"
	"github.com/ik5/picosfx/internal/audiotest"
	"github.com/ik5/picosfx/sink"
)

// fill queues one buffer whose left samples count up from start.
func fill(t *testing.T, pool *sink.Pool, start int) {
	t.Helper()

	buf, ok := pool.Take()
	if !ok {
		t.Fatal("Take() found no free buffer")
	}
	for f := range buf.MaxSampleCount {
		buf.Samples[2*f] = int16(start + f)
		buf.Samples[2*f+1] = int16(-(start + f))
	}
	buf.SampleCount = buf.MaxSampleCount
	pool.Give(buf)
}

func decode(t *testing.T, data []byte) []float32 {
	t.Helper()

	src, err := wav.Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 49716 || src.Channels() != 2 {
		t.Fatalf("got %d Hz %d ch, want 49716 Hz 2 ch", src.SampleRate(), src.Channels())
	}

	var out []float32
	buf := make([]float32, 256)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestWriter_DrainRecyclesAndWrites(t *testing.T) {
	t.Parallel()

	pool, err := sink.NewPool(3, 10)
	if err != nil {
		t.Fatal(err)
	}

	var sb audiotest.SeekBuffer
	w := New(&sb)
	if err := w.Open(pool, sink.Stereo(49716)); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	fill(t, pool, 0)
	fill(t, pool, 10)
	if _, ok := pool.Take(); !ok {
		t.Fatal("third buffer should still be free")
	}

	n, err := w.Drain()
	if err != nil || n != 20 {
		t.Fatalf("Drain() = %d, %v, want 20, nil", n, err)
	}
	if pool.Queued() != 0 {
		t.Errorf("Queued() = %d after Drain, want 0", pool.Queued())
	}

	// both drained buffers are free again
	for range 2 {
		if _, ok := pool.Take(); !ok {
			t.Fatal("drained buffer was not recycled")
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if w.Frames() != 20 {
		t.Errorf("Frames() = %d, want 20", w.Frames())
	}

	samples := decode(t, sb.Bytes())
	if len(samples) != 40 {
		t.Fatalf("captured %d samples, want 40", len(samples))
	}
	for f := range 20 {
		if got := int(samples[2*f] * 32768); got != f {
			t.Errorf("frame %d left = %d, want %d", f, got, f)
		}
	}
}

func TestWriter_CloseDrainsRemainder(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "capture.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	pool, _ := sink.NewPool(2, 16)
	w := New(f)
	if err := w.Open(pool, sink.Stereo(49716)); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	fill(t, pool, 100)
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(decode(t, data)); got != 32 {
		t.Errorf("captured %d samples, want 32", got)
	}
}

func TestWriter_NotOpen(t *testing.T) {
	t.Parallel()

	var sb audiotest.SeekBuffer
	w := New(&sb)

	if _, err := w.Drain(); !errors.Is(err, ErrNotOpen) {
		t.Errorf("Drain() error = %v, want ErrNotOpen", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}

	pool, _ := sink.NewPool(1, 4)
	if err := w.Open(pool, sink.Stereo(49716)); err != nil {
		t.Fatal(err)
	}
	if err := w.Open(pool, sink.Stereo(49716)); !errors.Is(err, ErrAlreadyOpen) {
		t.Errorf("second Open() error = %v, want ErrAlreadyOpen", err)
	}
}

func TestWriter_Run(t *testing.T) {
	t.Parallel()

	pool, _ := sink.NewPool(2, 8)
	var sb audiotest.SeekBuffer
	w := New(&sb)
	if err := w.Open(pool, sink.Stereo(49716)); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, time.Millisecond) }()

	fill(t, pool, 0)

	deadline := time.After(5 * time.Second)
	for w.Frames() < 8 {
		select {
		case <-deadline:
			t.Fatal("Run() did not drain the pool")
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
