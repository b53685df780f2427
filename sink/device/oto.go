// SPDX-License-Identifier: EPL-2.0

package device

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/picosfx/sink"
)

// oto context singleton
var (
	otoCtx      *oto.Context
	otoRate     int
	otoInitOnce sync.Once
	otoInitErr  error
)

func ensureContext(rate int, bufferSize time.Duration) (*oto.Context, error) {
	otoInitOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   rate,
			ChannelCount: sink.Channels,
			Format:       oto.FormatSignedInt16LE,
			BufferSize:   bufferSize,
		}
		var ready chan struct{}
		otoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr != nil {
			return
		}
		otoRate = rate
		<-ready
	})

	if otoInitErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAvailable, otoInitErr)
	}
	if otoRate != rate {
		return nil, fmt.Errorf("%w: have %d Hz, want %d Hz", ErrRateMismatch, otoRate, rate)
	}
	return otoCtx, nil
}

// Device is a sound output on the shared oto context.
type Device struct {
	logger     *log.Logger
	bufferSize time.Duration

	mu     sync.Mutex
	player *oto.Player
}

// New creates a closed device. bufferSize is the OS-side buffer requested
// when the shared context is first created; zero leaves oto's default.
func New(logger *log.Logger, bufferSize time.Duration) *Device {
	if logger == nil {
		logger = log.Default()
	}
	return &Device{logger: logger, bufferSize: bufferSize}
}

// Validate reports whether f can be played.
func Validate(f sink.Format) error {
	if f.Channels != sink.Channels || f.SampleRate <= 0 {
		return fmt.Errorf("%w: %d Hz, %d channels", ErrBadFormat, f.SampleRate, f.Channels)
	}
	return nil
}

// Open starts pulling audio from pool. oto reads on its own goroutine;
// pool.Read pads with silence whenever the mixer falls behind.
func (d *Device) Open(pool *sink.Pool, f sink.Format) error {
	if err := Validate(f); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.player != nil {
		return ErrAlreadyOpen
	}

	ctx, err := ensureContext(f.SampleRate, d.bufferSize)
	if err != nil {
		return err
	}

	player := ctx.NewPlayer(pool)
	// keep about one mix buffer inside oto so latency stays near a tic
	player.SetBufferSize(pool.Frames() * f.BytesPerFrame())
	player.Play()

	d.player = player
	d.logger.Printf("device: playing %d Hz stereo, %d buffers of %d frames",
		f.SampleRate, pool.Size(), pool.Frames())

	return nil
}

// Close stops playback. The shared context stays alive for later devices.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.player == nil {
		return nil
	}

	err := d.player.Close()
	d.player = nil
	d.logger.Printf("device: closed")

	if err != nil {
		return fmt.Errorf("closing player: %w", err)
	}
	return nil
}
