// SPDX-License-Identifier: EPL-2.0

package picosfx

import (
	"fmt"
	"log"

	"github.com/ik5/picosfx/lump"
	"github.com/ik5/picosfx/mixer"
	"github.com/ik5/picosfx/sink"
)

// NoChannel is returned by StartSound when the request was dropped.
const NoChannel = -1

// Device is the output side of the buffer pool. Open hands the device the
// pool it consumes from; the device must only return buffers through it.
type Device interface {
	Open(pool *sink.Pool, format sink.Format) error
	Close() error
}

// Sound is the game-facing sound effects subsystem.
type Sound struct {
	cfg    Config
	store  lump.Store
	dev    Device
	logger *log.Logger

	pool  *sink.Pool
	mixer *mixer.Mixer
	ready bool
}

// New creates a Sound that reads effect lumps from store and plays them on
// dev. Nothing is allocated or opened until InitSound.
func New(cfg *Config, store lump.Store, dev Device) *Sound {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Sound{
		cfg:    *cfg,
		store:  store,
		dev:    dev,
		logger: logger,
	}
}

// InitSound allocates the buffers and the mixer and opens the device. On
// failure sound stays disabled and every other call is a no-op.
func (s *Sound) InitSound() error {
	if s.ready {
		return nil
	}

	if err := s.init(); err != nil {
		s.logger.Printf("init: %v; sound disabled", err)
		return fmt.Errorf("%w: %w", ErrInitFailed, err)
	}

	s.ready = true
	return nil
}

func (s *Sound) init() error {
	if err := s.cfg.Validate(); err != nil {
		return err
	}
	if s.dev == nil {
		return ErrNoDevice
	}

	frames := s.cfg.FramesPerBuffer()
	pool, err := sink.NewPool(s.cfg.Buffers, frames)
	if err != nil {
		return err
	}

	mix, err := mixer.New(mixer.Options{
		Voices:     s.cfg.Voices,
		OutputRate: s.cfg.SampleRate,
		LowPass:    s.cfg.LowPass,
	})
	if err != nil {
		return err
	}

	if err := s.dev.Open(pool, sink.Stereo(s.cfg.SampleRate)); err != nil {
		return fmt.Errorf("opening device: %w", err)
	}

	s.pool = pool
	s.mixer = mix
	s.logger.Printf("init: %d Hz, %d voices, %d buffers of %d frames",
		s.cfg.SampleRate, s.cfg.Voices, s.cfg.Buffers, frames)

	return nil
}

// ShutdownSound stops every channel and closes the device.
func (s *Sound) ShutdownSound() {
	if !s.ready {
		return
	}

	s.mixer.StopAll()
	if err := s.dev.Close(); err != nil {
		s.logger.Printf("shutdown: %v", err)
	}

	s.ready = false
	s.pool = nil
	s.mixer = nil
	s.logger.Printf("shutdown: done")
}

// IsInitialized reports whether InitSound succeeded and sound is running.
func (s *Sound) IsInitialized() bool { return s.ready }

// Voices returns the number of channels StartSound accepts.
func (s *Sound) Voices() int { return s.cfg.Voices }

// GetLumpNumberFor returns the lump holding the samples for sfx, or -1.
func (s *Sound) GetLumpNumberFor(sfx *lump.SfxInfo) int {
	num, ok := lump.Resolve(s.store, sfx, s.cfg.UseSfxPrefix)
	if !ok {
		return -1
	}
	return num
}

// UpdateSound mixes into every free buffer and queues it for the device. It
// returns how many buffers were mixed; 0 means the device is still busy.
func (s *Sound) UpdateSound() int {
	if !s.ready {
		return 0
	}

	mixed := 0
	for {
		buf, ok := s.pool.Take()
		if !ok {
			return mixed
		}
		s.mixer.Mix(buf)
		s.pool.Give(buf)
		mixed++
	}
}

// UpdateSoundParams changes the volume (0-127) and separation (0-254) of a
// playing channel.
func (s *Sound) UpdateSoundParams(ch, vol, sep int) {
	if !s.ready {
		return
	}
	s.mixer.UpdateParams(ch, vol, sep)
}

// StartSound plays sfx on channel ch, cutting what played there. It returns
// ch, or NoChannel when the request was dropped. A lump that cannot be found
// leaves the channel untouched; a lump with a bad header leaves it silent.
func (s *Sound) StartSound(sfx *lump.SfxInfo, ch, vol, sep, pitch int) int {
	if !s.ready || sfx == nil {
		return NoChannel
	}
	if s.mixer.Channel(ch) == nil {
		return NoChannel
	}

	num := s.GetLumpNumberFor(sfx)
	if num < 0 {
		s.logger.Printf("sound %q: %v", lump.LumpName(sfx, s.cfg.UseSfxPrefix), lump.ErrNotFound)
		return NoChannel
	}
	sfx.Base().LumpNum = num

	data, ok := s.store.Lump(num)
	if !ok {
		s.logger.Printf("sound %q: lump %d: %v", sfx.Base().Name, num, lump.ErrNotFound)
		return NoChannel
	}

	if err := s.mixer.Start(ch, data, vol, sep, pitch); err != nil {
		s.logger.Printf("sound %q: %v", sfx.Base().Name, err)
		return NoChannel
	}

	return ch
}

// StopSound silences channel ch.
func (s *Sound) StopSound(ch int) {
	if !s.ready {
		return
	}
	s.mixer.Stop(ch)
}

// IsPlaying reports whether channel ch still has audio to play.
func (s *Sound) IsPlaying(ch int) bool {
	if !s.ready {
		return false
	}
	return s.mixer.IsPlaying(ch)
}

// PrecacheSounds does nothing: lumps are decoded a block at a time while
// they play.
func (s *Sound) PrecacheSounds([]*lump.SfxInfo) {}

// SetMusicGenerator installs g as the base of every mixed buffer. nil
// restores silence.
func (s *Sound) SetMusicGenerator(g mixer.MusicGenerator) {
	if !s.ready {
		return
	}

	had := s.mixer.HasMusicGenerator()
	s.mixer.SetMusicGenerator(g)

	switch {
	case g != nil && !had:
		s.logger.Printf("music generator installed")
	case g == nil && had:
		s.logger.Printf("music generator removed")
	}
}

// FadeTo starts a fade in (true) or out (false) of the whole mix.
func (s *Sound) FadeTo(in bool) {
	if !s.ready {
		return
	}
	s.mixer.FadeTo(in)
}

// IsFading reports whether a fade started by FadeTo is still ramping.
func (s *Sound) IsFading() bool {
	if !s.ready {
		return false
	}
	return s.mixer.IsFading()
}
