// SPDX-License-Identifier: EPL-2.0

package picosfx

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ik5/picosfx/mixer"
)

// Defaults. The sample rate is the OPL2 clock divided by 72, the rate the
// music synthesizer runs at, so music and effects share one output stream.
const (
	DefaultSampleRate = 49716
	DefaultTicRate    = 35
	DefaultVoices     = 16
	DefaultBuffers    = 4
)

// Config controls the sound subsystem. Absent JSON keys keep their defaults.
type Config struct {
	SampleRate int `json:"sample_rate"`
	// TicRate is the game loop frequency; one buffer covers at least a tic.
	TicRate int `json:"tic_rate"`
	Voices  int `json:"voices"`
	Buffers int `json:"buffers"`
	// BufferSamples overrides the frames per buffer; 0 derives it from
	// SampleRate and TicRate.
	BufferSamples int `json:"buffer_samples"`
	// UseSfxPrefix looks effects up as "ds"+name, as Doom does.
	UseSfxPrefix bool `json:"use_sfx_prefix"`
	LowPass      bool `json:"low_pass"`

	Logger *log.Logger `json:"-"`
}

// DefaultConfig returns the defaults, logging to stderr.
func DefaultConfig() *Config {
	return &Config{
		SampleRate:   DefaultSampleRate,
		TicRate:      DefaultTicRate,
		Voices:       DefaultVoices,
		Buffers:      DefaultBuffers,
		UseSfxPrefix: true,
		LowPass:      true,
		Logger:       log.New(os.Stderr, "picosfx: ", log.LstdFlags),
	}
}

// FramesPerBuffer returns BufferSamples, or enough frames to cover one tic.
func (c *Config) FramesPerBuffer() int {
	if c.BufferSamples > 0 {
		return c.BufferSamples
	}
	if c.TicRate <= 0 {
		return 0
	}
	return (c.SampleRate + c.TicRate - 1) / c.TicRate
}

// Validate reports the first setting InitSound could not work with.
func (c *Config) Validate() error {
	switch {
	case c.SampleRate < mixer.MinOutputRate:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	case c.TicRate <= 0 && c.BufferSamples <= 0:
		return fmt.Errorf("%w: tic rate %d", ErrInvalidConfig, c.TicRate)
	case c.BufferSamples < 0:
		return fmt.Errorf("%w: buffer samples %d", ErrInvalidConfig, c.BufferSamples)
	case c.Voices < 1:
		return fmt.Errorf("%w: %d voices", ErrInvalidConfig, c.Voices)
	case c.Buffers < 2:
		return fmt.Errorf("%w: %d buffers, need at least 2", ErrInvalidConfig, c.Buffers)
	}
	return nil
}

// LoadConfig reads a JSON config file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig writes config as indented JSON, replacing path atomically.
func SaveConfig(path string, config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".picosfx-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace config: %w", err)
	}
	return nil
}
