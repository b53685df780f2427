// SPDX-License-Identifier: EPL-2.0

package picosfx

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/picosfx/mixer"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Logger == nil {
		t.Error("default logger is nil")
	}
	if !cfg.UseSfxPrefix || !cfg.LowPass {
		t.Error("prefix and low-pass should default on")
	}
}

func TestConfig_FramesPerBuffer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                 string
		rate, tic, overrideN int
		want                 int
	}{
		{"default", DefaultSampleRate, DefaultTicRate, 0, 1421},
		{"exact", 44100, 35, 0, 1260},
		{"rounds up", 11000, 35, 0, 315},
		{"override", 44100, 35, 512, 512},
		{"no tic rate", 44100, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &Config{SampleRate: tt.rate, TicRate: tt.tic, BufferSamples: tt.overrideN}
			if got := cfg.FramesPerBuffer(); got != tt.want {
				t.Errorf("FramesPerBuffer() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"zero rate", func(c *Config) { c.SampleRate = 0 }, false},
		{"tiny rate", func(c *Config) { c.SampleRate = 1 }, false},
		{"lowest rate", func(c *Config) { c.SampleRate = mixer.MinOutputRate }, true},
		{"zero tic rate", func(c *Config) { c.TicRate = 0 }, false},
		{"zero tic rate with override", func(c *Config) { c.TicRate, c.BufferSamples = 0, 256 }, true},
		{"negative override", func(c *Config) { c.BufferSamples = -1 }, false},
		{"no voices", func(c *Config) { c.Voices = 0 }, false},
		{"one buffer", func(c *Config) { c.Buffers = 1 }, false},
		{"two buffers", func(c *Config) { c.Buffers = 2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.SampleRate != DefaultSampleRate || cfg.Voices != DefaultVoices {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_Partial(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sound.json")
	if err := os.WriteFile(path, []byte(`{"voices": 8, "use_sfx_prefix": false}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Voices != 8 || cfg.UseSfxPrefix {
		t.Errorf("voices = %d, prefix = %v, want 8, false", cfg.Voices, cfg.UseSfxPrefix)
	}
	if cfg.SampleRate != DefaultSampleRate || cfg.Buffers != DefaultBuffers {
		t.Error("absent keys lost their defaults")
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"voices": `), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("LoadConfig(truncated JSON) error = nil")
	}

	invalid := filepath.Join(dir, "invalid.json")
	if err := os.WriteFile(invalid, []byte(`{"buffers": 1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadConfig(invalid) error = %v, want ErrInvalidConfig", err)
	}

	if _, err := LoadConfig(dir); err == nil {
		t.Error("LoadConfig(directory) error = nil")
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sound.json")

	cfg := DefaultConfig()
	cfg.SampleRate = 44100
	cfg.BufferSamples = 1024
	cfg.LowPass = false

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}
	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig() over existing file error = %v", err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if got.SampleRate != 44100 || got.BufferSamples != 1024 || got.LowPass {
		t.Errorf("LoadConfig() = %+v, want saved values", got)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d files, want 1", len(entries))
	}
}
