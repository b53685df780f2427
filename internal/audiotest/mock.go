// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds test doubles shared by the picosfx packages.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates audio for tests. It satisfies audio.Source without
// importing it.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    func(frame int, channel int) float32
	failAfter   int
	err         error
	closed      bool
}

// NewMockSource creates a source of totalFrames frames whose values come from
// waveform.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource creates a source that generates silence.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return 0
	})
}

// NewSineSource creates a source that generates a sine wave on every channel.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a source with a constant value on every channel.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return value
	})
}

// FailAfter makes ReadSamples return err once frames frames were produced.
func (m *MockSource) FailAfter(frames int, err error) *MockSource {
	m.failAfter = frames
	m.err = err
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	limit := m.totalFrames
	if m.err != nil && m.failAfter < limit {
		limit = m.failAfter
	}
	if m.generated >= limit {
		if m.err != nil && m.generated >= m.failAfter {
			return 0, m.err
		}
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, limit-m.generated)
	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += frames

	if m.generated >= m.totalFrames {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}
