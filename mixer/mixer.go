// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"

	"github.com/ik5/picosfx/lump"
	"github.com/ik5/picosfx/sink"
	"github.com/ik5/picosfx/utils"
)

// MusicGenerator writes the base layer of an output buffer before effects
// are mixed on top. It receives a silent buffer and should fill all
// MaxSampleCount frames.
type MusicGenerator func(buf *sink.Buffer)

// Options configures a Mixer.
type Options struct {
	// Voices is the number of channels that can play at once.
	Voices int
	// OutputRate is the output sample rate in Hz.
	OutputRate int
	// LowPass smooths each channel with a one-pole filter.
	LowPass bool
}

// Mixer owns the channels, the fade and the music generator.
type Mixer struct {
	channels []Channel
	rate     int
	lowPass  bool
	fade     Fade
	music    MusicGenerator
}

// MinOutputRate is the lowest output rate New accepts. Lower rates make the
// 16.16 step of a high-rate lump too large for the cursor.
const MinOutputRate = 1000

// New creates a mixer with opts.Voices idle channels.
func New(opts Options) (*Mixer, error) {
	if opts.Voices < 1 || opts.OutputRate < MinOutputRate {
		return nil, fmt.Errorf("%d voices at %d Hz: %w", opts.Voices, opts.OutputRate, ErrInvalidOptions)
	}

	return &Mixer{
		channels: make([]Channel, opts.Voices),
		rate:     opts.OutputRate,
		lowPass:  opts.LowPass,
	}, nil
}

// Voices returns the number of channels.
func (m *Mixer) Voices() int { return len(m.channels) }

// OutputRate returns the output sample rate.
func (m *Mixer) OutputRate() int { return m.rate }

func (m *Mixer) channel(ch int) (*Channel, error) {
	if ch < 0 || ch >= len(m.channels) {
		return nil, fmt.Errorf("channel %d of %d: %w", ch, len(m.channels), ErrBadChannel)
	}
	return &m.channels[ch], nil
}

// Channel returns channel ch for inspection, or nil when out of range.
func (m *Mixer) Channel(ch int) *Channel {
	c, err := m.channel(ch)
	if err != nil {
		return nil
	}
	return c
}

// Start cuts whatever plays on ch and starts the sound lump data on it.
//
// data must stay unchanged while the sound plays. A header error leaves the
// channel idle. A lump whose first block is corrupt is accepted but the
// channel is idle straight away.
func (m *Mixer) Start(ch int, data []byte, vol, sep, pitch int) error {
	c, err := m.channel(ch)
	if err != nil {
		return err
	}

	c.stop()

	h, payload, err := lump.Parse(data)
	if err != nil {
		return fmt.Errorf("channel %d: %w", ch, err)
	}

	c.data = payload
	c.isADPCM = h.IsADPCM()
	c.step = Step(h.SampleRate, m.rate, pitch)
	c.alpha = Alpha(h.SampleRate, m.rate)
	c.offset = 0
	c.decode()

	m.UpdateParams(ch, vol, sep)
	return nil
}

// UpdateParams sets the volume (0-127) and separation (0-254) of ch.
func (m *Mixer) UpdateParams(ch, vol, sep int) {
	c, err := m.channel(ch)
	if err != nil {
		return
	}
	c.left, c.right = Gains(vol, sep)
}

// Stop silences ch.
func (m *Mixer) Stop(ch int) {
	if c, err := m.channel(ch); err == nil {
		c.stop()
	}
}

// StopAll silences every channel.
func (m *Mixer) StopAll() {
	for i := range m.channels {
		m.channels[i].stop()
	}
}

// IsPlaying reports whether ch has audio left.
func (m *Mixer) IsPlaying(ch int) bool {
	c, err := m.channel(ch)
	if err != nil {
		return false
	}
	return c.Playing()
}

// Active returns the number of playing channels.
func (m *Mixer) Active() int {
	n := 0
	for i := range m.channels {
		if m.channels[i].Playing() {
			n++
		}
	}
	return n
}

// SetMusicGenerator installs g as the base layer of every buffer; nil
// restores silence.
func (m *Mixer) SetMusicGenerator(g MusicGenerator) {
	m.music = g
}

// HasMusicGenerator reports whether a music generator is installed.
func (m *Mixer) HasMusicGenerator() bool { return m.music != nil }

// FadeTo starts a fade in or out of the whole mix.
func (m *Mixer) FadeTo(in bool) { m.fade.Start(in) }

// IsFading reports whether a fade ramp is in progress.
func (m *Mixer) IsFading() bool { return m.fade.IsFading() }

// FadeState returns the state of the fade.
func (m *Mixer) FadeState() FadeState { return m.fade.State() }

// Mix fills buf: music generator or silence first, every playing channel on
// top, then the fade.
func (m *Mixer) Mix(buf *sink.Buffer) {
	clear(buf.Samples)
	if m.music != nil {
		m.music(buf)
	}

	out := buf.Samples[:buf.MaxSampleCount*sink.Channels]
	for i := range m.channels {
		if c := &m.channels[i]; c.Playing() {
			m.mixChannel(c, out)
		}
	}

	buf.SampleCount = buf.MaxSampleCount
	m.fade.Apply(buf.Frames())
}

// mixChannel adds c onto out, decoding further blocks as it goes. It stops
// the channel when the sound runs out.
func (m *Mixer) mixChannel(c *Channel, out []int16) {
	left, right := int32(c.left), int32(c.right)
	alpha := c.alpha
	beta := 256 - alpha
	end := uint32(c.count) << fracBits

	sample := int32(c.decoded[c.offset>>fracBits])
	for s := 0; s+1 < len(out); s += 2 {
		raw := int32(c.decoded[c.offset>>fracBits])
		if m.lowPass {
			sample = (beta*sample + alpha*raw) / 256
		} else {
			sample = raw
		}

		out[s] = utils.AddInt16(out[s], sample*left)
		out[s+1] = utils.AddInt16(out[s+1], sample*right)

		c.offset += c.step
		if c.offset >= end {
			c.offset -= end
			c.decode()
			end = uint32(c.count) << fracBits
			if c.offset >= end {
				c.stop()
				return
			}
		}
	}
}
