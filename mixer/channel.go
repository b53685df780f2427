// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"github.com/ik5/picosfx/adpcm"
)

const (
	// NormPitch is the pitch value that plays a sound at its own rate.
	NormPitch = 127

	fracBits = 16
)

// Channel is one voice. The zero value is an idle channel.
type Channel struct {
	data    []byte // payload not yet decoded
	isADPCM bool
	offset  uint32 // 16.16 position in decoded
	step    uint32 // 16.16 advance per output frame
	left    uint8
	right   uint8
	alpha   int32 // low-pass weight of the new sample, out of 256
	count   int   // valid samples in decoded, 0 when idle
	decoded [adpcm.SamplesPerBlock]int8
}

// Playing reports whether the channel still has audio to mix.
func (c *Channel) Playing() bool { return c.count != 0 }

// Gains returns the left and right channel gains.
func (c *Channel) Gains() (left, right uint8) { return c.left, c.right }

func (c *Channel) stop() {
	c.count = 0
	c.data = nil
}

// decode replaces the decoded block with the next one from data. An empty or
// corrupt block leaves count at 0.
func (c *Channel) decode() {
	if len(c.data) == 0 {
		c.count = 0
		return
	}

	if c.isADPCM {
		n := min(adpcm.BlockSize, len(c.data))
		c.count = adpcm.DecodeBlock(c.decoded[:], c.data[:n])
		c.data = c.data[n:]
		return
	}

	n := min(len(c.decoded), len(c.data))
	c.count = adpcm.DecodeRaw(c.decoded[:], c.data[:n])
	c.data = c.data[n:]
}

// Step returns the 16.16 increment that resamples rate to outRate. pitch
// scales both rates; NormPitch (or any value <= 0) leaves them as is.
func Step(rate, outRate, pitch int) uint32 {
	if pitch <= 0 || pitch == NormPitch {
		return uint32(uint64(rate) << fracBits / uint64(outRate))
	}

	// TODO: pitch cancels out here; decide whether pitch shifting should
	// scale only the source rate before changing it.
	return uint32(uint64(rate*pitch) << fracBits / uint64(outRate*pitch))
}

// Alpha returns the one-pole low-pass weight for a sound at rate played at
// outRate. The cut-off sits near half the source Nyquist frequency, which
// hides the staircase left by nearest-sample resampling when upsampling.
func Alpha(rate, outRate int) int32 {
	r := uint64(rate)
	return int32(256 * 201 * r / (201*r + 64*uint64(outRate)))
}

// Gains converts a volume (0-127) and stereo separation (0-254, 128 centre)
// into left and right gains. The result is divided by 4 to leave headroom for
// several channels summing into one output sample.
func Gains(vol, sep int) (left, right uint8) {
	l := ((254 - sep) * vol) / 127 / 4
	r := (sep * vol) / 127 / 4
	return clampGain(l), clampGain(r)
}

func clampGain(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
