// SPDX-License-Identifier: EPL-2.0

package sink

// Channels is the number of interleaved output channels.
const Channels = 2

// Format describes the output stream. Samples are always signed 16-bit.
type Format struct {
	SampleRate int
	Channels   int
}

// Stereo returns the stereo format at rate.
func Stereo(rate int) Format {
	return Format{SampleRate: rate, Channels: Channels}
}

// BytesPerFrame returns the size of one interleaved frame.
func (f Format) BytesPerFrame() int { return 2 * f.Channels }

// Buffer is an interleaved stereo int16 buffer.
//
// Sample counts are in frames: one frame is a left and right sample.
type Buffer struct {
	Samples        []int16
	MaxSampleCount int
	SampleCount    int
}

// NewBuffer allocates a buffer holding frames stereo frames.
func NewBuffer(frames int) *Buffer {
	return &Buffer{
		Samples:        make([]int16, frames*Channels),
		MaxSampleCount: frames,
	}
}

// Frames returns the filled part of the buffer.
func (b *Buffer) Frames() []int16 {
	return b.Samples[:b.SampleCount*Channels]
}

// Clear zeroes the whole buffer and marks it empty.
func (b *Buffer) Clear() {
	clear(b.Samples)
	b.SampleCount = 0
}
