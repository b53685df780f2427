// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Writer streams interleaved 16-bit PCM into a WAV container. The header
// sizes are patched on Close, so the destination must be seekable.
type Writer struct {
	enc    *wav.Encoder
	buf    *goaudio.IntBuffer
	frames int
	closed bool
}

// NewWriter starts a 16-bit PCM WAV stream on w.
func NewWriter(w io.WriteSeeker, sampleRate, channels int) *Writer {
	format := &goaudio.Format{NumChannels: channels, SampleRate: sampleRate}

	return &Writer{
		enc: wav.NewEncoder(w, sampleRate, 16, channels, formatPCM),
		buf: &goaudio.IntBuffer{Format: format, SourceBitDepth: 16},
	}
}

// WriteInt16 appends interleaved samples.
func (w *Writer) WriteInt16(samples []int16) error {
	if w.closed {
		return ErrWriterClosed
	}
	if len(samples) == 0 {
		return nil
	}

	if cap(w.buf.Data) < len(samples) {
		w.buf.Data = make([]int, len(samples))
	}
	w.buf.Data = w.buf.Data[:len(samples)]
	for i, s := range samples {
		w.buf.Data[i] = int(s)
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	w.frames += len(samples) / w.buf.Format.NumChannels
	return nil
}

// Frames returns the number of frames written so far.
func (w *Writer) Frames() int { return w.frames }

// Close finalizes the header. It does not close the underlying writer.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
