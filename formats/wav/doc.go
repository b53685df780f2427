// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files through github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts integer PCM at 8, 16, 24 or 32 bits, any channel count and
// any sample rate. Samples come out as float32 in [-1,1):
//
//	source, err := wav.Decoder{}.Decode(bytes.NewReader(lumpData))
//	if err != nil {
//	    return err
//	}
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Music lumps are handed over as byte slices, so the reader is normally
// seekable already. Other readers are buffered in memory first.
//
// # Writing
//
// Writer streams interleaved 16-bit samples, such as the stereo buffers the
// mixer produces, and fixes up the header sizes on Close:
//
//	f, _ := os.Create("capture.wav")
//	w := wav.NewWriter(f, 49716, 2)
//	_ = w.WriteInt16(buf.Samples[:2*buf.SampleCount])
//	_ = w.Close()
//	_ = f.Close()
//
// # Errors
//
//   - ErrNotWavFile: the input has no RIFF/WAVE header
//   - ErrOnlyPCMSupported: float or compressed data, or an odd bit depth
//   - ErrUnsupportedWavLayout: the fmt chunk is unreadable or empty
//   - ErrWriterClosed: WriteInt16 after Close
package wav
