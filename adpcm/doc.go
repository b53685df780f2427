// SPDX-License-Identifier: EPL-2.0

// Package adpcm decodes the two sound effect payload encodings understood by
// the mixer: 4-bit IMA ADPCM blocks and raw signed 8-bit PCM.
//
// Both decoders are stateless. They read one block of input and write signed
// 8-bit samples into a caller supplied buffer, returning the number of samples
// produced. A return of 0 means the block carries no usable audio and the
// caller should treat its stream as finished.
//
// # Block Layout
//
// An ADPCM block is at most BlockSize bytes:
//
//	offset 0: int16 little-endian seed sample
//	offset 2: step table index (0-88)
//	offset 3: reserved, must be 0
//	offset 4: 4-bit codes, two per byte, low nibble first
//
// The seed is emitted as the first sample and every whole 4-byte group of
// codes adds 8 more, so a full block decodes to SamplesPerBlock samples.
//
// Output keeps only the high byte of the 16-bit predictor. The mixer scales
// samples by an 8-bit gain, so the lost precision is inaudible next to the
// CPU saved by mixing bytes.
package adpcm
