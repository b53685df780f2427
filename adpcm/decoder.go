// SPDX-License-Identifier: EPL-2.0

package adpcm

import "encoding/binary"

// DecodeBlock decodes one ADPCM block from src into dst and returns the
// number of samples written.
//
// It returns 0 if src is shorter than the 4-byte header, the header step
// index is out of range, the reserved header byte is set, or dst cannot hold
// the decoded block. Bytes after the last whole 4-byte group are ignored.
func DecodeBlock(dst []int8, src []byte) int {
	if len(src) < headerSize {
		return 0
	}

	pred := int32(int16(binary.LittleEndian.Uint16(src)))
	index := int(src[2])
	if index > MaxIndex || src[3] != 0 {
		return 0
	}

	chunks := (len(src) - headerSize) / chunkSize
	count := 1 + chunks*samplesPerChunk
	if count > len(dst) {
		return 0
	}

	dst[0] = int8(pred >> 8)
	out := dst[1:count]
	for i, b := range src[headerSize : headerSize+chunks*chunkSize] {
		pred, index = expand(pred, index, b&0x0f)
		out[2*i] = int8(pred >> 8)
		pred, index = expand(pred, index, b>>4)
		out[2*i+1] = int8(pred >> 8)
	}

	return count
}

// expand applies one 4-bit code to the predictor.
func expand(pred int32, index int, code byte) (int32, int) {
	step := stepTable[index]
	delta := step >> 3
	if code&1 != 0 {
		delta += step >> 2
	}
	if code&2 != 0 {
		delta += step >> 1
	}
	if code&4 != 0 {
		delta += step
	}
	if code&8 != 0 {
		delta = -delta
	}

	return clampSample(pred + delta), NextIndex(index, code)
}

// DecodeRaw copies signed 8-bit PCM from src into dst and returns the number
// of samples written.
func DecodeRaw(dst []int8, src []byte) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = int8(src[i])
	}
	return n
}

func clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i > MaxIndex {
		return MaxIndex
	}
	return i
}

func clampSample(v int32) int32 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return v
}
