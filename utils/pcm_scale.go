// SPDX-License-Identifier: EPL-2.0

package utils

// PCMScale returns the divisor that maps signed integer PCM of the given bit
// depth onto [-1,1). Unknown depths are treated as 16-bit.
func PCMScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 1 << 7
	case 24:
		return 1 << 23
	case 32:
		return 1 << 31
	default:
		return 1 << 15
	}
}

// IntsToFloat32 normalizes src into dst and returns the number of values
// converted.
func IntsToFloat32(dst []float32, src []int, bitDepth int) int {
	scale := 1 / PCMScale(bitDepth)
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float32(src[i]) * scale
	}
	return n
}
