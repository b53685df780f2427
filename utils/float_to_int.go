// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 converts a sample in [-1, 1] to int16, clamping values
// outside the range. Positive full scale maps to 32767 so the conversion is
// symmetric; -1 maps to -32767.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * math.MaxInt16)
}

// ClampInt16 saturates v to the int16 range.
func ClampInt16(v int32) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

// AddInt16 adds v to s with saturation.
func AddInt16(s int16, v int32) int16 {
	return ClampInt16(int32(s) + v)
}
