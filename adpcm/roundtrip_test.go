// SPDX-License-Identifier: EPL-2.0

package adpcm_test

import (
	"math"
	"testing"

	"github.com/ik5/picosfx/adpcm"
	"github.com/ik5/picosfx/internal/audiotest"
)

func TestDecodeBlock_TracksEncodedSine(t *testing.T) {
	t.Parallel()

	samples := make([]int16, adpcm.SamplesPerBlock)
	for i := range samples {
		samples[i] = int16(12000 * math.Sin(2*math.Pi*float64(i)/50))
	}

	block := audiotest.EncodeADPCMBlock(samples, 20)
	if len(block) != adpcm.BlockSize {
		t.Fatalf("encoded block is %d bytes, want %d", len(block), adpcm.BlockSize)
	}

	dst := make([]int8, adpcm.SamplesPerBlock)
	n := adpcm.DecodeBlock(dst, block)
	if n != adpcm.SamplesPerBlock {
		t.Fatalf("DecodeBlock() = %d, want %d", n, adpcm.SamplesPerBlock)
	}

	// allow the quantizer a few 8-bit steps while it adapts
	for i := 10; i < n; i++ {
		want := int(samples[i] >> 8)
		if d := int(dst[i]) - want; d < -12 || d > 12 {
			t.Errorf("dst[%d] = %d, want ≈%d", i, dst[i], want)
		}
	}
}
