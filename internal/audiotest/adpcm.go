// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"

	"github.com/ik5/picosfx/adpcm"
)

// EncodeADPCM encodes 16-bit samples into consecutive ADPCM blocks of at most
// adpcm.BlockSize bytes each. The first sample of every block becomes its
// seed. The last block is padded by repeating its final sample so that it
// ends on a whole 4-byte group.
func EncodeADPCM(samples []int16) []byte {
	var out []byte
	for len(samples) > 0 {
		n := min(len(samples), adpcm.SamplesPerBlock)
		out = append(out, EncodeADPCMBlock(samples[:n], 0)...)
		samples = samples[n:]
	}
	return out
}

// EncodeADPCMBlock encodes samples into a single block starting at step
// index. samples[0] is the seed; the rest are rounded up to a multiple of 8.
func EncodeADPCMBlock(samples []int16, index int) []byte {
	if len(samples) == 0 {
		return nil
	}

	codes := len(samples) - 1
	if rem := codes % 8; rem != 0 {
		codes += 8 - rem
	}

	block := make([]byte, 4+codes/2)
	binary.LittleEndian.PutUint16(block, uint16(samples[0]))
	block[2] = byte(index)

	pred := int32(samples[0])
	last := samples[len(samples)-1]
	for i := range codes {
		target := last
		if i+1 < len(samples) {
			target = samples[i+1]
		}

		var code byte
		pred, index, code = encodeNibble(pred, index, int32(target))
		if i%2 == 0 {
			block[4+i/2] = code
		} else {
			block[4+i/2] |= code << 4
		}
	}

	return block
}

func encodeNibble(pred int32, index int, target int32) (int32, int, byte) {
	step := adpcm.Step(index)
	diff := target - pred

	var code byte
	if diff < 0 {
		code = 8
		diff = -diff
	}

	delta := step >> 3
	if diff >= step {
		code |= 4
		diff -= step
		delta += step
	}
	if diff >= step>>1 {
		code |= 2
		diff -= step >> 1
		delta += step >> 1
	}
	if diff >= step>>2 {
		code |= 1
		delta += step >> 2
	}
	if code&8 != 0 {
		delta = -delta
	}

	pred += delta
	if pred > 32767 {
		pred = 32767
	} else if pred < -32768 {
		pred = -32768
	}

	return pred, adpcm.NextIndex(index, code), code
}
