// SPDX-License-Identifier: EPL-2.0

package audiotest

import "encoding/binary"

// Lump tags, mirrored here so tests can build lumps with unknown tags too.
const (
	TagADPCM   uint16 = 0x8003
	TagSigned8 uint16 = 0x0003
)

// MakeLump builds a sound lump: the 8-byte header followed by payload.
func MakeLump(tag uint16, rate uint16, declared uint32, payload []byte) []byte {
	data := make([]byte, 8+len(payload))
	binary.LittleEndian.PutUint16(data[0:], tag)
	binary.LittleEndian.PutUint16(data[2:], rate)
	binary.LittleEndian.PutUint32(data[4:], declared)
	copy(data[8:], payload)
	return data
}

// Signed8 converts int8 samples into a raw payload.
func Signed8(samples ...int8) []byte {
	out := make([]byte, len(samples))
	for i, s := range samples {
		out[i] = byte(s)
	}
	return out
}

// ConstantPayload returns n raw samples all set to v.
func ConstantPayload(n int, v int8) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(v)
	}
	return out
}
