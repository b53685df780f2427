// SPDX-License-Identifier: EPL-2.0

// Package lump resolves sound effects to their raw lump bytes and parses the
// 8-byte sound lump header.
//
// A sound lump starts with:
//
//	offset 0: uint16 format tag (0x8003 ADPCM, 0x0003 signed 8-bit PCM)
//	offset 2: uint16 sample rate in Hz
//	offset 4: uint32 payload length, 0 when not declared
//
// and the payload follows. Lumps come from a Store; Mem keeps them in a map
// and WAD reads an IWAD or PWAD file.
package lump
