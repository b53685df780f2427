// SPDX-License-Identifier: EPL-2.0

package lump

import (
	"encoding/binary"
	"fmt"
)

// Format is the sound lump format tag.
type Format uint16

const (
	FormatSigned8 Format = 0x0003
	FormatADPCM   Format = 0x8003
)

// HeaderSize is the size of the sound lump header.
const HeaderSize = 8

func (f Format) String() string {
	switch f {
	case FormatSigned8:
		return "signed8"
	case FormatADPCM:
		return "adpcm"
	default:
		return fmt.Sprintf("Format(%#04x)", uint16(f))
	}
}

// Header is the parsed sound lump header.
type Header struct {
	Format         Format
	SampleRate     int
	DeclaredLength uint32
}

// IsADPCM reports whether the payload is ADPCM compressed.
func (h Header) IsADPCM() bool { return h.Format == FormatADPCM }

// Parse validates the header of a sound lump and returns it along with the
// payload. The payload aliases data.
//
// The payload runs to the end of data unless the header declares a shorter
// length.
func Parse(data []byte) (Header, []byte, error) {
	if len(data) < HeaderSize {
		return Header{}, nil, fmt.Errorf("%d bytes: %w", len(data), ErrShortLump)
	}

	h := Header{
		Format:         Format(binary.LittleEndian.Uint16(data[0:])),
		SampleRate:     int(binary.LittleEndian.Uint16(data[2:])),
		DeclaredLength: binary.LittleEndian.Uint32(data[4:]),
	}

	if h.Format != FormatADPCM && h.Format != FormatSigned8 {
		return h, nil, fmt.Errorf("%v: %w", h.Format, ErrUnknownFormat)
	}
	if h.SampleRate == 0 {
		return h, nil, ErrZeroSampleRate
	}

	payload := data[HeaderSize:]
	if h.DeclaredLength != 0 && uint64(h.DeclaredLength) < uint64(len(payload)) {
		payload = payload[:h.DeclaredLength]
	}
	if len(payload) == 0 {
		return h, nil, ErrEmptyPayload
	}

	return h, payload, nil
}
