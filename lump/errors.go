// SPDX-License-Identifier: EPL-2.0

package lump

import "errors"

var (
	// ErrShortLump indicates a lump too small to hold the sound header.
	ErrShortLump = errors.New("lump shorter than sound header")

	// ErrUnknownFormat indicates a header format tag that is neither ADPCM nor signed PCM.
	ErrUnknownFormat = errors.New("unknown sound format tag")

	// ErrZeroSampleRate indicates a header declaring a 0 Hz sample rate.
	ErrZeroSampleRate = errors.New("sound sample rate is zero")

	// ErrEmptyPayload indicates a sound without payload bytes.
	ErrEmptyPayload = errors.New("sound payload is empty")

	// ErrNotFound indicates a lump name or number the store does not hold.
	ErrNotFound = errors.New("lump not found")

	// ErrNotWAD indicates a file without an IWAD or PWAD signature.
	ErrNotWAD = errors.New("not a WAD file")

	// ErrBadDirectory indicates a WAD directory pointing outside the file.
	ErrBadDirectory = errors.New("bad WAD directory")
)
