// SPDX-License-Identifier: EPL-2.0

package mixer

import "errors"

var (
	// ErrBadChannel indicates a channel index outside the mixer.
	ErrBadChannel = errors.New("channel index out of range")

	// ErrInvalidOptions indicates a mixer without voices or with an output
	// rate below MinOutputRate.
	ErrInvalidOptions = errors.New("mixer needs at least one voice and an output rate of at least 1000 Hz")
)
