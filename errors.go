// SPDX-License-Identifier: EPL-2.0

package picosfx

import "errors"

var (
	// ErrInitFailed wraps every InitSound failure. Sound stays disabled.
	ErrInitFailed = errors.New("sound init failed")

	// ErrInvalidConfig indicates a Config that cannot drive the mixer.
	ErrInvalidConfig = errors.New("invalid sound config")

	// ErrNoDevice indicates a Sound created without an output device.
	ErrNoDevice = errors.New("no sound device")
)
