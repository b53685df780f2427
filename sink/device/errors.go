// SPDX-License-Identifier: EPL-2.0

package device

import "errors"

var (
	ErrAlreadyOpen  = errors.New("device already open")
	ErrBadFormat    = errors.New("unsupported output format")
	ErrRateMismatch = errors.New("audio context already running at another rate")
	ErrNotAvailable = errors.New("audio output not available")
)
