// SPDX-License-Identifier: EPL-2.0

package sink

import "errors"

var (
	// ErrInvalidPool indicates a pool with no buffers or empty buffers.
	ErrInvalidPool = errors.New("pool needs at least one buffer of at least one frame")
)
