// SPDX-License-Identifier: EPL-2.0

package music

import "errors"

var (
	ErrEmptyTrack   = errors.New("empty music track")
	ErrInvalidRate  = errors.New("output rate must be positive")
	ErrNoSuchFormat = errors.New("no decoder for music format")
)
