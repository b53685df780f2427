// SPDX-License-Identifier: EPL-2.0

package capture

import "errors"

var (
	ErrNotOpen     = errors.New("capture not open")
	ErrAlreadyOpen = errors.New("capture already open")
)
