// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrNotFlacFile indicates the input has no fLaC signature or stream info
	ErrNotFlacFile = errors.New("not a FLAC file")

	// ErrUnsupportedLayout indicates stream info this decoder cannot map to float samples
	ErrUnsupportedLayout = errors.New("unsupported FLAC layout")

	// ErrChannelMismatch indicates a frame with fewer channels than the stream info
	ErrChannelMismatch = errors.New("FLAC frame channel count mismatch")
)
