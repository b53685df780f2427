// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC music through github.com/mewkiz/flac.
//
// Frames are decoded one at a time as the Source is read, so memory use
// does not grow with the track length. Samples are scaled by the stream bit
// depth into [-1,1).
package flac
