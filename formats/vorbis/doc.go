// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis music through
// github.com/jfreymuth/oggvorbis.
//
// The Source keeps the channel count of the stream. Empty reads at Ogg page
// boundaries are retried internally, so a read that returns no samples and
// no error only happens for a destination smaller than one frame.
package vorbis
