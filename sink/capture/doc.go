// SPDX-License-Identifier: EPL-2.0

// Package capture records a sink.Pool into a WAV file instead of playing it.
//
// A Writer stands in for a sound device: it takes the filled buffers off the
// pool, appends them to the file and hands them back to the mixer. Buffers
// are drained either explicitly with Drain, which suits offline rendering
// driven by the caller, or on a ticker with Run.
package capture
