// SPDX-License-Identifier: EPL-2.0

// Package device plays a sink.Pool on the system audio output through
// github.com/ebitengine/oto/v3.
//
// oto allows one context per process and fixes its sample rate when the
// context is created, so every Device shares that context. Opening a second
// Device at a different rate fails with ErrRateMismatch.
package device
