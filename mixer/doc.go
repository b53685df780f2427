// SPDX-License-Identifier: EPL-2.0

// Package mixer plays sound effect lumps on a fixed set of channels and mixes
// them into stereo output buffers.
//
// A Mixer is owned by one goroutine, normally the game loop. None of its
// methods lock; a port that mixes from an audio callback thread has to
// marshal Start, Stop and UpdateParams onto that thread itself.
//
// Positions and resampling steps are 16.16 fixed point. Each channel decodes
// one block of its lump at a time into a small int8 buffer and walks through
// it at step per output frame, so playing a sound never allocates.
package mixer
