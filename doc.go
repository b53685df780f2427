// SPDX-License-Identifier: EPL-2.0

// Package picosfx is a software sound effects mixer for Doom-engine games.
//
// Sound effect lumps hold either IMA ADPCM or raw signed 8-bit samples
// behind an 8-byte header. They are decoded a block at a time, resampled in
// 16.16 fixed point to the output rate and summed into stereo 16-bit
// buffers, optionally on top of a music track.
//
// # Quick Start
//
//	wad, _ := lump.OpenWAD("doom1.wad")
//	snd := picosfx.New(picosfx.DefaultConfig(), wad, device.New(nil, 0))
//	if err := snd.InitSound(); err != nil {
//	    log.Print(err) // the game keeps running without sound
//	}
//	defer snd.ShutdownSound()
//
//	pistol := lump.NewSfx("pistol")
//	snd.StartSound(pistol, 0, 127, 128, mixer.NormPitch)
//
//	for range time.Tick(time.Second / 35) {
//	    snd.UpdateSound()
//	}
//
// # Threading
//
// A Sound belongs to the game loop goroutine. UpdateSound mixes into every
// buffer the device has handed back and never waits for one; the device
// consumes buffers on its own goroutine through a sink.Pool.
//
// # Failure Model
//
// Sound is never allowed to stop the game. InitSound is the only call that
// returns an error. Afterwards a missing lump, a bad header or an invalid
// channel drops that one request with a NoChannel or false result, and a
// Sound that failed to initialize ignores every call.
//
// # Packages
//
//   - adpcm: block decoder for the compressed lump format
//   - lump: sound lump headers, WAD files and effect-to-lump resolution
//   - mixer: channels, fixed-point resampling, mixing and fade
//   - sink: the buffer pool between the mixer and a device
//   - sink/device: system audio output
//   - sink/capture: WAV file output
//   - music: music lumps (WAV, MP3, Ogg Vorbis, AIFF, FLAC) as the mix base
package picosfx
