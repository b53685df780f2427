// SPDX-License-Identifier: EPL-2.0

// Package music turns a music lump into a mixer.MusicGenerator.
//
// A Player recognizes the track format by its leading bytes, decodes it with
// one of the formats packages and resamples it to the mixer output rate.
// Generate is the callback the mixer runs at the start of every buffer; it
// lays the track down as the base the sound effects are added onto.
//
//	player := music.NewPlayer(music.DefaultRegistry(), 49716)
//	if err := player.Play(lumpData, true); err != nil {
//	    return err
//	}
//	snd.SetMusicGenerator(player.Generate)
//
// Decode errors in the middle of a track stop it and are logged. They never
// reach the mixer.
package music
