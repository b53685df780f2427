// SPDX-License-Identifier: EPL-2.0

package music

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/ik5/picosfx/audio"
	"github.com/ik5/picosfx/sink"
	"github.com/ik5/picosfx/utils"
)

// MaxVolume is full music volume, matching the sound effect volume range.
const MaxVolume = 127

// Player streams one music track at a time.
type Player struct {
	reg    *audio.Registry
	rate   int
	logger *log.Logger

	mu       sync.Mutex
	data     []byte
	format   string
	dec      audio.Decoder
	src      audio.Source
	loop     bool
	volume   int
	tmp      []float32
	produced int // frames since the track was (re)opened
}

// NewPlayer creates a player resampling to outputRate.
func NewPlayer(reg *audio.Registry, outputRate int) *Player {
	return &Player{
		reg:    reg,
		rate:   outputRate,
		logger: log.Default(),
		volume: MaxVolume,
	}
}

// SetLogger replaces the logger used for decode failures.
func (p *Player) SetLogger(l *log.Logger) {
	if l == nil {
		return
	}
	p.mu.Lock()
	p.logger = l
	p.mu.Unlock()
}

// Play starts data from the beginning, replacing any current track.
func (p *Player) Play(data []byte, loop bool) error {
	if p.rate <= 0 {
		return ErrInvalidRate
	}
	if len(data) == 0 {
		return ErrEmptyTrack
	}

	format, dec, ok := p.reg.Detect(data)
	if !ok {
		return fmt.Errorf("%w: %w", ErrNoSuchFormat, audio.ErrUnknownFormat)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.stop()
	p.data = data
	p.format = format
	p.dec = dec
	p.loop = loop

	if err := p.open(); err != nil {
		p.stop()
		return fmt.Errorf("%s track: %w", format, err)
	}

	return nil
}

// open decodes the track from the start and builds the resampling chain.
// Anything other than stereo is folded to mono before resampling.
func (p *Player) open() error {
	src, err := p.dec.Decode(bytes.NewReader(p.data))
	if err != nil {
		return err
	}

	if src.Channels() != sink.Channels {
		src = audio.NewMonoMixer(src)
	}
	if src.SampleRate() != p.rate {
		src = audio.NewResampler(src, p.rate)
	}

	p.src = src
	p.produced = 0
	return nil
}

func (p *Player) closeSource() {
	if p.src == nil {
		return
	}
	if err := p.src.Close(); err != nil {
		p.logger.Printf("music: closing %s track: %v", p.format, err)
	}
	p.src = nil
}

func (p *Player) stop() {
	p.closeSource()
	p.data = nil
	p.dec = nil
	p.format = ""
}

// Stop ends the current track. Later buffers are silent.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stop()
}

// IsPlaying reports whether a track is loaded and not finished.
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.src != nil
}

// Format returns the name of the playing track's format.
func (p *Player) Format() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.format
}

// SetVolume sets the music level, 0 (mute) to MaxVolume.
func (p *Player) SetVolume(vol int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.volume = max(0, min(vol, MaxVolume))
}

// Volume returns the music level set by SetVolume.
func (p *Player) Volume() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.volume
}

// Generate fills buf with the next stretch of the track. It matches
// mixer.MusicGenerator. Frames past the end of a non-looping track are
// silent.
func (p *Player) Generate(buf *sink.Buffer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := buf.Samples[:buf.MaxSampleCount*sink.Channels]
	done := 0
	total := buf.MaxSampleCount

	for done < total && p.src != nil {
		n, err := p.fill(out[done*sink.Channels:], total-done)
		done += n
		p.produced += n

		if err == nil {
			continue
		}

		if !errors.Is(err, io.EOF) {
			p.logger.Printf("music: %s track stopped: %v", p.format, err)
			p.stop()
			break
		}

		if !p.loop || p.produced == 0 {
			// an empty track would rewind forever
			p.stop()
			break
		}

		p.closeSource()
		if err := p.open(); err != nil {
			p.logger.Printf("music: rewinding %s track: %v", p.format, err)
			p.stop()
		}
	}

	clear(out[done*sink.Channels:])
	buf.SampleCount = buf.MaxSampleCount
}

// fill reads up to frames frames into out as scaled int16 stereo.
func (p *Player) fill(out []int16, frames int) (int, error) {
	channels := p.src.Channels()

	need := frames * channels
	if cap(p.tmp) < need {
		p.tmp = make([]float32, need)
	}
	tmp := p.tmp[:need]

	n, err := p.src.ReadSamples(tmp)
	got := n / channels
	gain := float32(p.volume) / MaxVolume

	if channels == sink.Channels {
		for i := range got * sink.Channels {
			out[i] = utils.Float32ToInt16(tmp[i] * gain)
		}
	} else {
		for i := range got {
			s := utils.Float32ToInt16(tmp[i] * gain)
			out[2*i] = s
			out[2*i+1] = s
		}
	}

	if got == 0 && err == nil {
		return 0, io.ErrNoProgress
	}
	return got, err
}
