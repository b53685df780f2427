// SPDX-License-Identifier: EPL-2.0

package mixer

// FadeState is the state of the global fade.
type FadeState int

const (
	FadeNone FadeState = iota
	FadeOut
	FadeIn
	FadeSilent
)

// FadeStep is the level change per output frame while fading.
const FadeStep = 8

// FullLevel is the fade level that leaves samples unchanged.
const FullLevel = 1 << 16

func (s FadeState) String() string {
	switch s {
	case FadeNone:
		return "none"
	case FadeOut:
		return "fading out"
	case FadeIn:
		return "fading in"
	case FadeSilent:
		return "silent"
	default:
		return "unknown"
	}
}

// Fade ramps the final mix between full level and silence. A fade out lasts
// FullLevel/FadeStep frames and then keeps the output silent until a fade in
// is started.
type Fade struct {
	state FadeState
	level int32
}

// Start begins a fade in or out from the near end of the ramp.
func (f *Fade) Start(in bool) {
	if in {
		f.state = FadeIn
		f.level = FadeStep
		return
	}
	f.state = FadeOut
	f.level = FullLevel - FadeStep
}

// State returns where the fade is.
func (f *Fade) State() FadeState { return f.state }

// Level returns the current fade level, 0 to FullLevel.
func (f *Fade) Level() int32 {
	switch f.state {
	case FadeNone:
		return FullLevel
	case FadeSilent:
		return 0
	default:
		return f.level
	}
}

// IsFading reports whether a ramp is in progress.
func (f *Fade) IsFading() bool {
	return f.state == FadeIn || f.state == FadeOut
}

// Apply scales interleaved stereo samples by the fade level, advancing the
// ramp one step per frame.
func (f *Fade) Apply(samples []int16) {
	switch f.state {
	case FadeNone:
		return
	case FadeSilent:
		clear(samples)
		return
	}

	step := int32(FadeStep)
	if f.state == FadeOut {
		step = -step
	}

	i := 0
	for ; i+1 < len(samples) && f.level > 0 && f.level < FullLevel; i += 2 {
		samples[i] = int16(int32(samples[i]) * f.level >> 16)
		samples[i+1] = int16(int32(samples[i+1]) * f.level >> 16)
		f.level += step
	}

	switch {
	case f.level <= 0:
		clear(samples[i:])
		f.level = 0
		f.state = FadeSilent
	case f.level >= FullLevel:
		f.level = FullLevel
		f.state = FadeNone
	}
}
