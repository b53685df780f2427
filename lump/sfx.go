// SPDX-License-Identifier: EPL-2.0

package lump

// SfxInfo describes one sound effect the game can request.
type SfxInfo struct {
	// Name is the effect name without the "ds" prefix.
	Name string
	// Link, when set, makes this effect play another effect's lump.
	Link *SfxInfo
	// LumpNum caches the resolved lump number; -1 when unresolved.
	LumpNum int
}

// NewSfx returns an unresolved effect called name.
func NewSfx(name string) *SfxInfo {
	return &SfxInfo{Name: name, LumpNum: -1}
}

// Base returns the effect whose lump is played for s.
func (s *SfxInfo) Base() *SfxInfo {
	if s != nil && s.Link != nil {
		return s.Link
	}
	return s
}

// LumpName returns the lump name holding the samples for s. Doom prefixes
// effect lumps with "ds"; Heretic and Hexen do not.
func LumpName(s *SfxInfo, usePrefix bool) string {
	name := s.Base().Name
	if usePrefix {
		name = "ds" + name
	}
	if len(name) > nameLen {
		name = name[:nameLen]
	}
	return name
}

// Resolve returns the lump number for s, using its cached LumpNum when set.
func Resolve(st Store, s *SfxInfo, usePrefix bool) (int, bool) {
	if s == nil || st == nil {
		return -1, false
	}
	if base := s.Base(); base.LumpNum >= 0 {
		return base.LumpNum, true
	}
	return st.NumForName(LumpName(s, usePrefix))
}
