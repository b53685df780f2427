// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"io"
	"slices"
	"sync"
)

// Source is a stream of interleaved float32 samples.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved samples in [-1,1] and returns the
	// number of values written, always a multiple of Channels. io.EOF marks
	// the end of the stream and may come with the last samples.
	ReadSamples(dst []float32) (n int, err error)
	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

type entry struct {
	name    string
	decoder Decoder
	magic   [][]byte
}

// Registry maps format names (e.g. "wav", "mp3", "ogg") to decoders and
// recognizes formats by their leading bytes.
type Registry struct {
	entries []entry

	mtx *sync.RWMutex
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		mtx: &sync.RWMutex{},
	}
}

// Register adds or replaces the decoder for format. magic lists the byte
// prefixes that identify the format in Detect.
func (r *Registry) Register(format string, d Decoder, magic ...[]byte) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e := entry{name: format, decoder: d, magic: magic}
	if i := r.index(format); i >= 0 {
		r.entries[i] = e
		return
	}
	r.entries = append(r.entries, e)
}

// Get returns the decoder registered as format.
func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	if i := r.index(format); i >= 0 {
		return r.entries[i].decoder, true
	}
	return nil, false
}

// Detect returns the format whose magic prefixes data.
func (r *Registry) Detect(data []byte) (string, Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	for _, e := range r.entries {
		for _, m := range e.magic {
			if len(m) > 0 && bytes.HasPrefix(data, m) {
				return e.name, e.decoder, true
			}
		}
	}
	return "", nil, false
}

// Formats returns the registered format names in registration order.
func (r *Registry) Formats() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	return names
}

func (r *Registry) index(format string) int {
	return slices.IndexFunc(r.entries, func(e entry) bool { return e.name == format })
}
