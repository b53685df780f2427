// SPDX-License-Identifier: EPL-2.0

package lump

import (
	"strings"
	"sync"
)

// Store gives read-only access to lumps by name or number.
//
// Implementations must return the same bytes for a lump number for as long
// as the store lives, since playing channels borrow them.
type Store interface {
	// NumForName returns the number of the last lump called name.
	NumForName(name string) (int, bool)
	// Lump returns the bytes of lump num.
	Lump(num int) ([]byte, bool)
}

// Mem is an in-memory Store.
type Mem struct {
	mtx   sync.RWMutex
	names []string
	data  [][]byte
}

// NewMem returns an empty store.
func NewMem() *Mem {
	return &Mem{}
}

// Add appends a lump and returns its number. A later lump with the same name
// hides earlier ones.
func (m *Mem) Add(name string, data []byte) int {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.names = append(m.names, normalizeName(name))
	m.data = append(m.data, data)
	return len(m.data) - 1
}

func (m *Mem) NumForName(name string) (int, bool) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	return lastIndex(m.names, normalizeName(name))
}

func (m *Mem) Lump(num int) ([]byte, bool) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	if num < 0 || num >= len(m.data) {
		return nil, false
	}
	return m.data[num], true
}

// Len returns the number of lumps.
func (m *Mem) Len() int {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	return len(m.data)
}

// normalizeName upper-cases name and cuts it to the 8 characters a lump
// directory entry can hold.
func normalizeName(name string) string {
	if len(name) > nameLen {
		name = name[:nameLen]
	}
	return strings.ToUpper(name)
}

func lastIndex(names []string, name string) (int, bool) {
	for i := len(names) - 1; i >= 0; i-- {
		if names[i] == name {
			return i, true
		}
	}
	return -1, false
}
