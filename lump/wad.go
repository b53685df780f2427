// SPDX-License-Identifier: EPL-2.0

package lump

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	wadHeaderSize = 12
	dirEntrySize  = 16
	nameLen       = 8
)

// WAD is a Store over the lumps of an IWAD or PWAD file, held in memory.
type WAD struct {
	Kind  string // "IWAD" or "PWAD"
	names []string
	data  [][]byte
}

// OpenWAD reads the WAD file at path.
func OpenWAD(path string) (*WAD, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening wad: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat wad: %w", err)
	}

	return ReadWAD(f, info.Size())
}

// ReadWAD reads a WAD of size bytes from r.
func ReadWAD(r io.ReaderAt, size int64) (*WAD, error) {
	header := make([]byte, wadHeaderSize)
	if err := readAt(r, header, 0); err != nil {
		return nil, fmt.Errorf("reading wad header: %w", err)
	}

	kind := string(header[:4])
	if kind != "IWAD" && kind != "PWAD" {
		return nil, ErrNotWAD
	}

	count := int64(int32(binary.LittleEndian.Uint32(header[4:])))
	dirOffset := int64(int32(binary.LittleEndian.Uint32(header[8:])))
	if count < 0 || dirOffset < wadHeaderSize || dirOffset+count*dirEntrySize > size {
		return nil, fmt.Errorf("%d entries at %d: %w", count, dirOffset, ErrBadDirectory)
	}

	dir := make([]byte, count*dirEntrySize)
	if err := readAt(r, dir, dirOffset); err != nil {
		return nil, fmt.Errorf("reading wad directory: %w", err)
	}

	w := &WAD{
		Kind:  kind,
		names: make([]string, count),
		data:  make([][]byte, count),
	}

	for i := range int(count) {
		entry := dir[i*dirEntrySize : (i+1)*dirEntrySize]
		pos := int64(int32(binary.LittleEndian.Uint32(entry[0:])))
		n := int64(int32(binary.LittleEndian.Uint32(entry[4:])))
		name := entry[8:16]
		if end := bytes.IndexByte(name, 0); end >= 0 {
			name = name[:end]
		}
		w.names[i] = normalizeName(string(name))

		if n == 0 {
			continue // marker lump
		}
		if pos < 0 || n < 0 || pos+n > size {
			return nil, fmt.Errorf("lump %q at %d+%d: %w", w.names[i], pos, n, ErrBadDirectory)
		}

		buf := make([]byte, n)
		if err := readAt(r, buf, pos); err != nil {
			return nil, fmt.Errorf("reading lump %q: %w", w.names[i], err)
		}
		w.data[i] = buf
	}

	return w, nil
}

// readAt fills buf from off, accepting io.EOF when buf was filled.
func readAt(r io.ReaderAt, buf []byte, off int64) error {
	n, err := r.ReadAt(buf, off)
	if n == len(buf) && errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (w *WAD) NumForName(name string) (int, bool) {
	return lastIndex(w.names, normalizeName(name))
}

func (w *WAD) Lump(num int) ([]byte, bool) {
	if num < 0 || num >= len(w.data) {
		return nil, false
	}
	return w.data[num], true
}

// Len returns the number of directory entries.
func (w *WAD) Len() int { return len(w.names) }

// Name returns the directory name of lump num.
func (w *WAD) Name(num int) string {
	if num < 0 || num >= len(w.names) {
		return ""
	}
	return w.names[num]
}

// WriteWAD writes lumps as a PWAD in the order given. It exists mainly so
// tests and tools can produce small WADs.
func WriteWAD(wr io.Writer, names []string, lumps [][]byte) error {
	if len(names) != len(lumps) {
		return fmt.Errorf("%d names for %d lumps: %w", len(names), len(lumps), ErrBadDirectory)
	}

	var body bytes.Buffer
	dir := make([]byte, len(names)*dirEntrySize)
	for i, data := range lumps {
		entry := dir[i*dirEntrySize:]
		binary.LittleEndian.PutUint32(entry[0:], uint32(wadHeaderSize+body.Len()))
		binary.LittleEndian.PutUint32(entry[4:], uint32(len(data)))
		copy(entry[8:16], normalizeName(names[i]))
		body.Write(data)
	}

	header := make([]byte, wadHeaderSize)
	copy(header, "PWAD")
	binary.LittleEndian.PutUint32(header[4:], uint32(len(names)))
	binary.LittleEndian.PutUint32(header[8:], uint32(wadHeaderSize+body.Len()))

	for _, chunk := range [][]byte{header, body.Bytes(), dir} {
		if _, err := wr.Write(chunk); err != nil {
			return fmt.Errorf("writing wad: %w", err)
		}
	}
	return nil
}
