// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
)

// SeekBuffer is an in-memory io.WriteSeeker for encoders that patch their
// headers on Close.
type SeekBuffer struct {
	data []byte
	pos  int
}

func (b *SeekBuffer) Write(p []byte) (int, error) {
	if end := b.pos + len(p); end > len(b.data) {
		b.data = append(b.data, make([]byte, end-len(b.data))...)
	}
	n := copy(b.data[b.pos:], p)
	b.pos += n
	return n, nil
}

func (b *SeekBuffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(b.pos) + offset
	case io.SeekEnd:
		pos = int64(len(b.data)) + offset
	default:
		return 0, errors.New("audiotest: invalid whence")
	}
	if pos < 0 {
		return 0, errors.New("audiotest: negative position")
	}
	b.pos = int(pos)
	return pos, nil
}

// Bytes returns everything written so far.
func (b *SeekBuffer) Bytes() []byte { return b.data }
