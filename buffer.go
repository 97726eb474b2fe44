// SPDX-License-Identifier: Apache-2.0

package bump

import (
	"io"
)

// Buffer is a bytes.Buffer-like struct backed by a fixed-region
// allocator. It implements io.Writer, io.Reader, io.WriterTo and
// io.ReaderFrom. All storage comes from the allocator; once the region
// is exhausted, writes fail with ErrOutOfMemory instead of falling back
// to the Go heap.
type Buffer struct {
	a       *Allocator
	buf     []byte
	off     int    // length of unread data in buf
	readBuf []byte // scratch buffer for ReadFrom, arena-allocated
}

// NewBuffer creates a Buffer drawing its storage from a.
func NewBuffer(a *Allocator) *Buffer {
	return &Buffer{a: a}
}

// Write writes len(p) bytes from p to the buffer. It returns
// ErrOutOfMemory with n == 0 when the buffer cannot grow.
func (b *Buffer) Write(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	grown, err := Append(b.a, b.buf, p...)
	if err != nil {
		return 0, err
	}
	b.buf = grown
	b.off = len(b.buf)
	return len(p), nil
}

// WriteByte writes a single byte to the buffer.
func (b *Buffer) WriteByte(c byte) error {
	grown, err := Append(b.a, b.buf, c)
	if err != nil {
		return err
	}
	b.buf = grown
	b.off = len(b.buf)
	return nil
}

// WriteString writes a string to the buffer.
func (b *Buffer) WriteString(s string) (n int, err error) {
	return b.Write([]byte(s))
}

// WriteTo writes the unread portion of the buffer to w until the buffer
// is drained or an error occurs.
func (b *Buffer) WriteTo(w io.Writer) (n int64, err error) {
	if b.off == 0 {
		return 0, nil
	}
	m, err := w.Write(b.buf[:b.off])
	if m > 0 {
		n += int64(m)
		copy(b.buf, b.buf[m:b.off])
		b.off -= m
	}
	return n, err
}

// Read reads up to len(p) bytes from the buffer into p.
func (b *Buffer) Read(p []byte) (n int, err error) {
	if b.off == 0 {
		return 0, io.EOF
	}
	n = copy(p, b.buf[:b.off])
	if n < len(p) {
		err = io.EOF
	}
	copy(b.buf, b.buf[n:b.off])
	b.off -= n
	return n, err
}

// ReadFrom reads from r until EOF or error, appending to the buffer.
// The scratch read buffer is allocated from the arena on first use.
func (b *Buffer) ReadFrom(r io.Reader) (n int64, err error) {
	const readBufferSize = 4 * 1024
	if b.readBuf == nil {
		b.readBuf, err = b.a.AllocBytes(readBufferSize)
		if err != nil {
			return 0, err
		}
	}
	for {
		nr, er := r.Read(b.readBuf)
		if nr > 0 {
			if _, ew := b.Write(b.readBuf[:nr]); ew != nil {
				return n, ew
			}
			n += int64(nr)
		}
		if er != nil {
			if er == io.EOF {
				return n, nil
			}
			return n, er
		}
	}
}

// Bytes returns a slice holding the unread portion of the buffer. The
// slice is valid only until the next buffer modification.
func (b *Buffer) Bytes() []byte {
	if b.off == 0 {
		return []byte{}
	}
	return b.buf[:b.off]
}

// String returns the unread portion of the buffer as a string.
func (b *Buffer) String() string {
	return string(b.buf[:b.off])
}

// Len returns the number of unread bytes in the buffer.
func (b *Buffer) Len() int {
	return b.off
}

// Cap returns the capacity of the buffer's underlying byte slice.
func (b *Buffer) Cap() int {
	return cap(b.buf)
}

// Reset empties the buffer. Arena space already consumed by earlier
// growth is not reclaimed; only the buffer's view is rewound.
func (b *Buffer) Reset() {
	b.off = 0
	if b.buf != nil {
		b.buf = b.buf[:0]
	}
}

// Truncate discards all but the first n unread bytes from the buffer.
// It panics if n is negative or greater than the buffer length.
func (b *Buffer) Truncate(n int) {
	if n < 0 || n > b.off {
		panic("bump: truncation out of range")
	}
	b.off = n
}
