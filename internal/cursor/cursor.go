// Package cursor provides a bounds-checked, zero-copy view over a byte
// range for RAW pixel decoding.
package cursor

import "fmt"

// Range is an immutable window over a backing byte slice. It never
// copies the bytes it was constructed from.
type Range struct {
	data []byte
}

// NewRange wraps data as a Range covering its full extent.
func NewRange(data []byte) Range {
	return Range{data: data}
}

// Len returns the total length of the range.
func (r Range) Len() int {
	return len(r.data)
}

// IsValid reports whether the window [off, off+n) is fully contained in
// the range without overflow.
func (r Range) IsValid(off, n int) bool {
	if off < 0 || n < 0 {
		return false
	}
	end := off + n
	if end < off {
		return false // overflow
	}
	return end <= len(r.data)
}

// Cursor is a bounds-checked, non-owning position within a Range.
type Cursor struct {
	data []byte // remaining bytes starting at the cursor's position
}

// New creates a Cursor positioned at the start of r.
func New(r Range) *Cursor {
	return &Cursor{data: r.data}
}

// FromBytes creates a Cursor directly over data, equivalent to
// New(NewRange(data)).
func FromBytes(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Remaining returns the number of bytes left to read.
func (c *Cursor) Remaining() int {
	return len(c.data)
}

// Peek returns a view of the next n bytes without advancing the cursor.
// It fails with ErrTruncated if n exceeds Remaining().
func (c *Cursor) Peek(n int) ([]byte, error) {
	if n < 0 || n > len(c.data) {
		return nil, fmt.Errorf("cursor: peek %d bytes: %w (have %d)", n, ErrTruncated, len(c.data))
	}
	return c.data[:n:n], nil
}

// Consume returns a view of the next n bytes and advances the cursor by
// n. It fails with ErrTruncated if n exceeds Remaining().
func (c *Cursor) Consume(n int) ([]byte, error) {
	v, err := c.Peek(n)
	if err != nil {
		return nil, err
	}
	c.data = c.data[n:]
	return v, nil
}

// Skip advances the cursor by n bytes without returning them. It fails
// with ErrTruncated if n exceeds Remaining().
func (c *Cursor) Skip(n int) error {
	_, err := c.Consume(n)
	return err
}

// Sub carves an independent sub-cursor covering [off, off+n) of the
// bytes remaining ahead of c, without advancing c itself. It fails with
// ErrOutOfRange if the window is not fully contained.
func (c *Cursor) Sub(off, n int) (*Cursor, error) {
	if off < 0 || n < 0 || off+n < off || off+n > len(c.data) {
		return nil, fmt.Errorf("cursor: sub(%d, %d): %w (have %d)", off, n, ErrOutOfRange, len(c.data))
	}
	return &Cursor{data: c.data[off : off+n : off+n]}, nil
}
