package cursor

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/meigma/utf/internal/utftype"
)

// Readable is an object that decodes itself from a cursor.
type Readable interface {
	// ByteLength returns the number of bytes the object occupies once decoded.
	ByteLength() int

	// Decode reads the object from c.
	Decode(c *Cursor) error
}

// Writable is an object that encodes itself into a cursor.
type Writable interface {
	// ByteLength returns the number of bytes Encode writes.
	ByteLength() int

	// Encode writes the object to c.
	Encode(c *Cursor) error
}

// Cursor is a read/write view over a window of a byte slice.
type Cursor struct {
	buf []byte

	// Offset is the current position within the window.
	Offset int

	// Order is the default byte order. Nil means little-endian.
	Order binary.ByteOrder

	err error
}

// New returns a little-endian cursor over buf.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf, Order: binary.LittleEndian}
}

// Alloc returns a cursor over n zeroed bytes.
func Alloc(n int) *Cursor {
	return New(make([]byte, n))
}

// Marshal encodes w into a new buffer of exactly w.ByteLength() bytes.
func Marshal(w Writable) ([]byte, error) {
	c := Alloc(w.ByteLength())
	if err := c.Write(w); err != nil {
		return nil, err
	}
	return c.buf, nil
}

// Unmarshal decodes r from the start of data.
func Unmarshal(data []byte, r Readable) error {
	return New(data).Read(r)
}

// Len returns the size of the window.
func (c *Cursor) Len() int {
	return len(c.buf)
}

// Remaining returns the number of bytes between the offset and the end of
// the window.
func (c *Cursor) Remaining() int {
	return len(c.buf) - min(max(c.Offset, 0), len(c.buf))
}

// Bytes returns the whole window. The slice aliases the backing buffer.
func (c *Cursor) Bytes() []byte {
	return c.buf
}

// Err returns the first out-of-window access, if any.
func (c *Cursor) Err() error {
	return c.err
}

// Shift advances the offset by n and returns the offset before the shift.
func (c *Cursor) Shift(n int) int {
	off := c.Offset
	c.Offset = off + n
	return off
}

// Subarray returns a cursor over [begin, end) of this window without moving
// the offset. Bounds are clamped to the window.
func (c *Cursor) Subarray(begin, end int) *Cursor {
	begin = min(max(begin, 0), len(c.buf))
	end = min(max(end, begin), len(c.buf))
	return &Cursor{buf: c.buf[begin:end:end], Order: c.Order}
}

// Slice returns a cursor over the next length bytes and advances past them.
// A window that does not fit is clamped and recorded as an error.
func (c *Cursor) Slice(length int) *Cursor {
	start := c.Offset
	if length < 0 || start < 0 || start+length > len(c.buf) {
		c.fail(rangeError(length, start, len(c.buf)))
	}
	sub := c.Subarray(start, start+length)
	c.Offset = start + sub.Len()
	return sub
}

// Read decodes r from the rest of the window and advances by r.ByteLength().
func (c *Cursor) Read(r Readable) error {
	return c.read(r, len(c.buf)-c.Offset)
}

// ReadN decodes r from at most the next n bytes and advances by
// r.ByteLength().
func (c *Cursor) ReadN(r Readable, n int) error {
	return c.read(r, n)
}

func (c *Cursor) read(r Readable, n int) error {
	start := c.Offset
	sub := c.Subarray(start, start+n)
	err := r.Decode(sub)
	if err == nil {
		err = sub.Err()
	}
	c.Offset = start + r.ByteLength()
	return err
}

// Write encodes w into the next w.ByteLength() bytes and advances past them.
func (c *Cursor) Write(w Writable) error {
	return c.WriteN(w, w.ByteLength())
}

// WriteN encodes w into the next n bytes and advances past them.
func (c *Cursor) WriteN(w Writable, n int) error {
	start := c.Offset
	if n < 0 || start < 0 || start+n > len(c.buf) {
		return rangeError(n, start, len(c.buf))
	}
	sub := c.Subarray(start, start+n)
	err := w.Encode(sub)
	if err == nil {
		err = sub.Err()
	}
	c.Offset = start + n
	return err
}

// ReadBytes fills dst from the current offset.
func (c *Cursor) ReadBytes(dst []byte) {
	if b := c.next(len(dst)); b != nil {
		copy(dst, b)
	}
}

// WriteBytes copies src at the current offset.
func (c *Cursor) WriteBytes(src []byte) {
	if b := c.next(len(src)); b != nil {
		copy(b, src)
	}
}

// ReadZString reads a NUL-terminated string. Without a terminator the rest
// of the window is consumed.
func (c *Cursor) ReadZString() string {
	if c.Remaining() == 0 {
		return ""
	}
	rest := c.buf[max(c.Offset, 0):]
	if i := bytes.IndexByte(rest, 0); i >= 0 {
		c.Offset += i + 1
		return string(rest[:i])
	}
	c.Offset += len(rest)
	return string(rest)
}

// WriteZString writes s followed by a NUL terminator, advancing by
// len(s)+1. The window must hold both.
func (c *Cursor) WriteZString(s string) {
	b := c.next(len(s) + 1)
	if b == nil {
		return
	}
	copy(b, s)
	b[len(s)] = 0
}

func (c *Cursor) byteOrder() binary.ByteOrder {
	if c.Order == nil {
		return binary.LittleEndian
	}
	return c.Order
}

// next reserves n bytes at the offset, advancing regardless of success.
func (c *Cursor) next(n int) []byte {
	start := c.Shift(n)
	if n < 0 || start < 0 || start+n > len(c.buf) {
		c.fail(rangeError(n, start, len(c.buf)))
		return nil
	}
	return c.buf[start : start+n]
}

func (c *Cursor) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func rangeError(n, off, size int) error {
	return fmt.Errorf("%w: %d bytes at offset %d exceed window of %d", utftype.ErrRange, n, off, size)
}
