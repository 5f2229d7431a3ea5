package utf

import (
	"fmt"
	"iter"
	"strings"

	"github.com/opencontainers/go-digest"

	"github.com/meigma/utf/cursor"
)

// File is a leaf node holding an opaque byte payload.
type File struct {
	data []byte
}

// NewFile returns a file owning data.
func NewFile(data []byte) *File {
	return &File{data: data}
}

// NewFileSize returns a file of n zero bytes.
func NewFileSize(n int) *File {
	return &File{data: make([]byte, n)}
}

// NewFileStrings returns a file holding values as NUL-terminated strings.
func NewFileStrings(values ...string) *File {
	return new(File).WriteStrings(values...)
}

func (*File) node() {}

// Bytes returns the payload. The slice aliases the file.
func (f *File) Bytes() []byte { return f.data }

// SetBytes replaces the payload.
func (f *File) SetBytes(data []byte) { f.data = data }

// ByteLength returns the payload size.
func (f *File) ByteLength() int { return len(f.data) }

// SetByteLength truncates or zero-extends the payload to n bytes.
func (f *File) SetByteLength(n int) {
	n = max(n, 0)
	switch {
	case n <= len(f.data):
		clear(f.data[n:])
		f.data = f.data[:n]
	case n <= cap(f.data):
		f.data = f.data[:n]
	default:
		grown := make([]byte, n)
		copy(grown, f.data)
		f.data = grown
	}
}

// Cursor returns a little-endian cursor over the payload.
func (f *File) Cursor() *cursor.Cursor {
	return cursor.New(f.data)
}

// Push appends chunks to the payload.
func (f *File) Push(chunks ...[]byte) *File {
	for _, chunk := range chunks {
		f.data = append(f.data, chunk...)
	}
	return f
}

// Digest returns the sha256 digest of the payload.
func (f *File) Digest() digest.Digest {
	return digest.FromBytes(f.data)
}

// Integers iterates over the payload as little-endian int32 values. A
// trailing remainder of two or three bytes yields an int16, then any last
// byte an int8.
func (f *File) Integers() iter.Seq[int32] {
	return func(yield func(int32) bool) {
		c := f.Cursor()
		for c.Remaining() > 0 {
			var v int32
			switch r := c.Remaining(); {
			case r >= 4:
				v = c.ReadInt32()
			case r >= 2:
				v = int32(c.ReadInt16())
			default:
				v = int32(c.ReadInt8())
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Integer returns the first integer of the payload.
func (f *File) Integer() (int32, bool) {
	return first(f.Integers())
}

// WriteIntegers replaces the payload with values.
func (f *File) WriteIntegers(values ...int32) *File {
	c := cursor.Alloc(4 * len(values))
	for _, v := range values {
		c.WriteInt32(v)
	}
	f.data = c.Bytes()
	return f
}

// Floats iterates over the payload as little-endian float32 values.
// Trailing bytes shorter than a float are ignored.
func (f *File) Floats() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		c := f.Cursor()
		for c.Remaining() >= 4 {
			if !yield(c.ReadFloat32()) {
				return
			}
		}
	}
}

// Float returns the first float of the payload.
func (f *File) Float() (float32, bool) {
	return first(f.Floats())
}

// WriteFloats replaces the payload with values.
func (f *File) WriteFloats(values ...float32) *File {
	c := cursor.Alloc(4 * len(values))
	for _, v := range values {
		c.WriteFloat32(v)
	}
	f.data = c.Bytes()
	return f
}

// Strings iterates over the payload as NUL-terminated strings.
func (f *File) Strings() iter.Seq[string] {
	return func(yield func(string) bool) {
		c := f.Cursor()
		for c.Remaining() > 0 {
			if !yield(c.ReadZString()) {
				return
			}
		}
	}
}

// Text returns the first string of the payload.
func (f *File) Text() (string, bool) {
	return first(f.Strings())
}

// WriteStrings replaces the payload with values, each NUL-terminated.
func (f *File) WriteStrings(values ...string) *File {
	var b strings.Builder
	for _, v := range values {
		b.WriteString(v)
		b.WriteByte(0)
	}
	f.data = []byte(b.String())
	return f
}

// WriteRecords replaces the payload with the encodings of values laid end
// to end.
func (f *File) WriteRecords(values ...cursor.Writable) error {
	size := 0
	for _, v := range values {
		size += v.ByteLength()
	}
	c := cursor.Alloc(size)
	for i, v := range values {
		if err := c.Write(v); err != nil {
			return fmt.Errorf("utf: write record %d: %w", i, err)
		}
	}
	f.data = c.Bytes()
	return nil
}

// NextRecord returns the record to decode at index, given the current
// offset and the bytes remaining. Returning false stops the sequence.
type NextRecord[T cursor.Readable] func(index, offset, remaining int) (T, bool)

// ReadRecords decodes the payload of f as a sequence of records. At least
// one record is requested even from an empty payload.
func ReadRecords[T cursor.Readable](f *File, next NextRecord[T]) ([]T, error) {
	var out []T
	c := f.Cursor()
	for i := 0; ; i++ {
		r, ok := next(i, c.Offset, c.Remaining())
		if !ok {
			break
		}
		if r.ByteLength() <= 0 {
			return out, fmt.Errorf("%w: record %d declares no length", ErrRange, i)
		}
		if err := c.Read(r); err != nil {
			return out, fmt.Errorf("utf: read record %d: %w", i, err)
		}
		out = append(out, r)
		if c.Remaining() == 0 {
			break
		}
	}
	return out, nil
}

func first[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}
