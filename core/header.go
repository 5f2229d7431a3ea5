package utf

import (
	"fmt"
	"time"

	"github.com/meigma/utf/cursor"
	"github.com/meigma/utf/internal/filetime"
	"github.com/meigma/utf/internal/sizing"
)

// Fixed layout constants.
const (
	// Magic is the "UTF " signature.
	Magic = 0x20465455
	// Version is the only supported format version.
	Version = 0x101
	// HeaderSize is the encoded size of Header.
	HeaderSize = 0x38
	// EntrySize is the encoded size of Entry.
	EntrySize = 0x2c
)

// Header describes the region layout of a container. Offsets are absolute
// from the start of the buffer.
type Header struct {
	TreeOffset         uint32
	TreeSize           uint32
	EntryOffset        uint32 // root entry, relative to TreeOffset
	NamesOffset        uint32
	NamesSizeAllocated uint32
	NamesSizeUsed      uint32
	DataOffset         uint32
	UnusedOffset       uint32
	UnusedSize         uint32
	Filetime           uint64 // Win32 FILETIME
}

// ByteLength implements cursor.Readable and cursor.Writable.
func (h *Header) ByteLength() int { return HeaderSize }

// Time returns the creation time stored in the header.
func (h *Header) Time() time.Time { return filetime.FromFiletime(h.Filetime) }

// SetTime stores t as the creation time.
func (h *Header) SetTime(t time.Time) { h.Filetime = filetime.ToFiletime(t) }

// Decode reads and validates the fixed header fields.
func (h *Header) Decode(c *cursor.Cursor) error {
	if v := c.ReadUint32(); v != Magic {
		return fmt.Errorf("%w: bad signature 0x%08x", ErrStructural, v)
	}
	if v := c.ReadUint32(); v != Version {
		return fmt.Errorf("%w: unsupported version 0x%x", ErrStructural, v)
	}
	h.TreeOffset = c.ReadUint32()
	h.TreeSize = c.ReadUint32()
	h.EntryOffset = c.ReadUint32()
	if v := c.ReadUint32(); v != EntrySize {
		return fmt.Errorf("%w: entry size %d, want %d", ErrStructural, v, EntrySize)
	}
	h.NamesOffset = c.ReadUint32()
	h.NamesSizeAllocated = c.ReadUint32()
	h.NamesSizeUsed = c.ReadUint32()
	h.DataOffset = c.ReadUint32()
	h.UnusedOffset = c.ReadUint32()
	h.UnusedSize = c.ReadUint32()
	h.Filetime = c.ReadUint64()
	return c.Err()
}

// Encode writes the header, filling in the fixed fields.
func (h *Header) Encode(c *cursor.Cursor) error {
	c.WriteUint32(Magic)
	c.WriteUint32(Version)
	c.WriteUint32(h.TreeOffset)
	c.WriteUint32(h.TreeSize)
	c.WriteUint32(h.EntryOffset)
	c.WriteUint32(EntrySize)
	c.WriteUint32(h.NamesOffset)
	c.WriteUint32(h.NamesSizeAllocated)
	c.WriteUint32(h.NamesSizeUsed)
	c.WriteUint32(h.DataOffset)
	c.WriteUint32(h.UnusedOffset)
	c.WriteUint32(h.UnusedSize)
	c.WriteUint64(h.Filetime)
	return c.Err()
}

// validate checks that every region declared by h lies within a buffer of
// size bytes.
func (h *Header) validate(size int) error {
	switch {
	case h.TreeSize < EntrySize:
		return fmt.Errorf("%w: tree size %d holds no entry", ErrRange, h.TreeSize)
	case h.NamesSizeUsed > h.NamesSizeAllocated:
		return fmt.Errorf("%w: names used %d exceeds allocated %d", ErrRange, h.NamesSizeUsed, h.NamesSizeAllocated)
	}
	if _, ok := sizing.Span(h.TreeOffset, h.TreeSize, size); !ok {
		return fmt.Errorf("%w: tree [%d+%d] exceeds buffer of %d", ErrRange, h.TreeOffset, h.TreeSize, size)
	}
	if _, ok := sizing.Span(h.NamesOffset, h.NamesSizeUsed, size); !ok {
		return fmt.Errorf("%w: names [%d+%d] exceed buffer of %d", ErrRange, h.NamesOffset, h.NamesSizeUsed, size)
	}
	if _, ok := sizing.Span(h.DataOffset, 0, size); !ok {
		return fmt.Errorf("%w: data offset %d exceeds buffer of %d", ErrRange, h.DataOffset, size)
	}
	return nil
}

// ReadHeader decodes the header at the start of buf and checks that every
// region it declares lies within buf.
func ReadHeader(buf []byte) (Header, error) {
	var h Header
	if len(buf) < HeaderSize {
		return h, fmt.Errorf("%w: %d bytes is shorter than the header", ErrRange, len(buf))
	}
	if err := cursor.Unmarshal(buf, &h); err != nil {
		return h, fmt.Errorf("utf: read header: %w", err)
	}
	if err := h.validate(len(buf)); err != nil {
		return h, fmt.Errorf("utf: read header: %w", err)
	}
	return h, nil
}
