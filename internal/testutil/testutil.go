// Package testutil builds raw containers and checks codec contracts in
// tests. It writes the wire layout directly so malformed input can be
// produced without going through the encoder.
package testutil

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meigma/utf/cursor"
)

// Layout constants mirrored from the container format.
const (
	Magic      = 0x20465455
	Version    = 0x101
	HeaderSize = 0x38
	EntrySize  = 0x2c
)

// Attribute bits mirrored from the container format.
const (
	AttrDirectory = 0x10
	AttrNormal    = 0x80
)

// TestEntry holds the raw fields of one tree entry.
type TestEntry struct {
	Next      uint32
	Name      uint32
	Attr      uint32
	Child     uint32
	Allocated uint32
	Used      uint32
}

// TestContainer describes a raw container. Zero header fields are derived
// from the regions; Override fields replace them after derivation.
type TestContainer struct {
	Entries []TestEntry
	Names   []byte
	Data    []byte

	Override func(h *RawHeader)
}

// RawHeader holds the raw header fields.
type RawHeader struct {
	Magic              uint32
	Version            uint32
	TreeOffset         uint32
	TreeSize           uint32
	EntryOffset        uint32
	EntrySize          uint32
	NamesOffset        uint32
	NamesSizeAllocated uint32
	NamesSizeUsed      uint32
	DataOffset         uint32
	UnusedOffset       uint32
	UnusedSize         uint32
	Filetime           uint64
}

// Names returns a dictionary holding the empty tombstone followed by
// values, and the offset of each value.
func Names(values ...string) ([]byte, []uint32) {
	out := []byte{0}
	offsets := make([]uint32, len(values))
	for i, v := range values {
		offsets[i] = u32(len(out))
		out = append(out, v...)
		out = append(out, 0)
	}
	return out, offsets
}

// BuildContainer lays out header, tree, names and data contiguously.
func BuildContainer(tb testing.TB, c TestContainer) []byte {
	tb.Helper()

	treeSize := len(c.Entries) * EntrySize
	h := RawHeader{
		Magic:              Magic,
		Version:            Version,
		TreeOffset:         HeaderSize,
		TreeSize:           u32(treeSize),
		EntrySize:          EntrySize,
		NamesOffset:        u32(HeaderSize + treeSize),
		NamesSizeAllocated: u32(len(c.Names)),
		NamesSizeUsed:      u32(len(c.Names)),
		DataOffset:         u32(HeaderSize + treeSize + len(c.Names)),
	}
	if c.Override != nil {
		c.Override(&h)
	}

	buf := make([]byte, 0, HeaderSize+treeSize+len(c.Names)+len(c.Data))
	le := binary.LittleEndian
	for _, v := range []uint32{
		h.Magic, h.Version, h.TreeOffset, h.TreeSize, h.EntryOffset, h.EntrySize,
		h.NamesOffset, h.NamesSizeAllocated, h.NamesSizeUsed, h.DataOffset,
		h.UnusedOffset, h.UnusedSize,
	} {
		buf = le.AppendUint32(buf, v)
	}
	buf = le.AppendUint64(buf, h.Filetime)

	for _, e := range c.Entries {
		for _, v := range []uint32{e.Next, e.Name, e.Attr, 0, e.Child, e.Allocated, e.Used, e.Used, 0, 0, 0} {
			buf = le.AppendUint32(buf, v)
		}
	}
	buf = append(buf, c.Names...)
	buf = append(buf, c.Data...)

	require.Len(tb, buf, HeaderSize+treeSize+len(c.Names)+len(c.Data))
	return buf
}

func u32(n int) uint32 {
	return uint32(n) //nolint:gosec // test sizes
}

// Codec is an object with a fixed declared length that round-trips through
// a cursor.
type Codec interface {
	cursor.Readable
	cursor.Writable
}

// RequireCursorDiscipline writes v into a buffer twice its declared length,
// reads it back into fresh, and requires both operations to advance the
// cursor by exactly the declared length.
func RequireCursorDiscipline(tb testing.TB, v, fresh Codec) {
	tb.Helper()

	n := v.ByteLength()
	c := cursor.Alloc(2 * n)
	require.NoError(tb, c.Write(v))
	require.Equal(tb, n, c.Offset, "write must advance by the declared length")

	c.Offset = 0
	require.NoError(tb, c.Read(fresh))
	require.Equal(tb, n, c.Offset, "read must advance by the declared length")
	require.Equal(tb, n, fresh.ByteLength())
}
