package utf

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/utf/cursor"
	"github.com/meigma/utf/hash"
	"github.com/meigma/utf/resource"
)

// requireSameTree compares two trees by resource id, kind and payload.
func requireSameTree(t *testing.T, want, got *Directory) {
	t.Helper()

	require.Equal(t, want.Len(), got.Len())
	for id, w := range want.All() {
		g, ok := got.GetID(id)
		require.True(t, ok, "missing %s", want.Label(id))
		switch w := w.(type) {
		case *File:
			f, ok := g.(*File)
			require.True(t, ok, "%s should be a file", want.Label(id))
			assert.Equal(t, w.ByteLength(), f.ByteLength())
			if w.ByteLength() > 0 {
				assert.Equal(t, w.Bytes(), f.Bytes())
			}
		case *Directory:
			d, ok := g.(*Directory)
			require.True(t, ok, "%s should be a directory", want.Label(id))
			requireSameTree(t, w, d)
		}
	}
}

func sampleTree() *Directory {
	root := NewDirectory(nil)
	mount := root.SetDirectory("Hardpoints").SetDirectory("Fixed").SetDirectory("HpMount")
	mount.SetFile("Position").WriteFloats(1, 2, 3)
	mount.SetFile("Orientation").WriteFloats(1, 0, 0, 0, 1, 0, 0, 0, 1)
	root.SetDirectory("VMeshLibrary").SetFile("ship.lod0.vms").SetBytes([]byte{0xde, 0xad, 0xbe, 0xef})
	root.Set("Exporter Version", NewFileStrings("utf 1.0"))
	root.SetFile("Empty")
	return root
}

func readEntry(t *testing.T, buf []byte, index int) Entry {
	t.Helper()
	var e Entry
	require.NoError(t, cursor.Unmarshal(buf[HeaderSize+index*EntrySize:], &e))
	return e
}

func TestToBuffer_EmptyDirectory(t *testing.T) {
	t.Parallel()

	buf, err := NewDirectory(nil).ToBuffer()
	require.NoError(t, err)

	h, err := ReadHeader(buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), h.NamesSizeUsed, "only the tombstone")
	assert.Equal(t, uint32(1), h.NamesSizeAllocated)
	assert.Equal(t, uint32(EntrySize), h.TreeSize, "only the root entry")
	assert.Equal(t, uint32(HeaderSize), h.TreeOffset)
	assert.Len(t, buf, HeaderSize+EntrySize+1)

	root := readEntry(t, buf, 0)
	assert.True(t, root.IsDirectory())
	assert.Zero(t, root.ChildOffset)
	assert.Zero(t, root.NameOffset)

	got, err := From(buf)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestToBuffer_Layout(t *testing.T) {
	t.Parallel()

	root := NewDirectory(nil)
	root.SetDirectory("A").SetFile("x").SetBytes([]byte("hi"))
	root.SetFile("B").SetBytes([]byte("bee"))

	buf, err := root.ToBuffer()
	require.NoError(t, err)

	h, err := ReadHeader(buf)
	require.NoError(t, err)
	require.Equal(t, uint32(4*EntrySize), h.TreeSize)
	assert.Equal(t, uint32(HeaderSize+4*EntrySize), h.NamesOffset)
	assert.Equal(t, "\x00A\x00B\x00x\x00", string(buf[h.NamesOffset:h.DataOffset]))
	assert.Equal(t, "beehi", string(buf[h.DataOffset:]))

	// Breadth-first: root, A, B, then the children of A.
	r, a, b, x := readEntry(t, buf, 0), readEntry(t, buf, 1), readEntry(t, buf, 2), readEntry(t, buf, 3)
	assert.Equal(t, uint32(EntrySize), r.ChildOffset)
	assert.Zero(t, r.NextOffset)

	assert.Equal(t, uint32(1), a.NameOffset)
	assert.True(t, a.IsDirectory())
	assert.Equal(t, uint32(2*EntrySize), a.NextOffset)
	assert.Equal(t, uint32(3*EntrySize), a.ChildOffset)

	assert.Equal(t, uint32(3), b.NameOffset)
	assert.True(t, b.IsFile())
	assert.Zero(t, b.NextOffset)
	assert.Zero(t, b.ChildOffset)
	assert.Equal(t, uint32(3), b.DataSizeUsed)
	assert.Equal(t, uint32(3), b.DataSizeAllocated)
	assert.Equal(t, uint32(3), b.DataSizeUncompressed)

	assert.Equal(t, uint32(5), x.NameOffset)
	assert.Equal(t, uint32(3), x.ChildOffset)
	assert.Equal(t, uint32(2), x.DataSizeUsed)
}

func TestToBuffer_DeduplicatesNames(t *testing.T) {
	t.Parallel()

	root := NewDirectory(nil)
	root.SetDirectory("A").SetFile("Position")
	root.SetDirectory("B").SetFile("Position")

	buf, err := root.ToBuffer()
	require.NoError(t, err)
	h, err := ReadHeader(buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(len("\x00A\x00B\x00Position\x00")), h.NamesSizeUsed)
	assert.Equal(t, readEntry(t, buf, 3).NameOffset, readEntry(t, buf, 4).NameOffset)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	want := sampleTree()
	buf, err := want.ToBuffer()
	require.NoError(t, err)

	got, err := From(buf)
	require.NoError(t, err)
	requireSameTree(t, want, got)

	pos, ok := got.GetDirectory("hardpoints")
	require.True(t, ok)
	pos, ok = pos.GetDirectory("FIXED")
	require.True(t, ok)
	pos, ok = pos.GetDirectory("HpMount")
	require.True(t, ok)
	f, ok := pos.GetFile("Position")
	require.True(t, ok)
	v, ok := f.Float()
	require.True(t, ok)
	assert.Equal(t, float32(1), v)

	f, ok = got.GetFile("exporter version")
	require.True(t, ok)
	text, ok := f.Text()
	require.True(t, ok)
	assert.Equal(t, "utf 1.0", text)
}

func TestToBuffer_Idempotent(t *testing.T) {
	t.Parallel()

	tree := sampleTree()
	first, err := tree.ToBuffer()
	require.NoError(t, err)
	second, err := tree.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	decoded, err := From(first)
	require.NoError(t, err)
	third, err := decoded.ToBuffer()
	require.NoError(t, err)
	assert.Equal(t, first, third, "names and order survive a decode")
}

func TestRoundTrip_Random(t *testing.T) {
	t.Parallel()

	for seed := range uint64(20) {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			t.Parallel()
			rng := rand.New(rand.NewPCG(seed, 0x5554)) //nolint:gosec // deterministic test data
			want := NewDirectory(nil)
			next := 0
			randomTree(rng, want, 4, &next)

			buf, err := want.ToBuffer()
			require.NoError(t, err)
			got, err := From(buf)
			require.NoError(t, err)
			requireSameTree(t, want, got)
		})
	}
}

func randomTree(rng *rand.Rand, d *Directory, depth int, next *int) {
	for range rng.IntN(5) {
		*next++
		name := fmt.Sprintf("node%d", *next)
		if depth > 0 && rng.IntN(3) == 0 {
			randomTree(rng, d.SetDirectory(name), depth-1, next)
			continue
		}
		data := make([]byte, rng.IntN(64))
		for i := range data {
			data[i] = byte(rng.Uint32())
		}
		d.SetFile(name).SetBytes(data)
	}
}

func TestRoundTrip_DeletedChildren(t *testing.T) {
	t.Parallel()

	root := sampleTree()
	for _, id := range root.IDs() {
		root.DeleteID(id)
	}

	buf, err := root.ToBuffer()
	require.NoError(t, err)
	got, err := From(buf)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestToBuffer_SkipsEmptyNames(t *testing.T) {
	t.Parallel()

	root := NewDirectory(nil)
	root.Set("", NewFile([]byte("hidden")))
	root.SetFile("shown")

	buf, err := root.ToBuffer()
	require.NoError(t, err)
	got, err := From(buf)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Len())
	assert.True(t, got.Has("shown"))
}

func TestToBuffer_UnknownNameUsesLabel(t *testing.T) {
	t.Parallel()

	root := NewDirectory(nil)
	root.SetFileID(0x1234)

	buf, err := root.ToBuffer()
	require.NoError(t, err)
	got, err := From(buf)
	require.NoError(t, err)
	_, ok := got.GetFile("0x00001234")
	assert.True(t, ok)
}

func TestToBuffer_WithTime(t *testing.T) {
	t.Parallel()

	ts := time.Date(2004, time.May, 6, 7, 8, 10, 0, time.UTC)
	root := NewDirectory(nil)
	root.SetFile("a")

	buf, err := root.ToBuffer(WithTime(ts))
	require.NoError(t, err)
	h, err := ReadHeader(buf)
	require.NoError(t, err)
	assert.True(t, ts.Equal(h.Time()))

	e := readEntry(t, buf, 1)
	assert.True(t, ts.Equal(e.Modified()))
	assert.Equal(t, e.ModifyTime, e.CreateTime)
	assert.Equal(t, e.ModifyTime, e.AccessTime)

	plain, err := root.ToBuffer()
	require.NoError(t, err)
	h, err = ReadHeader(plain)
	require.NoError(t, err)
	assert.Zero(t, h.Filetime)
	assert.Zero(t, readEntry(t, plain, 1).ModifyTime)
}

func TestToBuffer_WordSize(t *testing.T) {
	t.Parallel()

	root := NewDirectory(nil)
	root.SetFile("Long")

	_, err := root.ToBuffer(WithWordSize(4))
	require.ErrorIs(t, err, ErrRange)

	_, err = root.ToBuffer(WithWordSize(5))
	require.NoError(t, err)
}

func TestToBuffer_RejectsCycle(t *testing.T) {
	t.Parallel()

	root := NewDirectory(nil)
	root.SetDirectory("A").Set("loop", root)

	_, err := root.ToBuffer()
	require.ErrorIs(t, err, ErrStructural)
}

func TestFrom_WithRegistry(t *testing.T) {
	t.Parallel()

	buf, err := sampleTree().ToBuffer()
	require.NoError(t, err)

	reg := resource.NewRegistry()
	got, err := From(buf, WithRegistry(reg))
	require.NoError(t, err)

	name, ok := reg.Lookup(hash.ResourceID("vmeshlibrary", false))
	require.True(t, ok)
	assert.Equal(t, "VMeshLibrary", name)
	assert.Same(t, reg, got.Registry())
}

func TestUnmarshalBinary(t *testing.T) {
	t.Parallel()

	want := sampleTree()
	buf, err := want.MarshalBinary()
	require.NoError(t, err)

	got := NewDirectory(nil)
	got.SetFile("stale")
	require.NoError(t, got.UnmarshalBinary(buf))
	requireSameTree(t, want, got)
	assert.Equal(t, "Hardpoints", got.Label(hash.ResourceID("Hardpoints", false)))
}
