package utf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/utf/internal/testutil"
)

const (
	dirAttr  = testutil.AttrDirectory
	fileAttr = testutil.AttrNormal
)

func TestFrom_Malformed(t *testing.T) {
	t.Parallel()

	names, off := testutil.Names("A", "x")
	rootOnly := []testutil.TestEntry{{Attr: dirAttr}}

	tests := []struct {
		name      string
		container testutil.TestContainer
		raw       []byte
		want      error
	}{
		{
			name: "short buffer",
			raw:  []byte("UTF \x01\x01"),
			want: ErrRange,
		},
		{
			name: "bad signature",
			container: testutil.TestContainer{Entries: rootOnly, Names: names,
				Override: func(h *testutil.RawHeader) { h.Magic = 0x46545520 }},
			want: ErrStructural,
		},
		{
			name: "bad version",
			container: testutil.TestContainer{Entries: rootOnly, Names: names,
				Override: func(h *testutil.RawHeader) { h.Version = 0x100 }},
			want: ErrStructural,
		},
		{
			name: "bad entry size",
			container: testutil.TestContainer{Entries: rootOnly, Names: names,
				Override: func(h *testutil.RawHeader) { h.EntrySize = 40 }},
			want: ErrStructural,
		},
		{
			name: "tree smaller than one entry",
			container: testutil.TestContainer{Entries: rootOnly, Names: names,
				Override: func(h *testutil.RawHeader) { h.TreeSize = 10 }},
			want: ErrRange,
		},
		{
			name: "tree out of bounds",
			container: testutil.TestContainer{Entries: rootOnly, Names: names,
				Override: func(h *testutil.RawHeader) { h.TreeSize = 1 << 20 }},
			want: ErrRange,
		},
		{
			name: "names used exceeds allocated",
			container: testutil.TestContainer{Entries: rootOnly, Names: names,
				Override: func(h *testutil.RawHeader) { h.NamesSizeUsed = h.NamesSizeAllocated + 1 }},
			want: ErrRange,
		},
		{
			name: "names out of bounds",
			container: testutil.TestContainer{Entries: rootOnly, Names: names,
				Override: func(h *testutil.RawHeader) {
					h.NamesSizeAllocated = 1 << 20
					h.NamesSizeUsed = 1 << 20
				}},
			want: ErrRange,
		},
		{
			name: "data offset out of bounds",
			container: testutil.TestContainer{Entries: rootOnly, Names: names,
				Override: func(h *testutil.RawHeader) { h.DataOffset = 1 << 20 }},
			want: ErrRange,
		},
		{
			name: "name offset beyond dictionary",
			container: testutil.TestContainer{Names: names, Entries: []testutil.TestEntry{
				{Attr: dirAttr, Child: testutil.EntrySize},
				{Attr: dirAttr, Name: 100},
			}},
			want: ErrRange,
		},
		{
			name: "child offset beyond tree",
			container: testutil.TestContainer{Names: names, Entries: []testutil.TestEntry{
				{Attr: dirAttr, Child: 10 * testutil.EntrySize},
			}},
			want: ErrRange,
		},
		{
			name: "file data out of bounds",
			container: testutil.TestContainer{Names: names, Data: []byte("hi"), Entries: []testutil.TestEntry{
				{Attr: dirAttr, Child: testutil.EntrySize},
				{Attr: fileAttr, Name: off[1], Used: 100, Allocated: 100},
			}},
			want: ErrRange,
		},
		{
			name: "file used exceeds allocated",
			container: testutil.TestContainer{Names: names, Data: []byte("hi"), Entries: []testutil.TestEntry{
				{Attr: dirAttr, Child: testutil.EntrySize},
				{Attr: fileAttr, Name: off[1], Used: 2, Allocated: 1},
			}},
			want: ErrRange,
		},
		{
			name: "sibling cycle",
			container: testutil.TestContainer{Names: names, Entries: []testutil.TestEntry{
				{Attr: dirAttr, Child: testutil.EntrySize},
				{Attr: dirAttr, Name: off[0], Next: testutil.EntrySize},
			}},
			want: ErrStructural,
		},
		{
			name: "shared child",
			container: testutil.TestContainer{Names: names, Entries: []testutil.TestEntry{
				{Attr: dirAttr, Child: testutil.EntrySize},
				{Attr: dirAttr, Name: off[0], Next: 2 * testutil.EntrySize, Child: 2 * testutil.EntrySize},
				{Attr: fileAttr, Name: off[1]},
			}},
			want: ErrStructural,
		},
		{
			name: "root is a file",
			container: testutil.TestContainer{Names: names, Entries: []testutil.TestEntry{
				{Attr: fileAttr},
			}},
			want: ErrMissingResource,
		},
		{
			name: "root has unknown attributes",
			container: testutil.TestContainer{Names: names, Entries: []testutil.TestEntry{
				{Attr: 0x20},
			}},
			want: ErrMissingResource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			buf := tt.raw
			if buf == nil {
				buf = testutil.BuildContainer(t, tt.container)
			}
			_, err := From(buf)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFrom_SkipsUnknownAttributes(t *testing.T) {
	t.Parallel()

	names, off := testutil.Names("archive", "x")
	buf := testutil.BuildContainer(t, testutil.TestContainer{
		Names: names,
		Data:  []byte("payload"),
		Entries: []testutil.TestEntry{
			{Attr: dirAttr, Child: testutil.EntrySize},
			{Attr: 0x20, Name: off[0], Next: 2 * testutil.EntrySize},
			{Attr: fileAttr, Name: off[1], Used: 7, Allocated: 7},
		},
	})

	root, err := From(buf)
	require.NoError(t, err)
	assert.Equal(t, 1, root.Len())
	f, ok := root.GetFile("x")
	require.True(t, ok)
	assert.Equal(t, "payload", string(f.Bytes()))
}

func TestFrom_FollowsHeaderOffsets(t *testing.T) {
	t.Parallel()

	// Names placed after the data region, with slack allocated.
	data := []byte("abc")
	names, off := testutil.Names("f")
	entries := []testutil.TestEntry{
		{Attr: dirAttr, Child: testutil.EntrySize},
		{Attr: fileAttr, Name: off[0], Used: 3, Allocated: 4},
	}
	buf := testutil.BuildContainer(t, testutil.TestContainer{
		Entries: entries,
		Data:    append(append(data, 0), names...),
		Override: func(h *testutil.RawHeader) {
			h.DataOffset = h.NamesOffset
			h.NamesOffset = h.DataOffset + 4
			h.NamesSizeUsed = uint32(len(names)) //nolint:gosec // test sizes
			h.NamesSizeAllocated = h.NamesSizeUsed
		},
	})

	root, err := From(buf)
	require.NoError(t, err)
	f, ok := root.GetFile("f")
	require.True(t, ok)
	assert.Equal(t, data, f.Bytes())
}

func TestFrom_CopiesFileData(t *testing.T) {
	t.Parallel()

	root := NewDirectory(nil)
	root.SetFile("f").SetBytes([]byte("orig"))
	buf, err := root.ToBuffer()
	require.NoError(t, err)

	got, err := From(buf)
	require.NoError(t, err)
	clear(buf)

	f, ok := got.GetFile("f")
	require.True(t, ok)
	assert.Equal(t, "orig", string(f.Bytes()))
}
