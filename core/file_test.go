package utf

import (
	"slices"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/utf/cursor"
	"github.com/meigma/utf/internal/testutil"
)

type vec3 struct{ X, Y, Z float32 }

func (*vec3) ByteLength() int { return 12 }

func (v *vec3) Decode(c *cursor.Cursor) error {
	v.X, v.Y, v.Z = c.ReadFloat32(), c.ReadFloat32(), c.ReadFloat32()
	return nil
}

func (v *vec3) Encode(c *cursor.Cursor) error {
	c.WriteFloat32(v.X)
	c.WriteFloat32(v.Y)
	c.WriteFloat32(v.Z)
	return nil
}

func TestFile_Integers(t *testing.T) {
	t.Parallel()

	f := new(File).WriteIntegers(10, 400, 0xffff, 900000)
	assert.Equal(t, 16, f.ByteLength())
	assert.Equal(t, []int32{10, 400, 0xffff, 900000}, slices.Collect(f.Integers()))

	v, ok := f.Integer()
	require.True(t, ok)
	assert.Equal(t, int32(10), v)

	// Trailing bytes narrow to int16 then int8.
	odd := NewFile([]byte{1, 0, 0, 0, 2, 0, 0xff})
	assert.Equal(t, []int32{1, 2, -1}, slices.Collect(odd.Integers()))

	_, ok = new(File).Integer()
	assert.False(t, ok)
}

func TestFile_Floats(t *testing.T) {
	t.Parallel()

	f := new(File).WriteFloats(1.5, -2, 0.25)
	assert.Equal(t, 12, f.ByteLength())
	f.Push([]byte{1, 2})
	assert.Equal(t, []float32{1.5, -2, 0.25}, slices.Collect(f.Floats()))

	v, ok := f.Float()
	require.True(t, ok)
	assert.Equal(t, float32(1.5), v)
}

func TestFile_Strings(t *testing.T) {
	t.Parallel()

	f := new(File).WriteStrings("Hello", "world", "and", "others")
	assert.Equal(t, 23, f.ByteLength())
	assert.Equal(t, []string{"Hello", "world", "and", "others"}, slices.Collect(f.Strings()))

	g := NewFileStrings("Hello")
	assert.Equal(t, 6, g.ByteLength())
	s, ok := g.Text()
	require.True(t, ok)
	assert.Equal(t, "Hello", s)

	// A missing terminator still yields the tail.
	assert.Equal(t, []string{"a", "bc"}, slices.Collect(NewFile([]byte("a\x00bc")).Strings()))
}

func TestFile_SetByteLength(t *testing.T) {
	t.Parallel()

	f := NewFile([]byte{1, 2, 3, 4})
	f.SetByteLength(2)
	assert.Equal(t, []byte{1, 2}, f.Bytes())

	f.SetByteLength(4)
	assert.Equal(t, []byte{1, 2, 0, 0}, f.Bytes(), "extension zero-fills")

	f.SetByteLength(8)
	assert.Equal(t, []byte{1, 2, 0, 0, 0, 0, 0, 0}, f.Bytes())

	f.SetByteLength(-1)
	assert.Equal(t, 0, f.ByteLength())

	assert.Equal(t, 3, NewFileSize(3).ByteLength())
}

func TestFile_Push(t *testing.T) {
	t.Parallel()

	f := NewFile([]byte("ab")).Push([]byte("c"), nil, []byte("de"))
	assert.Equal(t, "abcde", string(f.Bytes()))
}

func TestFile_Digest(t *testing.T) {
	t.Parallel()

	f := NewFileStrings("x")
	assert.Equal(t, digest.FromBytes([]byte("x\x00")), f.Digest())
	require.NoError(t, f.Digest().Validate())
}

func TestFile_Records(t *testing.T) {
	t.Parallel()

	f := new(File)
	require.NoError(t, f.WriteRecords(&vec3{1, 2, 3}, &vec3{4, 5, 6}))
	assert.Equal(t, 24, f.ByteLength())

	var offsets []int
	got, err := ReadRecords(f, func(_, offset, _ int) (*vec3, bool) {
		offsets = append(offsets, offset)
		return &vec3{}, true
	})
	require.NoError(t, err)
	assert.Equal(t, []*vec3{{1, 2, 3}, {4, 5, 6}}, got)
	assert.Equal(t, []int{0, 12}, offsets)

	// The callback may stop early.
	got, err = ReadRecords(f, func(index, _, _ int) (*vec3, bool) {
		return &vec3{}, index == 0
	})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	// A short tail is a range error.
	f.SetByteLength(20)
	_, err = ReadRecords(f, func(_, _, _ int) (*vec3, bool) { return &vec3{}, true })
	require.ErrorIs(t, err, ErrRange)
}

func TestFile_CursorDiscipline(t *testing.T) {
	t.Parallel()

	testutil.RequireCursorDiscipline(t, &vec3{1, 2, 3}, &vec3{})
}
