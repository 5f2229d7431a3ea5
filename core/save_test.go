package utf

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveOpen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "ship.cmp")
	want := sampleTree()
	require.NoError(t, want.Save(path))

	got, err := Open(path)
	require.NoError(t, err)
	requireSameTree(t, want, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestOpen_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := Open(filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad")
	require.NoError(t, os.WriteFile(bad, []byte("not a container"), 0o600))
	_, err = Open(bad)
	require.ErrorIs(t, err, ErrRange)
}

func TestWriteFileAtomic_KeepsTargetOnFailure(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o600))

	boom := errors.New("boom")
	err := WriteFileAtomic(target, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	require.ErrorIs(t, err, boom)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))

	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
