package utf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Open reads and decodes the container at path.
func Open(path string, opts ...Option) (*Directory, error) {
	buf, err := os.ReadFile(path) //nolint:gosec // caller-supplied path
	if err != nil {
		return nil, err
	}
	d, err := From(buf, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Save encodes d and writes it to path.
//
// Uses atomic writes (temp file + rename) to prevent partial writes on failure.
// Parent directories are created as needed.
func (d *Directory) Save(path string, opts ...Option) error {
	buf, err := d.ToBuffer(opts...)
	if err != nil {
		return err
	}
	return WriteFileAtomic(path, func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(buf))
		return err
	})
}

// WriteFileAtomic streams fill into a temp file next to target, then
// renames it over target. Parent directories are created as needed.
func WriteFileAtomic(target string, fill func(io.Writer) error) error {
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".utf-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if err := fill(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
