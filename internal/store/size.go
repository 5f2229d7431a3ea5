package store

import (
	"cmp"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

type entry struct {
	path    string
	size    int64
	modTime time.Time
}

// walk lists the stored entries under root, skipping in-flight temp files.
func walk(root string) ([]entry, int64, error) {
	var (
		entries []entry
		total   int64
	)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		entries = append(entries, entry{path: path, size: info.Size(), modTime: info.ModTime()})
		return nil
	})
	if errors.Is(err, os.ErrNotExist) {
		return nil, 0, nil
	}
	return entries, total, err
}

func dirSize(root string) (int64, error) {
	_, total, err := walk(root)
	return total, err
}

// pruneDir removes entries oldest first until at most targetBytes remain.
func pruneDir(root string, targetBytes int64) (freed, remaining int64, err error) {
	entries, remaining, err := walk(root)
	if err != nil || remaining <= targetBytes {
		return 0, remaining, err
	}

	slices.SortFunc(entries, func(a, b entry) int {
		if c := a.modTime.Compare(b.modTime); c != 0 {
			return c
		}
		return cmp.Compare(a.path, b.path)
	})

	for _, e := range entries {
		if remaining <= targetBytes {
			break
		}
		if err := os.Remove(e.path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return freed, remaining, err
		}
		remaining -= e.size
		freed += e.size
	}
	return freed, remaining, nil
}
