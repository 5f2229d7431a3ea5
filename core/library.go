package utf

import (
	"fmt"

	"github.com/meigma/utf/resource"
)

// Library is a directory resource in which every subdirectory holds one
// resource of type T.
type Library[T DirectoryResource] struct {
	DirectoryKind
	resource.Map[T]

	// New creates the resource for the subdirectory called name. Returning
	// false skips the subdirectory.
	New func(dir *Directory, name string) (T, bool)
}

var _ DirectoryResource = (*Library[DirectoryResource])(nil)

// ByteLength returns the total payload size written by the library's
// resources that report one.
func (l *Library[T]) ByteLength() int {
	total := 0
	for _, r := range l.All() {
		if n, ok := any(r).(interface{ ByteLength() int }); ok {
			total += n.ByteLength()
		}
	}
	return total
}

// ReadDirectory creates and reads one resource per subdirectory of parent.
func (l *Library[T]) ReadDirectory(parent *Directory) error {
	if l.New == nil {
		return fmt.Errorf("%w: library has no constructor", ErrUnknownResource)
	}
	reg := parent.Registry()
	for id, n := range parent.All() {
		dir, ok := n.(*Directory)
		if !ok {
			continue
		}
		name, known := reg.Lookup(id)
		if !known {
			name = reg.Label(id)
		}
		r, ok := l.New(dir, name)
		if !ok {
			continue
		}
		if err := r.ReadDirectory(dir); err != nil {
			return fmt.Errorf("utf: library entry %q: %w", name, err)
		}
		if known {
			l.Set(name, r)
		} else {
			l.SetID(id, r)
		}
	}
	return nil
}

// WriteDirectory writes each resource into a subdirectory of parent named
// after its key.
func (l *Library[T]) WriteDirectory(parent *Directory) error {
	reg := l.Registry()
	for id, r := range l.All() {
		var dir *Directory
		if name, ok := reg.Lookup(id); ok {
			dir = parent.SetDirectory(name)
		} else {
			dir = parent.SetDirectoryID(id)
		}
		if err := r.WriteDirectory(dir); err != nil {
			return fmt.Errorf("utf: library entry %s: %w", l.Label(id), err)
		}
	}
	return nil
}
