package utf

import (
	"fmt"
	"iter"
	"slices"

	"github.com/meigma/utf/cursor"
	"github.com/meigma/utf/hash"
	"github.com/meigma/utf/resource"
)

// Node is a File or a Directory.
type Node interface {
	// ByteLength returns the payload size, summed over descendants for a
	// directory.
	ByteLength() int

	node()
}

var (
	_ Node = (*File)(nil)
	_ Node = (*Directory)(nil)
)

// Directory is an internal node: a resource map of child nodes keyed by
// the resource id of their names.
type Directory struct {
	resource.Map[Node]
}

// NewDirectory returns an empty directory recording names into reg. A nil
// reg creates a fresh registry.
func NewDirectory(reg *resource.Registry) *Directory {
	d := &Directory{}
	d.Init(reg)
	return d
}

func (*Directory) node() {}

// Child is one named member of a directory. Name is empty when only the
// id is known.
type Child struct {
	ID   int32
	Name string
	Node Node
}

// Named returns a child keyed by name.
func Named(name string, n Node) Child {
	return Child{ID: hash.ResourceID(name, false), Name: name, Node: n}
}

// ByteLength returns the total payload size of all descendant files.
func (d *Directory) ByteLength() int {
	total := 0
	for _, n := range d.All() {
		total += n.ByteLength()
	}
	return total
}

// Children iterates over the members of d in insertion order.
func (d *Directory) Children() iter.Seq[Child] {
	return func(yield func(Child) bool) {
		reg := d.Registry()
		for id, n := range d.All() {
			name, _ := reg.Lookup(id)
			if !yield(Child{ID: id, Name: name, Node: n}) {
				return
			}
		}
	}
}

// Directories iterates over the subdirectories of d by label.
func (d *Directory) Directories() iter.Seq2[string, *Directory] {
	return func(yield func(string, *Directory) bool) {
		for label, n := range d.Objects() {
			if sub, ok := n.(*Directory); ok && !yield(label, sub) {
				return
			}
		}
	}
}

// Files iterates over the files of d by label.
func (d *Directory) Files() iter.Seq2[string, *File] {
	return func(yield func(string, *File) bool) {
		for label, n := range d.Objects() {
			if f, ok := n.(*File); ok && !yield(label, f) {
				return
			}
		}
	}
}

// GetDirectory returns the subdirectory called name.
func (d *Directory) GetDirectory(name string) (*Directory, bool) {
	return d.GetDirectoryID(hash.ResourceID(name, false))
}

// GetDirectoryID returns the subdirectory stored under id.
func (d *Directory) GetDirectoryID(id int32) (*Directory, bool) {
	n, _ := d.GetID(id)
	sub, ok := n.(*Directory)
	return sub, ok
}

// GetFile returns the file called name.
func (d *Directory) GetFile(name string) (*File, bool) {
	return d.GetFileID(hash.ResourceID(name, false))
}

// GetFileID returns the file stored under id.
func (d *Directory) GetFileID(id int32) (*File, bool) {
	n, _ := d.GetID(id)
	f, ok := n.(*File)
	return f, ok
}

// SetDirectory returns the subdirectory called name, replacing any file of
// that name with a new empty directory.
func (d *Directory) SetDirectory(name string) *Directory {
	if sub, ok := d.GetDirectory(name); ok {
		return sub
	}
	sub := NewDirectory(d.Registry())
	d.Set(name, sub)
	return sub
}

// SetDirectoryID is SetDirectory for a child known only by id.
func (d *Directory) SetDirectoryID(id int32) *Directory {
	if sub, ok := d.GetDirectoryID(id); ok {
		return sub
	}
	sub := NewDirectory(d.Registry())
	d.SetID(id, sub)
	return sub
}

// SetFile returns the file called name, replacing any directory of that
// name with a new empty file.
func (d *Directory) SetFile(name string) *File {
	if f, ok := d.GetFile(name); ok {
		return f
	}
	f := NewFile(nil)
	d.Set(name, f)
	return f
}

// SetFileID is SetFile for a child known only by id.
func (d *Directory) SetFileID(id int32) *File {
	if f, ok := d.GetFileID(id); ok {
		return f
	}
	f := NewFile(nil)
	d.SetID(id, f)
	return f
}

// Adopt merges children into d. When both the existing member and the
// incoming node are directories and the incoming one is not empty, its
// members are adopted recursively. Otherwise the incoming node replaces
// whatever was there.
func (d *Directory) Adopt(children ...Child) *Directory {
	for _, c := range children {
		id := c.ID
		if c.Name != "" {
			id = hash.ResourceID(c.Name, false)
		}

		if incoming, ok := c.Node.(*Directory); ok && incoming.Len() > 0 {
			if existing, ok := d.GetDirectoryID(id); ok && existing != incoming {
				existing.Adopt(slices.Collect(incoming.Children())...)
				continue
			}
		}

		if c.Name != "" {
			d.Set(c.Name, c.Node)
		} else {
			d.SetID(id, c.Node)
		}
	}
	return d
}

// ReadFile decodes the file called name with fn.
func (d *Directory) ReadFile(name string, fn func(*cursor.Cursor) error) error {
	f, ok := d.GetFile(name)
	if !ok {
		return fmt.Errorf("%w: file %q", ErrMissingResource, name)
	}
	c := f.Cursor()
	if err := fn(c); err != nil {
		return fmt.Errorf("utf: read %q: %w", name, err)
	}
	if err := c.Err(); err != nil {
		return fmt.Errorf("utf: read %q: %w", name, err)
	}
	return nil
}

// WriteFile stores a new file of byteLength bytes called name, filled by fn.
// The file is only stored when fn succeeds.
func (d *Directory) WriteFile(name string, byteLength int, fn func(*cursor.Cursor) error) error {
	f := NewFileSize(byteLength)
	c := f.Cursor()
	if err := fn(c); err != nil {
		return fmt.Errorf("utf: write %q: %w", name, err)
	}
	if err := c.Err(); err != nil {
		return fmt.Errorf("utf: write %q: %w", name, err)
	}
	d.Set(name, f)
	return nil
}
