package utf

import (
	"fmt"
	"reflect"

	"github.com/meigma/utf/cursor"
)

// Kind tells the directory how a resource is stored.
type Kind uint8

// Resource kinds.
const (
	KindFile Kind = iota + 1
	KindDirectory
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Resource is an application object stored in a container. Implementations
// embed FileKind or DirectoryKind; the set of kinds is closed.
type Resource interface {
	resourceKind() Kind
}

// FileKind marks a resource stored as a single file.
type FileKind struct{}

func (FileKind) resourceKind() Kind { return KindFile }

// DirectoryKind marks a resource stored as a directory of entries.
type DirectoryKind struct{}

func (DirectoryKind) resourceKind() Kind { return KindDirectory }

// KindOf returns the kind r declares.
func KindOf(r Resource) Kind { return r.resourceKind() }

// FileReader decodes itself from the bytes of one file.
type FileReader interface {
	Resource
	cursor.Readable
}

// FileWriter encodes itself into the bytes of one file.
type FileWriter interface {
	Resource
	cursor.Writable
}

// FileResource is a file resource that can be both read and written.
type FileResource interface {
	Resource
	cursor.Readable
	cursor.Writable
}

// DirectoryReader populates itself from a directory.
type DirectoryReader interface {
	Resource
	ReadDirectory(d *Directory) error
}

// DirectoryWriter stores itself into a directory.
type DirectoryWriter interface {
	Resource
	WriteDirectory(d *Directory) error
}

// DirectoryResource is a directory resource that can be both read and
// written.
type DirectoryResource interface {
	DirectoryReader
	DirectoryWriter
}

// Filenamer supplies the default entry name of a resource. Resources that
// don't implement it are named after their Go type.
type Filenamer interface {
	Filename() string
}

// WriteOption configures Directory.Write.
type WriteOption func(*writeConfig)

type writeConfig struct {
	append bool
}

// WriteAppend appends a file resource to an existing file of the same name
// instead of replacing it.
func WriteAppend() WriteOption {
	return func(cfg *writeConfig) {
		cfg.append = true
	}
}

// Read decodes r from the member called name. An empty name selects the
// resource's default name; a directory resource whose default name is
// empty reads from d itself.
func (d *Directory) Read(r Resource, name string) error {
	if r == nil {
		return fmt.Errorf("%w: nil resource", ErrUnknownResource)
	}
	if name == "" {
		name = filename(r)
	}

	switch r.resourceKind() {
	case KindFile:
		fr, ok := r.(FileReader)
		if !ok {
			return fmt.Errorf("%w: %T cannot be read as a file", ErrUnknownResource, r)
		}
		f, ok := d.GetFile(name)
		if !ok {
			return fmt.Errorf("%w: file %q", ErrMissingResource, name)
		}
		if err := cursor.Unmarshal(f.Bytes(), fr); err != nil {
			return fmt.Errorf("utf: read %q: %w", name, err)
		}
		return nil

	case KindDirectory:
		dr, ok := r.(DirectoryReader)
		if !ok {
			return fmt.Errorf("%w: %T cannot be read as a directory", ErrUnknownResource, r)
		}
		sub := d
		if name != "" {
			if sub, ok = d.GetDirectory(name); !ok {
				return fmt.Errorf("%w: directory %q", ErrMissingResource, name)
			}
		}
		if err := dr.ReadDirectory(sub); err != nil {
			return fmt.Errorf("utf: read %q: %w", name, err)
		}
		return nil
	}

	return fmt.Errorf("%w: %T", ErrUnknownResource, r)
}

// Write stores r as the member called name, with the same naming rules as
// Read. A file resource of zero length and a directory resource that
// writes no members are not stored.
func (d *Directory) Write(r Resource, name string, opts ...WriteOption) error {
	if r == nil {
		return fmt.Errorf("%w: nil resource", ErrUnknownResource)
	}
	var cfg writeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if name == "" {
		name = filename(r)
	}

	switch r.resourceKind() {
	case KindFile:
		fw, ok := r.(FileWriter)
		if !ok {
			return fmt.Errorf("%w: %T cannot be written as a file", ErrUnknownResource, r)
		}
		if fw.ByteLength() == 0 {
			return nil
		}
		data, err := cursor.Marshal(fw)
		if err != nil {
			return fmt.Errorf("utf: write %q: %w", name, err)
		}
		if cfg.append {
			if f, ok := d.GetFile(name); ok {
				f.Push(data)
				return nil
			}
		}
		d.Set(name, NewFile(data))
		return nil

	case KindDirectory:
		dw, ok := r.(DirectoryWriter)
		if !ok {
			return fmt.Errorf("%w: %T cannot be written as a directory", ErrUnknownResource, r)
		}
		if name == "" {
			if err := dw.WriteDirectory(d); err != nil {
				return fmt.Errorf("utf: write: %w", err)
			}
			return nil
		}
		sub := NewDirectory(d.Registry())
		if err := dw.WriteDirectory(sub); err != nil {
			return fmt.Errorf("utf: write %q: %w", name, err)
		}
		if sub.Len() > 0 {
			d.Set(name, sub)
		}
		return nil
	}

	return fmt.Errorf("%w: %T", ErrUnknownResource, r)
}

func filename(r Resource) string {
	if n, ok := r.(Filenamer); ok {
		return n.Filename()
	}
	t := reflect.TypeOf(r)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
