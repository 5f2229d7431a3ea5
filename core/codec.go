package utf

import (
	"bytes"
	"fmt"

	"github.com/meigma/utf/cursor"
	"github.com/meigma/utf/internal/dictionary"
	"github.com/meigma/utf/internal/sizing"
	"github.com/meigma/utf/resource"
)

// RootName is the display name of the implicit root directory.
const RootName = `\`

// pending is an entry waiting to be decoded, with the directory it belongs
// to. A nil parent marks a root candidate.
type pending struct {
	offset uint32
	parent *Directory
}

// From decodes a container. The tree is walked breadth-first from the root
// entry; file payloads are copied out of buf.
func From(buf []byte, opts ...Option) (*Directory, error) {
	cfg := newConfig(opts)

	h, err := ReadHeader(buf)
	if err != nil {
		return nil, err
	}

	reg := cfg.registry
	if reg == nil {
		reg = resource.NewRegistry()
	}

	tree := buf[h.TreeOffset : uint64(h.TreeOffset)+uint64(h.TreeSize)]
	names := buf[h.NamesOffset : uint64(h.NamesOffset)+uint64(h.NamesSizeUsed)]

	var (
		root    *Directory
		entry   Entry
		queue   = []pending{{offset: h.EntryOffset}}
		visited = make(map[uint32]struct{})
		skipped int
	)

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if _, ok := sizing.Span(item.offset, EntrySize, len(tree)); !ok {
			return nil, fmt.Errorf("utf: entry at %d: %w: exceeds tree of %d", item.offset, ErrRange, len(tree))
		}
		if _, seen := visited[item.offset]; seen {
			return nil, fmt.Errorf("utf: entry at %d: %w: reached twice", item.offset, ErrStructural)
		}
		visited[item.offset] = struct{}{}

		entry = Entry{}
		if err := cursor.Unmarshal(tree[item.offset:], &entry); err != nil {
			return nil, fmt.Errorf("utf: entry at %d: %w", item.offset, err)
		}

		if uint64(entry.NameOffset) > uint64(len(names)) {
			return nil, fmt.Errorf("utf: entry at %d: %w: name offset %d exceeds dictionary of %d",
				item.offset, ErrRange, entry.NameOffset, len(names))
		}
		name := zstring(names[entry.NameOffset:])

		if item.parent != nil && entry.NextOffset > 0 {
			queue = append(queue, pending{offset: entry.NextOffset, parent: item.parent})
		}

		switch {
		case entry.IsFile():
			if item.parent == nil {
				cfg.log().Debug("skipped parentless file", "offset", item.offset, "name", name)
				continue
			}
			data, err := fileData(buf, &h, &entry)
			if err != nil {
				return nil, fmt.Errorf("utf: file %q: %w", name, err)
			}
			item.parent.Set(name, NewFile(data))

		case entry.IsDirectory():
			dir := NewDirectory(reg)
			if item.parent != nil {
				item.parent.Set(name, dir)
			} else {
				root = dir
			}
			if entry.ChildOffset > 0 {
				queue = append(queue, pending{offset: entry.ChildOffset, parent: dir})
			}

		default:
			skipped++
			cfg.log().Debug("skipped entry with unknown attributes",
				"offset", item.offset, "name", name, "attributes", uint32(entry.FileAttributes))
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root directory entry", ErrMissingResource)
	}

	cfg.log().Debug("decoded container",
		"entries", len(visited), "skipped", skipped, "names", h.NamesSizeUsed, "bytes", len(buf))
	return root, nil
}

// fileData copies the payload of a file entry out of buf.
func fileData(buf []byte, h *Header, e *Entry) ([]byte, error) {
	if e.DataSizeUsed > e.DataSizeAllocated {
		return nil, fmt.Errorf("%w: used size %d exceeds allocated %d", ErrRange, e.DataSizeUsed, e.DataSizeAllocated)
	}
	start := uint64(h.DataOffset) + uint64(e.ChildOffset)
	end := start + uint64(e.DataSizeUsed)
	if end > uint64(len(buf)) {
		return nil, fmt.Errorf("%w: data [%d, %d) exceeds buffer of %d", ErrRange, start, end, len(buf))
	}
	data := make([]byte, end-start)
	copy(data, buf[start:end])
	return data, nil
}

func zstring(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// slot is one linearized entry. Its index times EntrySize is its offset in
// the tree region.
type slot struct {
	node  Node
	name  string
	entry Entry
}

// ToBuffer encodes d as a container. Members are laid out breadth-first in
// insertion order, so encoding an unchanged tree twice gives identical
// bytes. Members with an empty name are left out.
func (d *Directory) ToBuffer(opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)

	dict := dictionary.New(cfg.wordSize)
	// Offset zero is the empty-name tombstone, which the root also uses.
	if _, err := dict.Push(""); err != nil {
		return nil, err
	}

	var (
		slots    = []slot{{node: d, name: RootName}}
		chunks   [][]byte
		dataSize int
		seen     = make(map[*Directory]struct{})
	)

	for i := 0; i < len(slots); i++ {
		e := slots[i].entry
		e.SetTime(cfg.time)

		if i > 0 {
			r, err := dict.Push(slots[i].name)
			if err != nil {
				return nil, fmt.Errorf("utf: name %q: %w", slots[i].name, err)
			}
			e.NameOffset = uint32(r.Begin) //nolint:gosec // bounded by the tree offset check below
		}

		switch n := slots[i].node.(type) {
		case *File:
			e.FileAttributes = AttributeNormal
			size, err := sizing.ToUint32(n.ByteLength(), ErrRange)
			if err != nil {
				return nil, fmt.Errorf("utf: file %q: %w", slots[i].name, err)
			}
			if e.ChildOffset, err = sizing.ToUint32(dataSize, ErrRange); err != nil {
				return nil, fmt.Errorf("utf: data region: %w", err)
			}
			e.DataSizeAllocated, e.DataSizeUsed, e.DataSizeUncompressed = size, size, size
			chunks = append(chunks, n.Bytes())
			dataSize += n.ByteLength()

		case *Directory:
			e.FileAttributes = AttributeDirectory
			if _, ok := seen[n]; ok {
				return nil, fmt.Errorf("utf: directory %q: %w: reachable twice", slots[i].name, ErrStructural)
			}
			seen[n] = struct{}{}

			prev := -1
			for id, child := range n.All() {
				name := n.Label(id)
				if name == "" {
					continue
				}
				idx := len(slots)
				offset, err := sizing.ToUint32(idx*EntrySize, ErrRange)
				if err != nil {
					return nil, fmt.Errorf("utf: tree region: %w", err)
				}
				slots = append(slots, slot{node: child, name: name})
				if prev < 0 {
					e.ChildOffset = offset
				} else {
					slots[prev].entry.NextOffset = offset
				}
				prev = idx
			}

		default:
			return nil, fmt.Errorf("utf: member %q: %w: %T", slots[i].name, ErrUnknownResource, n)
		}

		slots[i].entry = e
	}

	h := Header{TreeOffset: HeaderSize}
	h.SetTime(cfg.time)
	var err error
	if h.TreeSize, err = sizing.ToUint32(len(slots)*EntrySize, ErrRange); err != nil {
		return nil, fmt.Errorf("utf: tree region: %w", err)
	}
	if h.NamesSizeUsed, err = sizing.ToUint32(dict.Len(), ErrRange); err != nil {
		return nil, fmt.Errorf("utf: names region: %w", err)
	}
	h.NamesSizeAllocated = h.NamesSizeUsed
	total := HeaderSize + len(slots)*EntrySize + dict.Len() + dataSize
	if _, err := sizing.ToUint32(total, ErrRange); err != nil {
		return nil, fmt.Errorf("utf: container of %d bytes: %w", total, err)
	}
	h.NamesOffset = h.TreeOffset + h.TreeSize
	h.DataOffset = h.NamesOffset + h.NamesSizeAllocated

	c := cursor.Alloc(total)
	if err := c.Write(&h); err != nil {
		return nil, fmt.Errorf("utf: write header: %w", err)
	}
	for i := range slots {
		if err := c.Write(&slots[i].entry); err != nil {
			return nil, fmt.Errorf("utf: write entry %d: %w", i, err)
		}
	}
	c.WriteBytes(dict.Bytes())
	for _, chunk := range chunks {
		c.WriteBytes(chunk)
	}
	if err := c.Err(); err != nil {
		return nil, fmt.Errorf("utf: write container: %w", err)
	}

	cfg.log().Debug("encoded container",
		"entries", len(slots), "names", dict.Len(), "data_size", dataSize, "bytes", total)
	return c.Bytes(), nil
}

// MarshalBinary implements encoding.BinaryMarshaler with default options.
func (d *Directory) MarshalBinary() ([]byte, error) {
	return d.ToBuffer()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, replacing the
// members of d with the decoded tree. Names are recorded into the
// registry of d.
func (d *Directory) UnmarshalBinary(data []byte) error {
	root, err := From(data, WithRegistry(d.Registry()))
	if err != nil {
		return err
	}
	d.Clear()
	for c := range root.Children() {
		d.SetID(c.ID, c.Node)
	}
	return nil
}
