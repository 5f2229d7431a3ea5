package utf

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/opencontainers/go-digest"
)

// Manifest kinds.
const (
	ManifestFile      = "file"
	ManifestDirectory = "directory"
)

// Manifest is a JSON description of a tree. File payloads are either
// summarized by length and digest or, from Export, located in a sidecar by
// offset.
type Manifest struct {
	Kind       string        `json:"kind"`
	Name       string        `json:"name"`
	ByteLength int           `json:"byteLength"`
	ByteOffset *int64        `json:"byteOffset,omitempty"`
	Digest     digest.Digest `json:"digest,omitempty"`
	Children   []Manifest    `json:"children,omitempty"`
}

// Manifest describes d without payload offsets.
func (d *Directory) Manifest() Manifest {
	m, _ := d.manifest(RootName, nil, nil)
	return m
}

// Export describes d and writes every file payload to data in manifest
// order, recording each payload's offset.
func (d *Directory) Export(data io.Writer) (Manifest, error) {
	var offset int64
	return d.manifest(RootName, data, &offset)
}

// WriteJSON writes the manifest of d to w as indented JSON.
func (d *Directory) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d.Manifest())
}

func (d *Directory) manifest(name string, data io.Writer, offset *int64) (Manifest, error) {
	m := Manifest{
		Kind:       ManifestDirectory,
		Name:       name,
		ByteLength: d.ByteLength(),
	}
	for id, n := range d.All() {
		label := d.Label(id)
		switch n := n.(type) {
		case *File:
			child := Manifest{
				Kind:       ManifestFile,
				Name:       label,
				ByteLength: n.ByteLength(),
				Digest:     n.Digest(),
			}
			if data != nil {
				at := *offset
				child.ByteOffset = &at
				written, err := data.Write(n.Bytes())
				if err != nil {
					return m, fmt.Errorf("utf: export %q: %w", label, err)
				}
				*offset += int64(written)
			}
			m.Children = append(m.Children, child)
		case *Directory:
			child, err := n.manifest(label, data, offset)
			if err != nil {
				return m, err
			}
			m.Children = append(m.Children, child)
		}
	}
	return m, nil
}
