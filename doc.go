// Package utf reads and writes UTF containers, the hash-indexed directory
// trees used to package game assets into a single buffer.
//
// This package re-exports the codec from the [core] subpackage and adds
// file helpers. The identity hashes live in [hash], cursor-based binary
// encoding in [cursor], and the id-keyed map underlying every directory in
// [resource].
//
// # Quick Start
//
// Build a tree and encode it:
//
//	root := utf.NewDirectory(nil)
//	root.SetDirectory("Hardpoints").SetDirectory("Fixed")
//	root.SetFile("Exporter Version").WriteStrings("1.0")
//	buf, err := root.ToBuffer()
//
// Decode it again:
//
//	root, err := utf.From(buf)
//	if err != nil {
//	    return err
//	}
//	for name, dir := range root.Directories() {
//	    fmt.Println(name, dir.Len())
//	}
//
// Members are keyed by resource id, so lookups ignore case:
//
//	hp, ok := root.GetDirectory("HARDPOINTS")
//
// # Resources
//
// Application types move through a tree by embedding [FileKind] or
// [DirectoryKind] and implementing the matching contract, then calling
// [Directory.Read] and [Directory.Write].
package utf
