// Package utf reads and writes UTF containers: hash-indexed directory trees
// packed into one contiguous buffer.
//
// A container is a 56-byte header followed by the three regions it locates:
//   - Tree: fixed 44-byte entries, linked by first-child and next-sibling offsets
//   - Names: NUL-terminated entry names, each stored once
//   - Data: file payloads laid end to end
//
// Directory members are keyed by the resource id of their names (see package
// hash); names themselves are kept in a resource.Registry for display only.
//
// Application objects move in and out of a tree through the Resource seam:
// a resource embeds FileKind and encodes itself into one file, or embeds
// DirectoryKind and populates a directory of its own.
package utf
