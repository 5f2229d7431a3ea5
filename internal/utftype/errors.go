package utftype

import "errors"

// Sentinel errors for container operations.
var (
	// ErrStructural is returned when a fixed field (magic, version, entry size)
	// does not match or the entry tree is not a tree.
	ErrStructural = errors.New("utf: structural error")

	// ErrRange is returned when an offset or size falls outside its region.
	ErrRange = errors.New("utf: out of range")

	// ErrMissingResource is returned when an expected entry is absent.
	ErrMissingResource = errors.New("utf: missing resource")

	// ErrUnknownResource is returned when a resource is neither a file nor a directory.
	ErrUnknownResource = errors.New("utf: unknown resource kind")
)
