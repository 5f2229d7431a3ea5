package resource

import (
	"fmt"
	"sync"
)

// Registry is a reverse lookup table from resource id to the name that
// produced it. The last name recorded for an id wins.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	names map[int32]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[int32]string)}
}

// Record stores name as the label for id.
func (r *Registry) Record(id int32, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.names == nil {
		r.names = make(map[int32]string)
	}
	r.names[id] = name
}

// Lookup returns the recorded name for id.
func (r *Registry) Lookup(id int32) (string, bool) {
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.names[id]
	return name, ok
}

// Label returns the recorded name for id, or its hexadecimal rendering when
// the name was never observed.
func (r *Registry) Label(id int32) string {
	if name, ok := r.Lookup(id); ok {
		return name
	}
	return Hex(id)
}

// Len returns the number of recorded names.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// Hex renders id as an eight digit upper-case hexadecimal label.
func Hex(id int32) string {
	return fmt.Sprintf("0x%08X", uint32(id)) //nolint:gosec // reinterpreted as unsigned
}
