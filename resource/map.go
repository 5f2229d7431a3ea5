package resource

import (
	"iter"
	"slices"

	"github.com/meigma/utf/hash"
)

// Map stores values under resource ids in insertion order.
//
// The zero value is ready to use; it creates its own Registry on the first
// named Set. Replacing the value of an existing id keeps its position.
type Map[T any] struct {
	reg   *Registry
	ids   []int32
	items map[int32]T
}

// NewMap returns an empty map recording names into reg. A nil reg is
// replaced by a fresh registry.
func NewMap[T any](reg *Registry) *Map[T] {
	m := &Map[T]{}
	m.Init(reg)
	return m
}

// Init resets m to an empty map recording names into reg.
func (m *Map[T]) Init(reg *Registry) {
	if reg == nil {
		reg = NewRegistry()
	}
	m.reg = reg
	m.ids = nil
	m.items = make(map[int32]T)
}

// Registry returns the registry names are recorded into.
func (m *Map[T]) Registry() *Registry {
	if m.reg == nil {
		m.reg = NewRegistry()
	}
	return m.reg
}

// Len returns the number of entries.
func (m *Map[T]) Len() int {
	return len(m.ids)
}

// Get returns the value stored under name.
func (m *Map[T]) Get(name string) (T, bool) {
	return m.GetID(hash.ResourceID(name, false))
}

// GetID returns the value stored under id.
func (m *Map[T]) GetID(id int32) (T, bool) {
	v, ok := m.items[id]
	return v, ok
}

// Has reports whether name is present.
func (m *Map[T]) Has(name string) bool {
	return m.HasID(hash.ResourceID(name, false))
}

// HasID reports whether id is present.
func (m *Map[T]) HasID(id int32) bool {
	_, ok := m.items[id]
	return ok
}

// Set stores v under the id of name and records name for display.
func (m *Map[T]) Set(name string, v T) {
	id := hash.ResourceID(name, false)
	m.Registry().Record(id, name)
	m.SetID(id, v)
}

// SetID stores v under id without recording a name.
func (m *Map[T]) SetID(id int32, v T) {
	if m.items == nil {
		m.items = make(map[int32]T)
	}
	if _, ok := m.items[id]; !ok {
		m.ids = append(m.ids, id)
	}
	m.items[id] = v
}

// Delete removes name and reports whether it was present.
func (m *Map[T]) Delete(name string) bool {
	return m.DeleteID(hash.ResourceID(name, false))
}

// DeleteID removes id and reports whether it was present.
func (m *Map[T]) DeleteID(id int32) bool {
	if _, ok := m.items[id]; !ok {
		return false
	}
	delete(m.items, id)
	m.ids = slices.DeleteFunc(m.ids, func(v int32) bool { return v == id })
	return true
}

// Clear removes every entry. Recorded names are kept.
func (m *Map[T]) Clear() {
	m.ids = nil
	clear(m.items)
}

// IDs returns the ids in insertion order.
func (m *Map[T]) IDs() []int32 {
	return slices.Clone(m.ids)
}

// Label returns the display label for id.
func (m *Map[T]) Label(id int32) string {
	return m.reg.Label(id)
}

// All iterates over ids and values in insertion order. Entries may be
// deleted while iterating.
func (m *Map[T]) All() iter.Seq2[int32, T] {
	return func(yield func(int32, T) bool) {
		for _, id := range slices.Clone(m.ids) {
			v, ok := m.items[id]
			if !ok {
				continue
			}
			if !yield(id, v) {
				return
			}
		}
	}
}

// Labels iterates over the display labels in insertion order.
func (m *Map[T]) Labels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for id := range m.All() {
			if !yield(m.Label(id)) {
				return
			}
		}
	}
}

// Objects iterates over labels and values in insertion order.
func (m *Map[T]) Objects() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for id, v := range m.All() {
			if !yield(m.Label(id), v) {
				return
			}
		}
	}
}
