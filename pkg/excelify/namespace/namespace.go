// Package namespace provides the name-to-value mapping exports read from.
package namespace

import "sort"

// Entry is one named binding in a namespace snapshot.
type Entry struct {
	Name  string
	Value any
}

// Map is an in-memory namespace. The zero value is not usable; use New.
type Map struct {
	vars map[string]any
}

// New returns an empty namespace.
func New() *Map {
	return &Map{vars: make(map[string]any)}
}

// FromMap copies vars into a new namespace.
func FromMap(vars map[string]any) *Map {
	m := New()
	for k, v := range vars {
		m.vars[k] = v
	}
	return m
}

// Get returns the value bound to name.
func (m *Map) Get(name string) (any, bool) {
	v, ok := m.vars[name]
	return v, ok
}

// Set binds value to name, replacing any previous binding.
func (m *Map) Set(name string, value any) {
	m.vars[name] = value
}

// Delete removes name and reports whether it was bound.
func (m *Map) Delete(name string) bool {
	_, ok := m.vars[name]
	delete(m.vars, name)
	return ok
}

// Len returns the number of bindings.
func (m *Map) Len() int {
	return len(m.vars)
}

// Items returns a snapshot of all bindings ordered by name.
func (m *Map) Items() []Entry {
	entries := make([]Entry, 0, len(m.vars))
	for k, v := range m.vars {
		entries = append(entries, Entry{Name: k, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}
