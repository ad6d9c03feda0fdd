// Package resolve looks up declaration trees by logical tab id.
package resolve

import (
	"sync"

	"github.com/go-drift/ribbon/pkg/decl"
)

// Resolver returns the declaration for a logical tab id. A miss is routine and
// reported as false, never as a panic. Implementations must be safe for
// concurrent use and must not mutate global state.
type Resolver interface {
	Resolve(id string) (*decl.Tab, bool)
}

// Func adapts a function to Resolver.
type Func func(id string) (*decl.Tab, bool)

// Resolve calls f.
func (f Func) Resolve(id string) (*decl.Tab, bool) { return f(id) }

// Map is an in-memory Resolver.
type Map struct {
	mu   sync.RWMutex
	tabs map[string]*decl.Tab
}

// NewMap returns a Map holding tabs keyed by their ID.
func NewMap(tabs ...*decl.Tab) *Map {
	m := &Map{tabs: make(map[string]*decl.Tab, len(tabs))}
	for _, t := range tabs {
		m.Put(t.ID, t)
	}
	return m
}

// Put stores t under id, replacing any previous entry.
func (m *Map) Put(id string, t *decl.Tab) {
	m.mu.Lock()
	if m.tabs == nil {
		m.tabs = make(map[string]*decl.Tab)
	}
	m.tabs[id] = t
	m.mu.Unlock()
}

// Resolve implements Resolver.
func (m *Map) Resolve(id string) (*decl.Tab, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tabs[id]
	return t, ok && t != nil
}

// Chain tries each resolver in order and returns the first hit.
type Chain []Resolver

// Resolve implements Resolver.
func (c Chain) Resolve(id string) (*decl.Tab, bool) {
	for _, r := range c {
		if r == nil {
			continue
		}
		if t, ok := r.Resolve(id); ok {
			return t, true
		}
	}
	return nil, false
}
