package registry

import (
	"maps"
	"slices"
)

// Module is the interface that all modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered sources and sinks of a single application
// instance.
type Registry struct {
	Sources map[string]*RegisteredSource
	Sinks   map[string]*RegisteredSink
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		Sources: make(map[string]*RegisteredSource),
		Sinks:   make(map[string]*RegisteredSink),
	}
}

// Source returns the handler registered for name.
func (r *Registry) Source(name string) (*RegisteredSource, bool) {
	s, ok := r.Sources[name]
	return s, ok
}

// SourceNames lists registered source names in sorted order.
func (r *Registry) SourceNames() []string {
	return slices.Sorted(maps.Keys(r.Sources))
}

// SinkNames lists registered sink names in sorted order.
func (r *Registry) SinkNames() []string {
	return slices.Sorted(maps.Keys(r.Sinks))
}
