package resolver

import (
	"fmt"

	"github.com/tsawler/pdfraster/core"
)

// Source supplies indirect objects by reference.
type Source interface {
	Object(ref core.IndirectRef) (core.Object, error)
}

// MapSource is an in-memory Source keyed by object number.
type MapSource map[int]core.Object

// Object returns the object stored under ref's number. An unknown number
// resolves to null, matching how PDF readers treat dangling references.
func (m MapSource) Object(ref core.IndirectRef) (core.Object, error) {
	obj, ok := m[ref.Number]
	if !ok {
		return core.Null{}, nil
	}
	return obj, nil
}

// ObjectResolver dereferences indirect references against a Source.
// The zero value is not usable; construct with New.
type ObjectResolver struct {
	source   Source
	maxDepth int
}

// Option configures an ObjectResolver.
type Option func(*ObjectResolver)

// WithMaxDepth sets the maximum length of a reference chain (default 32).
func WithMaxDepth(depth int) Option {
	return func(r *ObjectResolver) {
		r.maxDepth = depth
	}
}

// New creates an ObjectResolver reading from source.
func New(source Source, opts ...Option) *ObjectResolver {
	r := &ObjectResolver{
		source:   source,
		maxDepth: 32,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve follows obj through any chain of indirect references and returns
// the first non-reference value. Non-reference objects are returned as-is.
// Reference cycles and chains longer than the configured depth fail.
func (r *ObjectResolver) Resolve(obj core.Object) (core.Object, error) {
	seen := make(map[int]bool)

	for depth := 0; ; depth++ {
		ref, ok := obj.(core.IndirectRef)
		if !ok {
			return obj, nil
		}
		if depth >= r.maxDepth {
			return nil, fmt.Errorf("reference chain exceeds depth %d", r.maxDepth)
		}
		if seen[ref.Number] {
			return nil, fmt.Errorf("circular reference for object %d", ref.Number)
		}
		seen[ref.Number] = true

		next, err := r.source.Object(ref)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", ref, err)
		}
		obj = next
	}
}
