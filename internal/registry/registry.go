// Package registry holds the static catalog of synthesis method templates.
package registry

import (
	"fmt"

	"github.com/starford/imaginarium/internal/apperr"
)

// Registry is the read-only method catalog. It is constructed once, validated
// at load time, and passed by reference into the pipeline; it is safe to share
// across concurrent pipeline runs because it is never mutated after New.
type Registry struct {
	methods []*MethodTemplate
	byID    map[string]*MethodTemplate
}

// New builds the registry from the built-in catalog, failing fast on any
// malformed template.
func New() (*Registry, error) {
	return newFrom(catalog())
}

// newFrom validates templates and indexes them. Split out so tests can load
// deliberately broken catalogs.
func newFrom(tpls []*MethodTemplate) (*Registry, error) {
	r := &Registry{
		methods: make([]*MethodTemplate, 0, len(tpls)),
		byID:    make(map[string]*MethodTemplate, len(tpls)),
	}
	for _, t := range tpls {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("%w: method %q: %v", apperr.ErrConfig, t.ID, err)
		}
		if _, dup := r.byID[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate method id %q", apperr.ErrConfig, t.ID)
		}
		r.methods = append(r.methods, t)
		r.byID[t.ID] = t
	}
	if len(r.methods) == 0 {
		return nil, fmt.Errorf("%w: empty catalog", apperr.ErrConfig)
	}
	return r, nil
}

// All returns every template in declaration order.
func (r *Registry) All() []*MethodTemplate {
	out := make([]*MethodTemplate, len(r.methods))
	copy(out, r.methods)
	return out
}

// ByFamily returns the subsequence of templates belonging to f, preserving
// declaration order.
func (r *Registry) ByFamily(f Family) []*MethodTemplate {
	var out []*MethodTemplate
	for _, t := range r.methods {
		if t.Family == f {
			out = append(out, t)
		}
	}
	return out
}

// Lookup returns the template with the given id.
func (r *Registry) Lookup(id string) (*MethodTemplate, bool) {
	t, ok := r.byID[id]
	return t, ok
}

// Len returns the number of distinct methods in the catalog.
func (r *Registry) Len() int {
	return len(r.methods)
}
