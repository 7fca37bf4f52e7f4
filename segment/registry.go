package segment

import (
	"fmt"

	"github.com/arloliu/tdms/errs"
)

// Registry maps raw object paths to the last full raw data descriptor seen for
// them, so later segments can declare "same as before".
//
// A registry belongs to a single load. It is NOT thread-safe.
type Registry struct {
	templates map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		templates: make(map[string]Descriptor),
	}
}

// Define records d as the template for path, replacing any previous one.
func (r *Registry) Define(path string, d Descriptor) {
	r.templates[path] = d
}

// Lookup returns the template for path.
func (r *Registry) Lookup(path string) (Descriptor, bool) {
	d, ok := r.templates[path]
	return d, ok
}

// Resolve returns the template for path.
//
// Returns errs.ErrUndefinedTemplate if no descriptor was ever defined for path.
func (r *Registry) Resolve(path string) (Descriptor, error) {
	d, ok := r.Lookup(path)
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", errs.ErrUndefinedTemplate, path)
	}

	return d, nil
}

// Len returns the number of registered paths.
func (r *Registry) Len() int {
	return len(r.templates)
}
