package similarity

import (
	"fmt"
	"strings"
)

// Registry manages the available similarity functions
type Registry struct {
	functions map[string]Function
}

// NewRegistry creates a registry with the scorers used across the pipeline.
func NewRegistry() *Registry {
	r := &Registry{functions: make(map[string]Function)}
	r.Register(SequenceMatch{})
	r.Register(FieldMatch{})
	return r
}

// Register adds a similarity function to the registry
func (r *Registry) Register(f Function) {
	r.functions[strings.ToLower(f.Name())] = f
}

// GetByName returns a similarity function by its name
func (r *Registry) GetByName(name string) (Function, error) {
	f, ok := r.functions[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("similarity function not found: %s", name)
	}
	return f, nil
}

// Names returns the registered function names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.functions))
	for _, f := range r.functions {
		names = append(names, f.Name())
	}
	return names
}
