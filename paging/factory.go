package paging

import (
	"github.com/ncobase/npage/operation"
)

// Factory resolves operation names to iterators.
type Factory interface {
	// CanBuild reports whether the factory can build an iterator for the
	// operation name. It is pure and must not construct anything.
	CanBuild(name string) bool

	// Build constructs an iterator for the operation, merging caller options
	// over the resolved configuration.
	Build(op operation.Operation, opts *Options) (*Iterator, error)
}

// Registry is the generic Factory: a mapping from operation name to Config,
// with optional delegation to a more specific primary factory. The primary
// is consulted first for both CanBuild and Build; the registry's own
// configuration only applies when the primary declines.
type Registry struct {
	configs map[string]Config
	primary Factory
}

// NewRegistry builds a registry from per-operation configurations. primary
// may be nil.
func NewRegistry(configs map[string]Config, primary Factory) *Registry {
	reg := &Registry{
		configs: make(map[string]Config, len(configs)),
		primary: primary,
	}
	for name, cfg := range configs {
		reg.configs[name] = cfg
	}
	return reg
}

// Register adds or replaces the configuration for an operation name.
func (r *Registry) Register(name string, cfg Config) {
	r.configs[name] = cfg
}

// CanBuild implements Factory.
func (r *Registry) CanBuild(name string) bool {
	if r.primary != nil && r.primary.CanBuild(name) {
		return true
	}
	_, ok := r.configs[name]
	return ok
}

// Build implements Factory. Unknown operations fail with a ConfigError
// before any request is issued.
func (r *Registry) Build(op operation.Operation, opts *Options) (*Iterator, error) {
	name := op.Name()
	if r.primary != nil && r.primary.CanBuild(name) {
		return r.primary.Build(op, opts)
	}
	cfg, ok := r.configs[name]
	if !ok {
		return nil, &ConfigError{Operation: name}
	}
	return NewIterator(op, cfg, opts), nil
}
