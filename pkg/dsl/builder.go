package dsl

import (
	"github.com/aretw0/knobs/pkg/registry"
	"github.com/aretw0/knobs/pkg/schema"
)

// Builder manages the parameter set construction.
type Builder struct {
	order  []string
	params map[string]*ParamBuilder
}

// New creates a new parameter set builder.
func New() *Builder {
	return &Builder{
		params: make(map[string]*ParamBuilder),
	}
}

// Add declares a parameter.
// If the parameter already exists, it returns the existing builder.
func (b *Builder) Add(name string) *ParamBuilder {
	if pb, ok := b.params[name]; ok {
		return pb
	}
	pb := &ParamBuilder{
		def: schema.Definition{Name: name},
	}
	b.params[name] = pb
	b.order = append(b.order, name)
	return pb
}

// Definitions returns the declared parameters in declaration order.
func (b *Builder) Definitions() []schema.Definition {
	defs := make([]schema.Definition, 0, len(b.order))
	for _, name := range b.order {
		defs = append(defs, b.params[name].Build())
	}
	return defs
}

// Build validates the declarations and registers them into a new registry.
// Every problem is reported at once as a *schema.AggregateError.
func (b *Builder) Build(opts ...registry.Option) (*registry.Registry, error) {
	reg := registry.New(opts...)
	if err := schema.Seed(reg, b.Definitions()); err != nil {
		return nil, err
	}
	return reg, nil
}
