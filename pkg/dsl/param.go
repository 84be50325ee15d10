package dsl

import (
	"slices"

	"github.com/aretw0/knobs/pkg/domain"
	"github.com/aretw0/knobs/pkg/schema"
)

// ParamBuilder provides a fluent API for configuring a parameter.
type ParamBuilder struct {
	def schema.Definition
}

// Bool marks the parameter as a boolean flag with the given default.
func (p *ParamBuilder) Bool(defaultValue bool) *ParamBuilder {
	p.def.Type = string(domain.KindBool)
	p.def.Default = defaultValue
	return p
}

// Numeric marks the parameter as numeric with the given default.
// Bounds are set with Range.
func (p *ParamBuilder) Numeric(defaultValue float64) *ParamBuilder {
	p.def.Type = string(domain.KindNumeric)
	p.def.Default = defaultValue
	return p
}

// String marks the parameter as an enumerated string with the given default and
// allowed values.
func (p *ParamBuilder) String(defaultValue string, options ...string) *ParamBuilder {
	p.def.Type = string(domain.KindString)
	p.def.Default = defaultValue
	if len(options) > 0 {
		p.def.Options = slices.Clone(options)
	}
	return p
}

// Range sets the inclusive bounds of a numeric parameter.
func (p *ParamBuilder) Range(lower, upper float64) *ParamBuilder {
	p.def.Min = &lower
	p.def.Max = &upper
	return p
}

// Step sets the advisory increment of a numeric parameter.
func (p *ParamBuilder) Step(step float64) *ParamBuilder {
	p.def.Step = &step
	return p
}

// Options appends allowed values to a string parameter.
func (p *ParamBuilder) Options(options ...string) *ParamBuilder {
	p.def.Options = append(p.def.Options, options...)
	return p
}

// Describe attaches a human readable description.
func (p *ParamBuilder) Describe(text string) *ParamBuilder {
	p.def.Description = text
	return p
}

// Build returns the underlying schema.Definition.
// This is primarily used by the Builder, but exposed for advanced usage.
func (p *ParamBuilder) Build() schema.Definition {
	def := p.def
	def.Options = slices.Clone(p.def.Options)
	return def
}
