package domain

import (
	"fmt"
	"math"
	"slices"
)

// BoolParameter holds a single boolean value. Every bool is legal, so there is no
// validation step.
type BoolParameter struct {
	value bool
}

// NewBoolParameter creates a boolean parameter holding defaultValue.
func NewBoolParameter(defaultValue bool) *BoolParameter {
	return &BoolParameter{value: defaultValue}
}

// Get returns the current value.
func (p *BoolParameter) Get() bool { return p.value }

// Set stores value unconditionally.
func (p *BoolParameter) Set(value bool) { p.value = value }

// Clone returns an independent copy.
func (p *BoolParameter) Clone() *BoolParameter {
	c := *p
	return &c
}

// NumericParameter holds a float64 constrained to the closed range [min, max].
// Step is the suggested increment for UIs; it is not enforced on stored values.
type NumericParameter struct {
	value float64
	min   float64
	max   float64
	step  float64
}

// NewNumericParameter creates a numeric parameter.
// It fails with ErrInvalidDefault when a bound or the step is not finite, when
// min > max or when defaultValue is out of range.
func NewNumericParameter(defaultValue, lower, upper, step float64) (*NumericParameter, error) {
	if !finite(lower) || !finite(upper) || !finite(step) {
		return nil, fmt.Errorf("%w: bounds and step must be finite, got [%g, %g] step %g", ErrInvalidDefault, lower, upper, step)
	}
	if lower > upper {
		return nil, fmt.Errorf("%w: min %g is greater than max %g", ErrInvalidDefault, lower, upper)
	}
	p := &NumericParameter{min: lower, max: upper, step: step}
	if !p.Validate(defaultValue) {
		return nil, fmt.Errorf("%w: %g is outside [%g, %g]", ErrInvalidDefault, defaultValue, lower, upper)
	}
	p.value = defaultValue
	return p, nil
}

// Get returns the current value.
func (p *NumericParameter) Get() float64 { return p.value }

// Validate reports whether min <= value <= max. NaN never validates.
func (p *NumericParameter) Validate(value float64) bool {
	return value >= p.min && value <= p.max
}

// Set stores value if it validates. An out-of-range value leaves the parameter
// unchanged.
func (p *NumericParameter) Set(value float64) {
	if p.Validate(value) {
		p.value = value
	}
}

// Min returns the lower bound.
func (p *NumericParameter) Min() float64 { return p.min }

// SetMin replaces the lower bound. The stored value is not re-validated.
// A non-finite bound is ignored.
func (p *NumericParameter) SetMin(v float64) {
	if finite(v) {
		p.min = v
	}
}

// Max returns the upper bound.
func (p *NumericParameter) Max() float64 { return p.max }

// SetMax replaces the upper bound. The stored value is not re-validated.
// A non-finite bound is ignored.
func (p *NumericParameter) SetMax(v float64) {
	if finite(v) {
		p.max = v
	}
}

// Step returns the suggested increment.
func (p *NumericParameter) Step() float64 { return p.step }

// SetStep replaces the suggested increment. A non-finite step is ignored.
func (p *NumericParameter) SetStep(step float64) {
	if finite(step) {
		p.step = step
	}
}

// Clone returns an independent copy, including a value that may have fallen out of
// range after a bound change.
func (p *NumericParameter) Clone() *NumericParameter {
	c := *p
	return &c
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// StringParameter holds a string restricted to a fixed enumeration.
type StringParameter struct {
	value         string
	possibilities []string
}

// NewStringParameter creates an enumerated string parameter. The possibilities are
// copied; their order is kept for display.
// It fails with ErrInvalidDefault when defaultValue is not one of possibilities.
func NewStringParameter(defaultValue string, possibilities []string) (*StringParameter, error) {
	p := &StringParameter{possibilities: slices.Clone(possibilities)}
	if !p.Validate(defaultValue) {
		return nil, fmt.Errorf("%w: %q is not one of %q", ErrInvalidDefault, defaultValue, possibilities)
	}
	p.value = defaultValue
	return p, nil
}

// Get returns the current value.
func (p *StringParameter) Get() string { return p.value }

// Validate reports whether value is an exact member of the enumeration.
func (p *StringParameter) Validate(value string) bool {
	return slices.Contains(p.possibilities, value)
}

// Set stores value if it validates. Unlisted values leave the parameter unchanged.
func (p *StringParameter) Set(value string) {
	if p.Validate(value) {
		p.value = value
	}
}

// Clone returns an independent copy.
func (p *StringParameter) Clone() *StringParameter {
	return &StringParameter{value: p.value, possibilities: slices.Clone(p.possibilities)}
}

// Possibilities returns a copy of the enumeration in its original order.
func (p *StringParameter) Possibilities() []string {
	return slices.Clone(p.possibilities)
}
