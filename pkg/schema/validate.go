package schema

import (
	"fmt"
	"math"
	"strings"

	"github.com/aretw0/knobs/pkg/domain"
)

// Validate checks every definition and reports all failures at once as an
// *AggregateError of *ValidationError.
func Validate(defs []Definition) error {
	var errs []error
	fail := func(key, reason string, value any) {
		errs = append(errs, &ValidationError{Key: key, Reason: reason, Value: value})
	}

	seen := make(map[string]bool, len(defs))
	for i, def := range defs {
		prefix := def.Name
		if prefix == "" {
			prefix = fmt.Sprintf("parameters[%d]", i)
			fail(prefix+".name", "required", nil)
		} else if strings.Contains(def.Name, "=") {
			fail(prefix+".name", "must not contain '='", def.Name)
		} else if seen[def.Name] {
			fail(prefix+".name", "duplicate parameter", def.Name)
		}
		seen[def.Name] = true

		kind, err := domain.ParseKind(def.Type)
		if err != nil {
			fail(prefix+".type", err.Error(), def.Type)
			continue
		}

		typ, _ := TypeOf(kind)
		if def.Default == nil {
			fail(prefix+".default", "required", nil)
		} else if err := typ.Validate(def.Default); err != nil {
			fail(prefix+".default", err.Error(), def.Default)
			continue
		}

		switch kind {
		case domain.KindBool:
			if def.Min != nil || def.Max != nil || def.Step != nil {
				fail(prefix, "min, max and step are not allowed for bool", nil)
			}
			if len(def.Options) > 0 {
				fail(prefix+".options", "not allowed for bool", nil)
			}

		case domain.KindNumeric:
			if len(def.Options) > 0 {
				fail(prefix+".options", "not allowed for numeric", nil)
			}
			if def.Min == nil {
				fail(prefix+".min", "required", nil)
			}
			if def.Max == nil {
				fail(prefix+".max", "required", nil)
			}
			if def.Step != nil && *def.Step < 0 {
				fail(prefix+".step", "must not be negative", *def.Step)
			}
			nonFinite := false
			for _, f := range []struct {
				key string
				v   *float64
			}{{"min", def.Min}, {"max", def.Max}, {"step", def.Step}} {
				if f.v != nil && (math.IsInf(*f.v, 0) || math.IsNaN(*f.v)) {
					fail(prefix+"."+f.key, "must be finite", *f.v)
					nonFinite = true
				}
			}
			if v, ok := toFloat(def.Default); ok && (math.IsInf(v, 0) || math.IsNaN(v)) {
				fail(prefix+".default", "must be finite", v)
				nonFinite = true
			}
			if nonFinite || def.Min == nil || def.Max == nil {
				continue
			}
			if *def.Min > *def.Max {
				fail(prefix+".min", fmt.Sprintf("greater than max %g", *def.Max), *def.Min)
				continue
			}
			if v, ok := toFloat(def.Default); ok && (v < *def.Min || v > *def.Max) {
				fail(prefix+".default", fmt.Sprintf("outside [%g, %g]", *def.Min, *def.Max), v)
			}

		case domain.KindString:
			if def.Min != nil || def.Max != nil || def.Step != nil {
				fail(prefix, "min, max and step are not allowed for string", nil)
			}
			if len(def.Options) == 0 {
				fail(prefix+".options", "required", nil)
				continue
			}
			known := make(map[string]bool, len(def.Options))
			for _, opt := range def.Options {
				if known[opt] {
					fail(prefix+".options", "duplicate option", opt)
				}
				known[opt] = true
			}
			if s, ok := def.Default.(string); ok && !known[s] {
				fail(prefix+".default", "not one of options", s)
			}
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
