package schema

import (
	"fmt"

	"github.com/aretw0/knobs/pkg/domain"
)

// Type checks that a decoded default value has the Go type a parameter kind needs.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "bool", "numeric").
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// BoolType validates boolean defaults.
type BoolType struct{}

func (t *BoolType) Name() string { return string(domain.KindBool) }

func (t *BoolType) Validate(value any) error {
	if _, ok := value.(bool); !ok {
		return fmt.Errorf("expected bool, got %T", value)
	}
	return nil
}

// NumericType validates numeric defaults. YAML decodes whole numbers as int, so
// every integer and float kind is accepted.
type NumericType struct{}

func (t *NumericType) Name() string { return string(domain.KindNumeric) }

func (t *NumericType) Validate(value any) error {
	if _, ok := toFloat(value); !ok {
		return fmt.Errorf("expected number, got %T", value)
	}
	return nil
}

// StringType validates string defaults.
type StringType struct{}

func (t *StringType) Name() string { return string(domain.KindString) }

func (t *StringType) Validate(value any) error {
	if _, ok := value.(string); !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	return nil
}

// Bool creates a boolean type validator.
func Bool() Type { return &BoolType{} }

// Numeric creates a numeric type validator.
func Numeric() Type { return &NumericType{} }

// String creates a string type validator.
func String() Type { return &StringType{} }

// TypeOf returns the validator for a parameter kind.
func TypeOf(kind domain.Kind) (Type, error) {
	switch kind {
	case domain.KindBool:
		return Bool(), nil
	case domain.KindNumeric:
		return Numeric(), nil
	case domain.KindString:
		return String(), nil
	default:
		return nil, fmt.Errorf("unsupported parameter type: %s", kind)
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
