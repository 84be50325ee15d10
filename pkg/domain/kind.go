package domain

import "fmt"

// Kind identifies which typed mapping a parameter lives in.
type Kind string

const (
	KindBool    Kind = "bool"
	KindNumeric Kind = "numeric"
	KindString  Kind = "string"
)

// Kinds lists the kinds in lookup precedence order.
var Kinds = []Kind{KindBool, KindNumeric, KindString}

// ParseKind converts a textual kind to a Kind. "float" and "number" are accepted
// as aliases of numeric, "enum" as an alias of string.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "bool", "boolean":
		return KindBool, nil
	case "numeric", "float", "number":
		return KindNumeric, nil
	case "string", "enum":
		return KindString, nil
	default:
		return "", fmt.Errorf("unsupported parameter type: %s", s)
	}
}
