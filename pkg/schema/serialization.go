package schema

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalDefinitions encodes definitions as a File document in the given format.
func MarshalDefinitions(defs []Definition, format Format) ([]byte, error) {
	doc := File{Parameters: defs}
	if doc.Parameters == nil {
		doc.Parameters = []Definition{}
	}

	switch format {
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatYAML:
		return yaml.Marshal(doc)
	default:
		return nil, fmt.Errorf("unsupported definitions format: %s", format)
	}
}
