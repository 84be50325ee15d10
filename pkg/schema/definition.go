package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Definition declares one parameter: its name, kind, default and constraints.
// Min, Max and Step apply to numeric parameters, Options to string parameters.
type Definition struct {
	Name        string   `yaml:"name" json:"name" mapstructure:"name"`
	Type        string   `yaml:"type" json:"type" mapstructure:"type"`
	Default     any      `yaml:"default" json:"default" mapstructure:"default"`
	Min         *float64 `yaml:"min,omitempty" json:"min,omitempty" mapstructure:"min"`
	Max         *float64 `yaml:"max,omitempty" json:"max,omitempty" mapstructure:"max"`
	Step        *float64 `yaml:"step,omitempty" json:"step,omitempty" mapstructure:"step"`
	Options     []string `yaml:"options,omitempty" json:"options,omitempty" mapstructure:"options"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty" mapstructure:"description"`
}

// File is the on-disk layout of a definitions document.
type File struct {
	Parameters []Definition `yaml:"parameters" json:"parameters"`
}

// rawFile keeps entries undecoded so mapstructure can reject unknown keys per entry.
type rawFile struct {
	Parameters []map[string]any `yaml:"parameters" json:"parameters"`
}

// Format is a definitions document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the encoding from a file extension; anything that is not
// .json is read as YAML.
func FormatFromPath(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// LoadDefinitions reads and parses a definitions file (YAML or JSON).
func LoadDefinitions(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions: %w", err)
	}
	defs, err := ParseDefinitions(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return defs, nil
}

// ParseDefinitions decodes a definitions document. Unknown keys, at the top level
// or inside an entry, are errors. The result is not validated; see Validate.
func ParseDefinitions(data []byte, format Format) ([]Definition, error) {
	var raw rawFile

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse definitions json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse definitions yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported definitions format: %s", format)
	}

	defs := make([]Definition, 0, len(raw.Parameters))
	for i, entry := range raw.Parameters {
		var def Definition
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			ErrorUnused: true,
			Result:      &def,
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(entry); err != nil {
			return nil, fmt.Errorf("parameters[%d]: %w", i, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}
