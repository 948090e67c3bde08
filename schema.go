package exdrf

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// FieldDef describes one filterable field of a resource.
type FieldDef struct {
	Name        string `yaml:"name" json:"name"`
	Label       string `yaml:"label,omitempty" json:"label,omitempty"`
	Type        string `yaml:"type,omitempty" json:"type,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// FieldSet is the ordered registry of fields a filter may reference. The
// order is preserved and is the order fields are listed in unknown_field
// diagnostics.
type FieldSet []FieldDef

// NewFieldSet builds a registry from bare field names.
func NewFieldSet(names ...string) FieldSet {
	fields := make(FieldSet, 0, len(names))
	for _, name := range names {
		fields = append(fields, FieldDef{Name: name})
	}
	return fields
}

// Names returns the field names in registry order.
func (s FieldSet) Names() []string {
	names := make([]string, 0, len(s))
	for _, f := range s {
		names = append(names, f.Name)
	}
	return names
}

// Contains reports whether name is a known field.
func (s FieldSet) Contains(name string) bool {
	for _, f := range s {
		if f.Name == name {
			return true
		}
	}
	return false
}

// fieldSchema is the YAML document shape of a schema file.
type fieldSchema struct {
	Fields []FieldDef `yaml:"fields"`
}

// LoadFieldSet reads a field registry from a YAML schema file.
func LoadFieldSet(path string) (FieldSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	fields, err := ParseFieldSet(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fields, nil
}

// ParseFieldSet parses a YAML schema document. Unknown keys are rejected so
// typos in schema files surface early.
func ParseFieldSet(data []byte) (FieldSet, error) {
	var doc fieldSchema

	err := yaml.UnmarshalWithOptions(data, &doc, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	seen := make(map[string]bool, len(doc.Fields))
	for _, f := range doc.Fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: field with empty name", ErrInvalidSchema)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, f.Name)
		}
		seen[f.Name] = true
	}

	return FieldSet(doc.Fields), nil
}
