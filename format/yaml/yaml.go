// File: cascade/format/yaml/yaml.go

// Package yaml provides a YAML deserializer for cascade. It is not
// registered by default; pass it to Manager.Use.
package yaml

import (
	"fmt"

	goyaml "gopkg.in/yaml.v3"
)

// Deserializer parses YAML documents into generic values.
type Deserializer struct{}

// New creates a YAML deserializer.
func New() *Deserializer {
	return &Deserializer{}
}

// Name returns the registry name, "yaml".
func (d *Deserializer) Name() string { return "yaml" }

// Deserialize parses data as a single YAML document.
func (d *Deserializer) Deserialize(data []byte) (any, error) {
	var value any
	if err := goyaml.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	return value, nil
}
