// File: cascade/format/toml/toml.go

// Package toml provides a TOML deserializer for cascade. It is not
// registered by default; pass it to Manager.Use.
package toml

import (
	"fmt"

	bstoml "github.com/BurntSushi/toml"
)

// Deserializer parses TOML documents into generic values.
type Deserializer struct{}

// New creates a TOML deserializer.
func New() *Deserializer {
	return &Deserializer{}
}

// Name returns the registry name, "toml".
func (d *Deserializer) Name() string { return "toml" }

// Deserialize parses data as a TOML document. The result is always a
// dictionary; TOML has no top-level scalars.
func (d *Deserializer) Deserialize(data []byte) (any, error) {
	value := make(map[string]any)
	if err := bstoml.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	return value, nil
}
