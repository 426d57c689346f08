// File: cascade/deserializer.go
package cascade

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"howett.net/plist"
)

// ErrUnknownFormat is returned when a load names a deserializer that has not
// been registered.
var ErrUnknownFormat = errors.New("no deserializer registered for format")

// ErrNoMatchingFormat is returned when data matches none of the registered
// deserializers.
var ErrNoMatchingFormat = errors.New("data matched no registered deserializer")

// Deserializer converts raw bytes of one wire format into a generic value:
// nil, bool, int64, float64, string, []any, or map[string]any (nested).
// Implementations are identified by a unique name and should fail with an
// error on any input that does not conform to their format.
type Deserializer interface {
	Name() string
	Deserialize(data []byte) (any, error)
}

// registry keeps deserializers addressable by name while preserving
// registration order, so that unnamed fallback trials are deterministic.
// Re-registering a name replaces the entry in place, keeping its position.
type registry struct {
	order  []string
	byName map[string]Deserializer
}

func newRegistry() *registry {
	return &registry{byName: make(map[string]Deserializer)}
}

func (r *registry) add(d Deserializer) {
	name := d.Name()
	if _, exists := r.byName[name]; !exists {
		r.order = append(r.order, name)
	}
	r.byName[name] = d
}

func (r *registry) get(name string) (Deserializer, bool) {
	d, exists := r.byName[name]
	return d, exists
}

// deserialize parses data with the named deserializer, or, when name is
// empty, tries every registered deserializer in registration order and
// returns the first success.
func (r *registry) deserialize(data []byte, name string) (any, error) {
	if name != "" {
		d, exists := r.get(name)
		if !exists {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
		}
		value, err := d.Deserialize(data)
		if err != nil {
			return nil, fmt.Errorf("deserializer %q: %w", name, err)
		}
		return value, nil
	}

	for _, candidate := range r.order {
		if value, err := r.byName[candidate].Deserialize(data); err == nil {
			return value, nil
		}
	}
	return nil, ErrNoMatchingFormat
}

// JSONDeserializer parses standard JSON. Objects, arrays, strings, numbers,
// booleans and null map one-to-one onto generic values; numbers are decoded
// with json.Number to preserve integer precision.
type JSONDeserializer struct{}

// NewJSONDeserializer creates the built-in JSON deserializer.
func NewJSONDeserializer() *JSONDeserializer {
	return &JSONDeserializer{}
}

func (d *JSONDeserializer) Name() string { return "json" }

func (d *JSONDeserializer) Deserialize(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	// Reject trailing garbage after the first document.
	if decoder.More() {
		return nil, fmt.Errorf("parse JSON: unexpected trailing data")
	}
	return value, nil
}

// PlistDeserializer parses property lists in XML, binary, or OpenStep form
// via howett.net/plist. Dates and unsigned integers normalize to the closest
// generic scalar during tree conversion.
type PlistDeserializer struct{}

// NewPlistDeserializer creates the built-in property-list deserializer.
func NewPlistDeserializer() *PlistDeserializer {
	return &PlistDeserializer{}
}

func (d *PlistDeserializer) Name() string { return "plist" }

func (d *PlistDeserializer) Deserialize(data []byte) (any, error) {
	var value any
	if _, err := plist.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("parse plist: %w", err)
	}
	return value, nil
}
