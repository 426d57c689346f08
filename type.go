// File: cascade/type.go
package cascade

import (
	"fmt"
	"strconv"
)

// Typed accessors coerce the normalized tree scalars (int64, float64,
// string, bool, nil) into the requested type. They are conveniences over
// Get, not a typed-binding layer: dictionaries and sequences never coerce.

// String retrieves a string value at path, converting scalars when needed.
func (m *Manager) String(path string) (string, error) {
	val, found := m.Get(path)
	if !found {
		return "", fmt.Errorf("path not found: %s", path)
	}
	if val == nil {
		return "", nil // Treat explicit null as empty string for convenience
	}

	switch v := val.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("cannot convert type %T to string for path %s", val, path)
	}
}

// Int64 retrieves an integer value at path. Floats truncate; strings parse
// with base auto-detection; booleans map to 0 and 1.
func (m *Manager) Int64(path string) (int64, error) {
	val, found := m.Get(path)
	if !found {
		return 0, fmt.Errorf("path not found: %s", path)
	}

	switch v := val.(type) {
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		if i, err := strconv.ParseInt(v, 0, 64); err == nil {
			return i, nil
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return int64(f), nil
		}
		return 0, fmt.Errorf("cannot convert string %q to int64 for path %s", v, path)
	default:
		return 0, fmt.Errorf("cannot convert type %T to int64 for path %s", val, path)
	}
}

// Bool retrieves a boolean value at path. Numbers read as zero/non-zero;
// strings parse with strconv.ParseBool.
func (m *Manager) Bool(path string) (bool, error) {
	val, found := m.Get(path)
	if !found {
		return false, fmt.Errorf("path not found: %s", path)
	}

	switch v := val.(type) {
	case bool:
		return v, nil
	case int64:
		return v != 0, nil
	case float64:
		return v != 0, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("cannot convert string %q to bool for path %s: %w", v, path, err)
		}
		return b, nil
	default:
		return false, fmt.Errorf("cannot convert type %T to bool for path %s", val, path)
	}
}

// Float64 retrieves a floating-point value at path.
func (m *Manager) Float64(path string) (float64, error) {
	val, found := m.Get(path)
	if !found {
		return 0.0, fmt.Errorf("path not found: %s", path)
	}

	switch v := val.(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	case bool:
		if v {
			return 1.0, nil
		}
		return 0.0, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0.0, fmt.Errorf("cannot convert string %q to float64 for path %s: %w", v, path, err)
		}
		return f, nil
	default:
		return 0.0, fmt.Errorf("cannot convert type %T to float64 for path %s", val, path)
	}
}
