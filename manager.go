// File: cascade/manager.go
package cascade

import (
	"errors"
	"log/slog"
	"strings"
)

// Options controls how a Manager interprets its sources. The zero value of
// each string field is replaced by its default at construction; the boolean
// is taken literally by NewWithOptions.
type Options struct {
	// Separator joins the segments of tree paths. Default ":".
	Separator string

	// CommandLineKeyPrefix marks an argument as a configuration override.
	// Default "--".
	CommandLineKeyPrefix string

	// CommandLinePathSeparator separates path segments inside an argument
	// key and is rewritten to Separator. Default ".".
	CommandLinePathSeparator string

	// EnvPathSeparator separates path segments inside an environment
	// variable name and is rewritten to Separator. Default "__".
	EnvPathSeparator string

	// ParseStringToObject opportunistically runs CLI and environment values
	// through the registered deserializers, so "--port=42" stores the number
	// 42 rather than the string "42". Default true.
	ParseStringToObject bool
}

// DefaultOptions returns the standard manager options.
func DefaultOptions() Options {
	return Options{
		Separator:                ":",
		CommandLineKeyPrefix:     "--",
		CommandLinePathSeparator: ".",
		EnvPathSeparator:         "__",
		ParseStringToObject:      true,
	}
}

func (o *Options) fillDefaults() {
	defaults := DefaultOptions()
	if o.Separator == "" {
		o.Separator = defaults.Separator
	}
	if o.CommandLineKeyPrefix == "" {
		o.CommandLineKeyPrefix = defaults.CommandLineKeyPrefix
	}
	if o.CommandLinePathSeparator == "" {
		o.CommandLinePathSeparator = defaults.CommandLinePathSeparator
	}
	if o.EnvPathSeparator == "" {
		o.EnvPathSeparator = defaults.EnvPathSeparator
	}
}

// Manager aggregates configuration from raw values, command-line arguments,
// environment variables, byte buffers, files, and URLs into a single tree.
// Later loads override earlier ones under the merge rules in node.go.
//
// A Manager is not safe for concurrent use. All loads mutate the root in
// place without locking; callers that share a Manager across goroutines must
// synchronize externally.
type Manager struct {
	root          *node
	opts          Options
	deserializers *registry
	logger        *slog.Logger
	errs          []error
}

// New creates a Manager with default options and the two built-in
// deserializers (json, plist) registered, in that order.
func New() *Manager {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a Manager with the given options. Empty string
// fields fall back to their defaults; ParseStringToObject is taken as-is.
func NewWithOptions(opts Options) *Manager {
	opts.fillDefaults()

	m := &Manager{
		root:          newDictionary(),
		opts:          opts,
		deserializers: newRegistry(),
		logger:        slog.Default(),
	}
	m.Use(NewJSONDeserializer())
	m.Use(NewPlistDeserializer())
	return m
}

// SetLogger replaces the logger used for load diagnostics.
func (m *Manager) SetLogger(logger *slog.Logger) *Manager {
	if logger != nil {
		m.logger = logger
	}
	return m
}

// Use registers a deserializer. The last registration for a given name wins;
// re-registering keeps the name's position in the fallback trial order.
func (m *Manager) Use(d Deserializer) *Manager {
	m.deserializers.add(d)
	return m
}

// LoadValue merges a raw generic value (nested maps, slices, scalars) into
// the tree. It never fails: the value is copied and normalized on the way in.
func (m *Manager) LoadValue(value any) *Manager {
	m.root = m.root.merge(fromGeneric(value))
	return m
}

// LoadCLI scans command-line arguments (os.Args[1:]) for overrides of the
// form <prefix><dotted.path>=<value>, e.g. "--server.port=8080". Arguments
// without the prefix or the "=" are ignored. Each match is one path-scoped
// write: intermediate dictionaries are created as needed and the leaf is
// replaced outright.
func (m *Manager) LoadCLI(args []string) *Manager {
	for _, arg := range args {
		if !strings.HasPrefix(arg, m.opts.CommandLineKeyPrefix) {
			continue
		}
		body := strings.TrimPrefix(arg, m.opts.CommandLineKeyPrefix)
		key, rawValue, found := strings.Cut(body, "=")
		if !found || key == "" {
			continue
		}

		path := strings.ReplaceAll(key, m.opts.CommandLinePathSeparator, m.opts.Separator)
		m.setRaw(path, m.parseString(rawValue))
	}
	return m
}

// LoadEnv loads every process environment variable as an override, with the
// environment path separator rewritten to the tree separator: FOO__BAR=baz
// becomes path "FOO:BAR". Segment case is preserved.
func (m *Manager) LoadEnv(environ []string) *Manager {
	for _, entry := range environ {
		name, rawValue, found := strings.Cut(entry, "=")
		if !found || name == "" {
			continue
		}

		path := strings.ReplaceAll(name, m.opts.EnvPathSeparator, m.opts.Separator)
		m.setRaw(path, m.parseString(rawValue))
	}
	return m
}

// LoadData deserializes a byte buffer and merges the result into the tree.
// With a format name only that deserializer is tried; without one, all
// registered deserializers are tried in registration order and the first
// success wins. Failure leaves the tree untouched: it is logged, recorded
// for Err, and never raised.
func (m *Manager) LoadData(data []byte, format ...string) *Manager {
	name := ""
	if len(format) > 0 {
		name = format[0]
	}

	value, err := m.deserializers.deserialize(data, name)
	if err != nil {
		m.warn("configuration data not loaded", err)
		return m
	}
	return m.LoadValue(value)
}

// Configs returns a snapshot of the entire tree as a generic value. The
// snapshot is independent of the tree; mutating it has no effect.
func (m *Manager) Configs() any {
	return m.root.toGeneric()
}

// Get resolves a path against the tree and returns a snapshot of the value
// there. The second result distinguishes an explicit null from an
// unresolvable path.
func (m *Manager) Get(path string) (any, bool) {
	n := getPath(m.root, splitPath(path, m.opts.Separator))
	if n == nil {
		return nil, false
	}
	return n.toGeneric(), true
}

// Set assigns value at path, creating intermediate dictionaries as needed
// and replacing whatever occupied the leaf. Unlike LoadValue this is a
// destructive overwrite, not a merge. A nil value is a no-op: absence of a
// value is deliberately distinct from an explicit null arriving via a load.
func (m *Manager) Set(path string, value any) *Manager {
	if value == nil {
		return m
	}
	return m.setRaw(path, value)
}

// Err reports every non-fatal failure accumulated by prior loads, joined in
// order, or nil when all loads contributed to the tree. The default contract
// stays silent-continue; this exists so tests and careful callers can tell a
// skipped source from a loaded one.
func (m *Manager) Err() error {
	return errors.Join(m.errs...)
}

func (m *Manager) setRaw(path string, value any) *Manager {
	m.root = setPath(m.root, splitPath(path, m.opts.Separator), fromGeneric(value))
	return m
}

// parseString opportunistically deserializes a CLI or environment value,
// trying each registered deserializer in order. The first success wins;
// when nothing matches the raw string is kept.
func (m *Manager) parseString(raw string) any {
	if !m.opts.ParseStringToObject {
		return raw
	}
	value, err := m.deserializers.deserialize([]byte(raw), "")
	if err != nil {
		return raw
	}
	return value
}

func (m *Manager) warn(msg string, err error) {
	m.errs = append(m.errs, err)
	m.logger.Warn(msg, "error", err)
}
