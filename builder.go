// File: cascade/builder.go
package cascade

import "log/slog"

// Builder provides a fluent interface for assembling a Manager. Load steps
// are replayed in the order they were recorded, so later steps override
// earlier ones under the usual merge rules.
type Builder struct {
	opts          Options
	logger        *slog.Logger
	deserializers []Deserializer
	steps         []func(*Manager)
}

// NewBuilder creates a new configuration builder with default options.
func NewBuilder() *Builder {
	return &Builder{opts: DefaultOptions()}
}

// WithOptions replaces the manager options.
func (b *Builder) WithOptions(opts Options) *Builder {
	b.opts = opts
	return b
}

// WithSeparator sets the tree path separator.
func (b *Builder) WithSeparator(sep string) *Builder {
	b.opts.Separator = sep
	return b
}

// WithLogger sets the diagnostics logger.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// WithDeserializer registers additional deserializers on the built manager.
func (b *Builder) WithDeserializer(ds ...Deserializer) *Builder {
	b.deserializers = append(b.deserializers, ds...)
	return b
}

// WithValue records a raw generic value to merge.
func (b *Builder) WithValue(value any) *Builder {
	b.steps = append(b.steps, func(m *Manager) { m.LoadValue(value) })
	return b
}

// WithFile records a file to load.
func (b *Builder) WithFile(path string) *Builder {
	b.steps = append(b.steps, func(m *Manager) { m.LoadFile(path) })
	return b
}

// WithFileOptions records a file to load with explicit resolution options.
func (b *Builder) WithFileOptions(path string, opts FileOptions) *Builder {
	b.steps = append(b.steps, func(m *Manager) { m.LoadFileWithOptions(path, opts) })
	return b
}

// WithURL records a URL to fetch and load.
func (b *Builder) WithURL(rawURL string) *Builder {
	b.steps = append(b.steps, func(m *Manager) { m.LoadURL(rawURL) })
	return b
}

// WithData records a byte buffer to load.
func (b *Builder) WithData(data []byte, format ...string) *Builder {
	b.steps = append(b.steps, func(m *Manager) { m.LoadData(data, format...) })
	return b
}

// WithEnvironment records a pass over the given process environment
// (os.Environ()).
func (b *Builder) WithEnvironment(environ []string) *Builder {
	b.steps = append(b.steps, func(m *Manager) { m.LoadEnv(environ) })
	return b
}

// WithArgs records a pass over the given command-line arguments
// (os.Args[1:]).
func (b *Builder) WithArgs(args []string) *Builder {
	b.steps = append(b.steps, func(m *Manager) { m.LoadCLI(args) })
	return b
}

// Build creates the Manager, registers the extra deserializers, and replays
// every recorded load in order. The returned error is the manager's Err():
// non-fatal by construction, reported so callers can notice skipped sources.
func (b *Builder) Build() (*Manager, error) {
	m := NewWithOptions(b.opts)
	if b.logger != nil {
		m.SetLogger(b.logger)
	}
	for _, d := range b.deserializers {
		m.Use(d)
	}
	for _, step := range b.steps {
		step(m)
	}
	return m, m.Err()
}

// MustBuild is like Build but ignores non-fatal load errors, matching the
// silent-continue contract of the individual Load methods.
func (b *Builder) MustBuild() *Manager {
	m, _ := b.Build()
	return m
}
