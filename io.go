// File: cascade/io.go
package cascade

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Base identifies the directory a relative file path is resolved against.
type Base int

const (
	// BaseExecutable resolves against the running executable's directory.
	// This is the default.
	BaseExecutable Base = iota

	// BaseWorkingDir resolves against the present working directory.
	BaseWorkingDir

	// BaseProject resolves against the nearest ancestor of the working
	// directory containing a go.mod file.
	//
	// Deprecated: the project root is a build-time concept that rarely
	// exists where the binary runs; prefer BaseCustom with an explicit path.
	BaseProject

	// BaseCustom resolves against FileOptions.BasePath.
	BaseCustom
)

// FileOptions controls how LoadFileWithOptions locates and parses a file.
type FileOptions struct {
	// RelativeFrom selects the resolution base for relative paths.
	RelativeFrom Base

	// BasePath is the directory used with BaseCustom.
	BasePath string

	// Format names the deserializer to use. Empty means: take the file
	// extension as a hint when it names a registered deserializer,
	// otherwise try them all in registration order.
	Format string
}

// LoadFile reads a file and merges its parsed contents into the tree,
// resolving relative paths against the executable's directory. Read and
// parse failures are logged and recorded, never raised.
func (m *Manager) LoadFile(path string) *Manager {
	return m.LoadFileWithOptions(path, FileOptions{})
}

// LoadFileWithOptions is LoadFile with explicit resolution and format
// control.
func (m *Manager) LoadFileWithOptions(path string, opts FileOptions) *Manager {
	resolved, err := resolveFile(path, opts)
	if err != nil {
		m.warn("configuration file not loaded", err)
		return m
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		m.warn("configuration file not loaded", fmt.Errorf("read config file %q: %w", resolved, err))
		return m
	}

	format := opts.Format
	if format == "" {
		format = m.formatHint(resolved)
	}
	return m.LoadData(data, format)
}

// LoadURL fetches bytes from an http, https, or file URL and merges the
// parsed contents into the tree. The fetch is synchronous and subject only
// to transport-level timeouts; failure degrades to a logged warning.
func (m *Manager) LoadURL(rawURL string, format ...string) *Manager {
	data, err := fetchURL(rawURL)
	if err != nil {
		m.warn("configuration URL not loaded", err)
		return m
	}

	name := ""
	if len(format) > 0 {
		name = format[0]
	}
	if name == "" {
		if u, err := url.Parse(rawURL); err == nil {
			name = m.formatHint(u.Path)
		}
	}
	return m.LoadData(data, name)
}

// formatHint maps a file extension to a registered deserializer name, or ""
// when the extension is unknown so that all deserializers get tried.
func (m *Manager) formatHint(path string) string {
	var name string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		name = "json"
	case ".plist":
		name = "plist"
	case ".yaml", ".yml":
		name = "yaml"
	case ".toml", ".tml":
		name = "toml"
	default:
		return ""
	}
	if _, registered := m.deserializers.get(name); !registered {
		return ""
	}
	return name
}

// resolveFile turns path into an absolute location: tilde-expanded, then
// used as-is when absolute, otherwise joined onto the directory selected by
// opts.
func resolveFile(path string, opts FileOptions) (string, error) {
	if strings.HasPrefix(path, "~"+string(filepath.Separator)) || path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand %q: %w", path, err)
		}
		path = filepath.Join(home, path[1:])
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	var base string
	switch opts.RelativeFrom {
	case BaseExecutable:
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("locate executable: %w", err)
		}
		base = filepath.Dir(exe)
	case BaseWorkingDir:
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("locate working directory: %w", err)
		}
		base = wd
	case BaseProject:
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("locate working directory: %w", err)
		}
		base, err = findProjectRoot(wd)
		if err != nil {
			return "", err
		}
	case BaseCustom:
		if opts.BasePath == "" {
			return "", fmt.Errorf("BaseCustom requires a base path")
		}
		base = opts.BasePath
	default:
		return "", fmt.Errorf("unknown resolution base %d", opts.RelativeFrom)
	}

	return filepath.Clean(filepath.Join(base, path)), nil
}

// findProjectRoot walks upward from dir to the nearest go.mod.
func findProjectRoot(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no go.mod found above %q", dir)
		}
		dir = parent
	}
}

// fetchURL retrieves the bytes behind an http, https, or file URL, blocking
// until the transfer completes or the transport gives up.
func fetchURL(rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse URL %q: %w", rawURL, err)
	}

	switch u.Scheme {
	case "file":
		data, err := os.ReadFile(u.Path)
		if err != nil {
			return nil, fmt.Errorf("read file URL %q: %w", rawURL, err)
		}
		return data, nil
	case "http", "https":
		resp, err := http.Get(rawURL) // #nosec G107 -- the URL is caller-supplied by design
		if err != nil {
			return nil, fmt.Errorf("fetch %q: %w", rawURL, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("fetch %q: unexpected status %s", rawURL, resp.Status)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read response of %q: %w", rawURL, err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported URL scheme %q in %q", u.Scheme, rawURL)
	}
}
