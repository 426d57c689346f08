// File: cascade/convenience.go
package cascade

import "os"

// Quick creates a Manager loaded from the usual three sources in ascending
// precedence: the given file, then the process environment, then the
// process command line. This is the recommended one-call initialization for
// most applications.
func Quick(configFile string) *Manager {
	m := New()
	if configFile != "" {
		m.LoadFile(configFile)
	}
	return m.LoadEnv(os.Environ()).LoadCLI(os.Args[1:])
}

// QuickWithOptions is Quick with custom manager options.
func QuickWithOptions(configFile string, opts Options) *Manager {
	m := NewWithOptions(opts)
	if configFile != "" {
		m.LoadFile(configFile)
	}
	return m.LoadEnv(os.Environ()).LoadCLI(os.Args[1:])
}
