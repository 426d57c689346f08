// File: cascade/doc.go

// Package cascade merges configuration from multiple sources into a single
// addressable tree: raw values, command-line arguments, environment
// variables, byte buffers, files, and URLs. Later sources override earlier
// ones at the granularity of individual leaves and subtrees.
//
// Features:
//   - Right-biased deep merge: dictionaries merge key-by-key, everything
//     else (sequences included) is replaced wholesale by the later load
//   - Path addressing with a configurable separator (default ":"),
//     including numeric indices into sequences ("services:db:0:host")
//   - Pluggable deserializers keyed by format name; JSON and property-list
//     support built in, YAML and TOML available under format/
//   - Command-line overrides ("--server.port=8080") and environment
//     overrides ("SERVER__PORT=8080") with opportunistic value parsing
//   - Silent-continue loading: unreadable or unparsable sources log a
//     warning and contribute nothing, without interrupting the host program
//
// Quick Start:
//
//	cfg := cascade.New().
//	    LoadFile("config.json").
//	    LoadEnv(os.Environ()).
//	    LoadCLI(os.Args[1:])
//
//	host, _ := cfg.String("server:host")
//	port, _ := cfg.Int64("server:port")
//
// Load order is precedence: each Load call overlays the accumulated tree,
// so in the example above a --server.port argument beats SERVER__PORT,
// which beats the file.
//
// Concurrency:
// A Manager is not safe for concurrent use. Loads and sets mutate the root
// in place without locking; share a Manager across goroutines only behind
// external synchronization.
package cascade
