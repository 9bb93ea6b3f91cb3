// Package file provides file-based configuration storage.
//
// Settings live in a TOML file, by default ~/.bidassist/config.toml.
// Dot-notation keys such as "backend.url" are written as nested tables:
//
//	[backend]
//	url = "http://localhost:8000"
//	timeout_seconds = 30
package file
