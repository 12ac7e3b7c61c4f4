// Package file provides TOML file-based persistence for session
// configuration. It implements the driven.SessionStore interface.
package file
