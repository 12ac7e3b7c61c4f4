// Package sqlite provides SQLite-based persistence for the personal
// word list. It implements the driven.WordStore interface using the
// pure-Go modernc.org/sqlite driver, so no C toolchain is required
// for the storage layer.
package sqlite
