// Package cgo provides CGO bindings for native libraries.
// This package isolates all CGO code from the pure Go core.
//
// Sub-packages:
//   - hunspell: Hunspell bindings for spell checking and morphology
package cgo
