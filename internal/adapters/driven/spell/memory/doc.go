// Package memory provides an in-memory implementation of
// driven.SpellEngine and driven.EngineFactory.
//
// It parses plain .dic word lists and approximates affix rules with a
// single "S" plural flag. Used by tests and by builds without CGO,
// where the native Hunspell engine is unavailable.
package memory
