// Package hunspell provides CGO bindings for the Hunspell library.
// It implements the driven.SpellEngine and driven.EngineFactory
// interfaces.
//
// Ownership contract: every list returned by Hunspell_suggest,
// Hunspell_analyze, Hunspell_stem, Hunspell_stem2, Hunspell_generate
// and Hunspell_generate2 belongs to the caller and is released exactly
// once through Hunspell_free_list with the same handle, immediately
// after the strings are copied out. The extended stem/generate variants
// produce an intermediate analysis list that is released the same way.
//
// Concurrency: Hunspell is not documented as reentrant. An Engine must
// be confined to one goroutine or externally serialized; whether two
// distinct handles in the same process may be used concurrently is
// undocumented upstream and not relied upon here.
//
// Build requires:
//   - Hunspell development libraries (hunspell)
//   - Install via: brew install hunspell (macOS) or apt install libhunspell-dev (Linux)
package hunspell
