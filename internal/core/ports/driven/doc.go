// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - SpellEngine: One open instance of the native morphology engine (Hunspell)
//   - EngineFactory: Opens engines from dictionary files
//
// # Optional Interfaces
//
// These can be nil - the CLI degrades gracefully:
//
//   - WordStore: Personal word list persistence (SQLite)
//   - SessionStore: Session configuration persistence (TOML)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or cgo package
package driven
