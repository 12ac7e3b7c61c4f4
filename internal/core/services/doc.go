// Package services implements the session logic around the spell
// engine: path validation, the dictionary-count limit, input
// sanitisation and configuration replay for clone/restore.
//
// Services are pure Go with no CGO or external dependencies.
package services
