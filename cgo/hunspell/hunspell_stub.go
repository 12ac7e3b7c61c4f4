//go:build !cgo

package hunspell

import (
	"fmt"

	"github.com/custodia-labs/spella-cli/internal/core/domain"
	"github.com/custodia-labs/spella-cli/internal/core/ports/driven"
)

// Ensure Factory implements the interface.
var _ driven.EngineFactory = (Factory{})

// Factory opens native Hunspell engines.
// This is a stub for builds without CGO; opening always fails.
type Factory struct{}

// Open reports that the native engine is unavailable.
func (Factory) Open(_, _ string) (driven.SpellEngine, error) {
	return nil, fmt.Errorf("%w: hunspell requires cgo", domain.ErrNotImplemented)
}

// OpenWithKey reports that the native engine is unavailable.
func (Factory) OpenWithKey(_, _, _ string) (driven.SpellEngine, error) {
	return nil, fmt.Errorf("%w: hunspell requires cgo", domain.ErrNotImplemented)
}
