package driven

import (
	"github.com/custodia-labs/spella-cli/internal/core/domain"
)

// SessionStore persists a session's configuration: the affix and
// dictionary paths, the ordered extra dictionaries and the optional
// key. The native handle is never stored; restoring replays the
// configuration against a fresh engine.
type SessionStore interface {
	// Save writes the configuration.
	Save(cfg domain.SessionConfig) error

	// Load reads the configuration. Returns domain.ErrNotFound if
	// nothing has been saved.
	Load() (domain.SessionConfig, error)

	// Path returns the location of the stored configuration.
	Path() string
}
