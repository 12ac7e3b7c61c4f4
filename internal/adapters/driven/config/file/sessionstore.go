package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/spella-cli/internal/core/domain"
	"github.com/custodia-labs/spella-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is a file-based implementation of driven.SessionStore
// using TOML. Only the session's configuration is stored: the affix and
// dictionary paths, the ordered extra dictionaries and the optional key.
// The native handle never touches the file.
type SessionStore struct {
	filePath string
}

// NewSessionStore creates a new TOML-based session store.
// If configDir is empty, defaults to ~/.spella/session.toml.
func NewSessionStore(configDir string) (*SessionStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".spella")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &SessionStore{
		filePath: filepath.Join(configDir, "session.toml"),
	}, nil
}

// Save writes the session configuration to disk.
func (s *SessionStore) Save(cfg domain.SessionConfig) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling session config: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("writing session config: %w", err)
	}
	return nil
}

// Load reads the session configuration from disk.
func (s *SessionStore) Load() (domain.SessionConfig, error) {
	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		return domain.SessionConfig{}, fmt.Errorf("%w: no saved session at %s", domain.ErrNotFound, s.filePath)
	}
	if err != nil {
		return domain.SessionConfig{}, fmt.Errorf("reading session config: %w", err)
	}

	var cfg domain.SessionConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return domain.SessionConfig{}, fmt.Errorf("parsing session config: %w", err)
	}
	return cfg, nil
}

// Path returns the session config file path.
func (s *SessionStore) Path() string {
	return s.filePath
}
