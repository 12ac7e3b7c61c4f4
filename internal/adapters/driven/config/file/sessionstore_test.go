package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/spella-cli/internal/adapters/driven/spell/memory"
	"github.com/custodia-labs/spella-cli/internal/core/domain"
	"github.com/custodia-labs/spella-cli/internal/core/services"
)

// TestSessionStore_RoundTrip saves and reloads an identical config
func TestSessionStore_RoundTrip(t *testing.T) {
	store, err := NewSessionStore(t.TempDir())
	require.NoError(t, err)

	cfg := domain.SessionConfig{
		Affix:                  "/dict/en.aff",
		Dictionary:             "/dict/en.dic",
		AdditionalDictionaries: []string{"/dict/med.dic", "/dict/legal.dic"},
		Key:                    "hzip-key",
	}
	require.NoError(t, store.Save(cfg))

	loaded, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, cfg, loaded)
}

// TestSessionStore_EmptyKeyOmitted never writes an empty key field
func TestSessionStore_EmptyKeyOmitted(t *testing.T) {
	dir := t.TempDir()
	store, err := NewSessionStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(domain.SessionConfig{
		Affix:      "/dict/en.aff",
		Dictionary: "/dict/en.dic",
	}))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "key")
}

// TestSessionStore_LoadMissing returns ErrNotFound
func TestSessionStore_LoadMissing(t *testing.T) {
	store, err := NewSessionStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load()

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestSessionStore_Path is inside the config directory
func TestSessionStore_Path(t *testing.T) {
	dir := t.TempDir()
	store, err := NewSessionStore(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "session.toml"), store.Path())
}

// TestSessionStore_RestoreSession rebuilds an equivalent session from
// the stored configuration alone
func TestSessionStore_RestoreSession(t *testing.T) {
	dir := t.TempDir()
	affix := filepath.Join(dir, "reduced.aff")
	dictionary := filepath.Join(dir, "reduced.dic")
	require.NoError(t, os.WriteFile(affix, []byte("SET UTF-8\n"), 0600))
	require.NoError(t, os.WriteFile(dictionary, []byte("2\ncat/S\nprogram\n"), 0600))

	original, err := services.OpenSession(memory.Factory{}, affix, dictionary)
	require.NoError(t, err)
	defer original.Close()

	store, err := NewSessionStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Save(original.Config()))

	cfg, err := store.Load()
	require.NoError(t, err)
	restored, err := services.RestoreSession(memory.Factory{}, cfg)
	require.NoError(t, err)
	defer restored.Close()

	assert.Equal(t, original.Affix(), restored.Affix())
	assert.Equal(t, original.Dictionary(), restored.Dictionary())

	want, err := original.Check("cats")
	require.NoError(t, err)
	got, err := restored.Check("cats")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
