package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCmd_SaveAndShow(t *testing.T) {
	affix, dictionary := setupTestServices(t)
	extra := filepath.Join(t.TempDir(), "extra.dic")
	require.NoError(t, os.WriteFile(extra, []byte("1\nsystemdunits\n"), 0600))

	out, err := execute(t, "session", "save",
		"--affix", affix, "--dict", dictionary, "--extra-dict", extra)
	require.NoError(t, err)
	assert.Contains(t, out, "Saved session")

	out, err = execute(t, "session", "show")
	require.NoError(t, err)
	assert.Contains(t, out, affix)
	assert.Contains(t, out, dictionary)
	assert.Contains(t, out, extra)
}

func TestSessionCmd_SavedSessionUsedWithoutFlags(t *testing.T) {
	affix, dictionary := setupTestServices(t)
	extra := filepath.Join(t.TempDir(), "extra.dic")
	require.NoError(t, os.WriteFile(extra, []byte("1\nsystemdunits\n"), 0600))

	_, err := execute(t, "session", "save",
		"--affix", affix, "--dict", dictionary, "--extra-dict", extra)
	require.NoError(t, err)

	// No --affix/--dict: the saved configuration is replayed, extra
	// dictionary included.
	out, err := execute(t, "check", "cats", "systemdunits")
	require.NoError(t, err)
	assert.Contains(t, out, "cats: ok")
	assert.Contains(t, out, "systemdunits: ok")
}

func TestSessionCmd_SaveRequiresPaths(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "session", "save")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--affix")
}

func TestSessionCmd_ShowWithoutSaved(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "session", "show")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "loading session")
}

func TestSessionCmd_KeyNeverEchoed(t *testing.T) {
	affix, dictionary := setupTestServices(t)

	_, err := execute(t, "session", "save",
		"--affix", affix, "--dict", dictionary, "--key", "hzip-secret")
	require.NoError(t, err)

	out, err := execute(t, "session", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Key:        (set)")
	assert.NotContains(t, out, "hzip-secret")
}
