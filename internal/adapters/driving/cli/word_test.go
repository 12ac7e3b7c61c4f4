package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordCmd_AddListRemove(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "word", "add", "octonasaurius")
	require.NoError(t, err)
	assert.Contains(t, out, "Added")

	out, err = execute(t, "word", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "octonasaurius")

	out, err = execute(t, "word", "remove", "octonasaurius")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed")

	out, err = execute(t, "word", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "empty")
}

func TestWordCmd_ReplayIntoSession(t *testing.T) {
	affix, dictionary := setupTestServices(t)

	_, err := execute(t, "word", "add", "octonasaurius")
	require.NoError(t, err)

	out, err := execute(t, "check", "--affix", affix, "--dict", dictionary, "octonasaurius")
	require.NoError(t, err)
	assert.Contains(t, out, "octonasaurius: ok")
}

func TestWordCmd_ExampleReplaysAffixation(t *testing.T) {
	affix, dictionary := setupTestServices(t)

	_, err := execute(t, "word", "add", "rust", "--example", "cat")
	require.NoError(t, err)

	out, err := execute(t, "check", "--affix", affix, "--dict", dictionary, "rusts")
	require.NoError(t, err)
	assert.Contains(t, out, "rusts: ok")
}

func TestWordCmd_RemoveMissing(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "word", "remove", "absent")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not in the personal word list")
}

func TestWordCmd_ListShowsModel(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "word", "add", "rust", "--example", "cat")
	require.NoError(t, err)

	out, err := execute(t, "word", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "rust (model: cat)")
}
