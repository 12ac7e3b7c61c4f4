package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "spella", rootCmd.Use)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"affix", "dict", "key", "key-prompt", "verbose"} {
		flag := rootCmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, "%s flag should exist", name)
	}

	assert.Equal(t, "a", rootCmd.PersistentFlags().Lookup("affix").Shorthand)
	assert.Equal(t, "d", rootCmd.PersistentFlags().Lookup("dict").Shorthand)
}

func TestVersionCmd(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "spella version")
}
