package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/spella-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/spella-cli/internal/adapters/driven/spell/memory"
	"github.com/custodia-labs/spella-cli/internal/adapters/driven/storage/sqlite"
)

const reducedDic = `4
cat/S
dog/S
program
systemd
`

const reducedAff = `SET UTF-8
SFX S Y 1
SFX S 0 s .
`

// setupTestServices wires the in-memory engine and temp-dir stores into
// the command tree and returns fixture dictionary paths. State is
// restored when the test finishes.
func setupTestServices(t *testing.T) (affix, dictionary string) {
	t.Helper()

	prevFactory, prevSessions, prevWords := engineFactory, sessionStore, wordStore

	sessions, err := file.NewSessionStore(t.TempDir())
	require.NoError(t, err)
	words, err := sqlite.NewWordStore(t.TempDir())
	require.NoError(t, err)

	Configure(memory.Factory{}, sessions, words)

	t.Cleanup(func() {
		words.Close()
		engineFactory, sessionStore, wordStore = prevFactory, prevSessions, prevWords
		resetFlags()
		rootCmd.SetArgs(nil)
	})

	dir := t.TempDir()
	affix = filepath.Join(dir, "reduced.aff")
	dictionary = filepath.Join(dir, "reduced.dic")
	require.NoError(t, os.WriteFile(affix, []byte(reducedAff), 0600))
	require.NoError(t, os.WriteFile(dictionary, []byte(reducedDic), 0600))
	return affix, dictionary
}

// execute runs the root command with clean flag state and returns the
// combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags() {
	affixPath, dictPath, keyValue = "", "", ""
	keyPrompt, verboseFlag = false, false
	suggestJSON = false
	stemExtended, generateExtended = false, false
	wordExample = ""
	sessionExtraDicts = nil
}
