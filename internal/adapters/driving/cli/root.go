package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/spella-cli/internal/core/domain"
	"github.com/custodia-labs/spella-cli/internal/core/ports/driven"
	"github.com/custodia-labs/spella-cli/internal/core/services"
	"github.com/custodia-labs/spella-cli/internal/logger"
)

var version = "dev"

// Persistent flag values.
var (
	affixPath   string
	dictPath    string
	keyValue    string
	keyPrompt   bool
	verboseFlag bool
)

// Injected infrastructure. Set by Configure before Execute.
var (
	engineFactory driven.EngineFactory
	sessionStore  driven.SessionStore
	wordStore     driven.WordStore
)

var rootCmd = &cobra.Command{
	Use:   "spella",
	Short: "Spell checking and morphology from the command line",
	Long: `Spella wraps the Hunspell library for word-level linguistic work:
spell checking and correction, stemming, morphological analysis and
generation.

Dictionaries are given as a Hunspell affix/dictionary file pair via
--affix and --dict, or loaded from a configuration saved with
"spella session save".`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&affixPath, "affix", "a", "", "path to the affix (.aff) file")
	rootCmd.PersistentFlags().StringVarP(&dictPath, "dict", "d", "", "path to the dictionary (.dic) file")
	rootCmd.PersistentFlags().StringVar(&keyValue, "key", "", "decryption key for encrypted dictionaries")
	rootCmd.PersistentFlags().BoolVar(&keyPrompt, "key-prompt", false, "prompt for the decryption key without echo")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
}

// Configure injects the infrastructure adapters.
// Must be called before Execute.
func Configure(factory driven.EngineFactory, sessions driven.SessionStore, words driven.WordStore) {
	engineFactory = factory
	sessionStore = sessions
	wordStore = words
}

// Execute runs the root command.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a context, so long-running
// commands like watch stop on interrupt.
func ExecuteContext(ctx context.Context, v string) error {
	version = v
	return rootCmd.ExecuteContext(ctx)
}

// openSession opens a spell-check session from the persistent flags,
// falling back to the saved session configuration when no paths are
// given, and replays the personal word list into it.
func openSession(cmd *cobra.Command) (*services.Session, error) {
	if engineFactory == nil {
		return nil, errors.New("engine factory not configured")
	}

	if affixPath == "" && dictPath == "" && sessionStore != nil {
		cfg, err := sessionStore.Load()
		if err == nil {
			logger.Debug("Using saved session from %s", sessionStore.Path())
			s, err := services.RestoreSession(engineFactory, cfg)
			if err != nil {
				return nil, err
			}
			return replayPersonalWords(cmd, s)
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	if affixPath == "" || dictPath == "" {
		return nil, errors.New("an affix and dictionary are required: pass --affix and --dict, or save a session first")
	}

	key := keyValue
	if keyPrompt {
		k, err := readKey(cmd)
		if err != nil {
			return nil, err
		}
		key = k
	}

	var (
		s   *services.Session
		err error
	)
	if key != "" {
		s, err = services.OpenSessionWithKey(engineFactory, affixPath, dictPath, key)
	} else {
		s, err = services.OpenSession(engineFactory, affixPath, dictPath)
	}
	if err != nil {
		return nil, err
	}
	return replayPersonalWords(cmd, s)
}

// replayPersonalWords feeds the persisted word list into the session's
// runtime lexicon. A word that fails to load is skipped with a warning
// rather than failing the whole command.
func replayPersonalWords(cmd *cobra.Command, s *services.Session) (*services.Session, error) {
	if wordStore == nil {
		return s, nil
	}

	words, err := wordStore.List(cmd.Context())
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("loading personal words: %w", err)
	}

	for _, w := range words {
		if w.Example != "" {
			err = s.AddWordWithAffix(w.Word, w.Example)
		} else {
			err = s.AddWord(w.Word)
		}
		if err != nil {
			logger.Warn("Skipping personal word %q: %v", w.Word, err)
		}
	}
	if len(words) > 0 {
		logger.Debug("Replayed %d personal words", len(words))
	}
	return s, nil
}

func readKey(cmd *cobra.Command) (string, error) {
	cmd.PrintErr("Dictionary key: ")
	key, err := term.ReadPassword(int(os.Stdin.Fd()))
	cmd.PrintErrln()
	if err != nil {
		return "", fmt.Errorf("reading key: %w", err)
	}
	return string(key), nil
}
