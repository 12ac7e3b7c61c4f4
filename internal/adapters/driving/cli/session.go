package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var sessionExtraDicts []string

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage the saved session configuration",
	Long: `A saved session records the affix and dictionary paths, the extra
dictionaries in order, and the optional decryption key. Commands run
without --affix/--dict reconstruct their session from it.

Only the configuration is saved; the engine is reopened and the extra
dictionaries replayed on every use.`,
}

var sessionSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current session configuration",
	Long: `Opens a session from --affix and --dict (plus any --extra-dict, in
order) to prove the configuration is usable, then saves it.`,
	Args: cobra.NoArgs,
	RunE: runSessionSave,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved session configuration",
	Args:  cobra.NoArgs,
	RunE:  runSessionShow,
}

func init() {
	sessionSaveCmd.Flags().StringArrayVar(&sessionExtraDicts, "extra-dict", nil, "additional dictionary path (repeatable, ordered)")
	sessionCmd.AddCommand(sessionSaveCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	rootCmd.AddCommand(sessionCmd)
}

func runSessionSave(cmd *cobra.Command, _ []string) error {
	if sessionStore == nil {
		return errors.New("session store not configured")
	}
	if affixPath == "" || dictPath == "" {
		return errors.New("session save requires --affix and --dict")
	}

	session, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer session.Close()

	for _, d := range sessionExtraDicts {
		ok, err := session.AddDictionary(d)
		if err != nil {
			return fmt.Errorf("adding dictionary %s: %w", d, err)
		}
		if !ok {
			return fmt.Errorf("engine rejected dictionary %s", d)
		}
	}

	if err := sessionStore.Save(session.Config()); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	cmd.Printf("Saved session to %s\n", sessionStore.Path())
	return nil
}

func runSessionShow(cmd *cobra.Command, _ []string) error {
	if sessionStore == nil {
		return errors.New("session store not configured")
	}

	cfg, err := sessionStore.Load()
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}

	cmd.Printf("Affix:      %s\n", cfg.Affix)
	cmd.Printf("Dictionary: %s\n", cfg.Dictionary)
	for i, d := range cfg.AdditionalDictionaries {
		cmd.Printf("Extra %2d:   %s\n", i+1, d)
	}
	if cfg.Key != "" {
		// Never echo the key itself.
		cmd.Println("Key:        (set)")
	}
	return nil
}
