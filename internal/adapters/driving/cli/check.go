package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [words...]",
	Short: "Check the spelling of words",
	Long: `Checks each word against the session's dictionaries.
Misspelled words are reported together with the engine's suggestions.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	session, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer session.Close()

	for _, word := range args {
		ok, err := session.Check(word)
		if err != nil {
			return fmt.Errorf("checking %q: %w", word, err)
		}
		if ok {
			cmd.Printf("%s: ok\n", word)
			continue
		}

		suggestions, err := session.Suggest(word)
		if err != nil {
			return fmt.Errorf("suggesting for %q: %w", word, err)
		}
		if len(suggestions) == 0 {
			cmd.Printf("%s: misspelled\n", word)
		} else {
			cmd.Printf("%s: misspelled (did you mean: %s?)\n", word, strings.Join(suggestions, ", "))
		}
	}

	return nil
}
