package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/spella-cli/internal/core/domain"
)

var wordExample string

var wordCmd = &cobra.Command{
	Use:   "word",
	Short: "Manage the personal word list",
	Long: `The personal word list is stored locally and replayed into the
session's runtime lexicon every time a session is opened. It is the
persistent counterpart of the engine's session-only added words.`,
}

var wordAddCmd = &cobra.Command{
	Use:   "add [word]",
	Short: "Add a word to the personal word list",
	Args:  cobra.ExactArgs(1),
	RunE:  runWordAdd,
}

var wordRemoveCmd = &cobra.Command{
	Use:   "remove [word]",
	Short: "Remove a word from the personal word list",
	Args:  cobra.ExactArgs(1),
	RunE:  runWordRemove,
}

var wordListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the personal word list",
	Args:  cobra.NoArgs,
	RunE:  runWordList,
}

func init() {
	wordAddCmd.Flags().StringVar(&wordExample, "example", "", "model word for affixation and compounding")
	wordCmd.AddCommand(wordAddCmd)
	wordCmd.AddCommand(wordRemoveCmd)
	wordCmd.AddCommand(wordListCmd)
	rootCmd.AddCommand(wordCmd)
}

func runWordAdd(cmd *cobra.Command, args []string) error {
	if wordStore == nil {
		return errors.New("word store not configured")
	}

	word := domain.PersonalWord{Word: args[0], Example: wordExample}
	if err := wordStore.Add(cmd.Context(), word); err != nil {
		return fmt.Errorf("adding word: %w", err)
	}

	cmd.Printf("Added %q to the personal word list.\n", args[0])
	return nil
}

func runWordRemove(cmd *cobra.Command, args []string) error {
	if wordStore == nil {
		return errors.New("word store not configured")
	}

	if err := wordStore.Remove(cmd.Context(), args[0]); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%q is not in the personal word list", args[0])
		}
		return fmt.Errorf("removing word: %w", err)
	}

	cmd.Printf("Removed %q from the personal word list.\n", args[0])
	return nil
}

func runWordList(cmd *cobra.Command, _ []string) error {
	if wordStore == nil {
		return errors.New("word store not configured")
	}

	words, err := wordStore.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing words: %w", err)
	}

	if len(words) == 0 {
		cmd.Println("The personal word list is empty.")
		return nil
	}
	for _, w := range words {
		if w.Example != "" {
			cmd.Printf("%s (model: %s)\n", w.Word, w.Example)
		} else {
			cmd.Println(w.Word)
		}
	}
	return nil
}
