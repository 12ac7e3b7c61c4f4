package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	stemExtended     bool
	generateExtended bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [word]",
	Short: "Morphological analysis of a word",
	Long:  `Prints one analysis string per reading of the word.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

var stemCmd = &cobra.Command{
	Use:   "stem [word]",
	Short: "Stem a word",
	Long: `Prints the stems of the word, one per line.

With --extended, the word is morphologically analyzed first and the
stems are derived from the analysis.`,
	Args: cobra.ExactArgs(1),
	RunE: runStem,
}

var generateCmd = &cobra.Command{
	Use:   "generate [word] [model]",
	Short: "Generate word forms after a model word",
	Long: `Generates forms of the first word using the second word and its
affixation as the template.

With --extended, the first word is morphologically analyzed first and
the forms are derived from the analysis.`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

func init() {
	stemCmd.Flags().BoolVar(&stemExtended, "extended", false, "stem from morphological analysis")
	generateCmd.Flags().BoolVar(&generateExtended, "extended", false, "generate from morphological analysis")
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(stemCmd)
	rootCmd.AddCommand(generateCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	session, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer session.Close()

	analyses, err := session.Analyze(args[0])
	if err != nil {
		return fmt.Errorf("analyzing %q: %w", args[0], err)
	}

	printLines(cmd, analyses, "No analysis.")
	return nil
}

func runStem(cmd *cobra.Command, args []string) error {
	session, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer session.Close()

	stem := session.Stem
	if stemExtended {
		stem = session.ExtendedStem
	}
	stems, err := stem(args[0])
	if err != nil {
		return fmt.Errorf("stemming %q: %w", args[0], err)
	}

	printLines(cmd, stems, "No stems.")
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	session, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer session.Close()

	generate := session.Generate
	if generateExtended {
		generate = session.ExtendedGenerate
	}
	forms, err := generate(args[0], args[1])
	if err != nil {
		return fmt.Errorf("generating forms of %q: %w", args[0], err)
	}

	printLines(cmd, forms, "No forms.")
	return nil
}

func printLines(cmd *cobra.Command, lines []string, empty string) {
	if len(lines) == 0 {
		cmd.Println(empty)
		return
	}
	for _, line := range lines {
		cmd.Println(line)
	}
}
