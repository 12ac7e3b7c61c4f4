package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/spella-cli/internal/core/services"
	"github.com/custodia-labs/spella-cli/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-check a text file whenever it changes",
	Long: `Checks every word in the file, then watches it and re-checks on each
write. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	session, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer session.Close()

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving %s: %w", args[0], err)
	}

	if err := checkFile(cmd, session, path); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors that write via
	// rename would otherwise drop the watch after the first save.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}
	logger.Info("Watching %s", path)

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != path || !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("Change detected: %s", event.Op)
			if err := checkFile(cmd, session, path); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watch error: %v", err)
		}
	}
}

func checkFile(cmd *cobra.Command, session *services.Session, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	misspelled := 0
	for _, word := range fileWords(string(data)) {
		ok, err := session.Check(word)
		if err != nil {
			return fmt.Errorf("checking %q: %w", word, err)
		}
		if ok {
			continue
		}
		misspelled++
		suggestions, err := session.Suggest(word)
		if err != nil {
			return fmt.Errorf("suggesting for %q: %w", word, err)
		}
		if len(suggestions) == 0 {
			cmd.Printf("  %s\n", word)
		} else {
			cmd.Printf("  %s (did you mean: %s?)\n", word, strings.Join(suggestions, ", "))
		}
	}

	if misspelled == 0 {
		cmd.Printf("%s: no misspellings\n", filepath.Base(path))
	} else {
		cmd.Printf("%s: %d misspelled\n", filepath.Base(path), misspelled)
	}
	return nil
}

// fileWords extracts the unique words of a text in order of first
// appearance.
func fileWords(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})

	seen := make(map[string]bool)
	words := []string{}
	for _, f := range fields {
		f = strings.Trim(f, "'")
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		words = append(words, f)
	}
	return words
}
