package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/custodia-labs/spella-cli/internal/core/domain"
)

// ValidatePaths confirms that the affix and dictionary files exist as
// regular files. It runs before any engine construction so that a
// missing file is attributed to configuration rather than surfacing as
// an opaque engine failure.
func ValidatePaths(affix, dictionary string) error {
	if !isRegularFile(affix) {
		return fmt.Errorf("%w: %s", domain.ErrAffixFileMissing, affix)
	}
	if !isRegularFile(dictionary) {
		return fmt.Errorf("%w: %s", domain.ErrDictionaryFileMissing, dictionary)
	}
	return nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// checkNul rejects strings containing an embedded NUL byte before they
// reach the C string boundary, where they would be silently truncated.
func checkNul(s string) error {
	if strings.ContainsRune(s, '\x00') {
		return fmt.Errorf("%w: %q", domain.ErrEmbeddedNul, s)
	}
	return nil
}
