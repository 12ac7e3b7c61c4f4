package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/spella-cli/internal/core/domain"
)

// TestValidatePaths passes for existing regular files
func TestValidatePaths(t *testing.T) {
	affix, dictionary := writeFixtures(t)

	assert.NoError(t, ValidatePaths(affix, dictionary))
}

// TestValidatePaths_AffixFirst reports the affix before the dictionary
func TestValidatePaths_AffixFirst(t *testing.T) {
	err := ValidatePaths("/nonexistent/a.aff", "/nonexistent/a.dic")

	assert.ErrorIs(t, err, domain.ErrAffixFileMissing)
	assert.NotErrorIs(t, err, domain.ErrDictionaryFileMissing)
}

// TestValidatePaths_Directory rejects directories
func TestValidatePaths_Directory(t *testing.T) {
	_, dictionary := writeFixtures(t)

	err := ValidatePaths(t.TempDir(), dictionary)

	assert.ErrorIs(t, err, domain.ErrAffixFileMissing)
}

// TestCheckNul accepts clean strings and rejects embedded NUL
func TestCheckNul(t *testing.T) {
	assert.NoError(t, checkNul("systemdunits"))
	assert.NoError(t, checkNul(""))
	assert.ErrorIs(t, checkNul("a\x00b"), domain.ErrEmbeddedNul)
}
