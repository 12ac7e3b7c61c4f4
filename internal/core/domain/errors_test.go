package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEngineError_Message tests EngineError formatting
func TestEngineError_Message(t *testing.T) {
	err := NewEngineError(3)
	assert.Equal(t, "engine call failed with status 3", err.Error())
}

// TestEngineError_As tests that the status code survives wrapping
func TestEngineError_As(t *testing.T) {
	err := fmt.Errorf("removing word: %w", NewEngineError(-1))

	var engErr *EngineError
	require.True(t, errors.As(err, &engErr))
	assert.Equal(t, -1, engErr.Code)
}

// TestSentinels_IsThroughWrap tests errors.Is through fmt.Errorf wrapping
func TestSentinels_IsThroughWrap(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
	}{
		{"affix missing", ErrAffixFileMissing},
		{"dictionary missing", ErrDictionaryFileMissing},
		{"too many dictionaries", ErrTooManyDictionaries},
		{"construction failed", ErrEngineConstructionFailed},
		{"engine closed", ErrEngineClosed},
		{"null pointer", ErrNullPointer},
		{"negative length", ErrNegativeLength},
		{"invalid encoding", ErrInvalidEncoding},
		{"embedded nul", ErrEmbeddedNul},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", tt.sentinel)
			assert.True(t, errors.Is(wrapped, tt.sentinel))
		})
	}
}

// TestSentinels_Distinct tests that sentinels do not match each other
func TestSentinels_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrAffixFileMissing, ErrDictionaryFileMissing))
	assert.False(t, errors.Is(ErrNullPointer, ErrNegativeLength))
}
