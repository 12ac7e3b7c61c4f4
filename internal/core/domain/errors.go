package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent boundary-layer failures.
// Every failure the session layer can surface is one of these
// sentinels (or an *EngineError), so callers can branch with
// errors.Is / errors.As instead of string matching.
var (
	// ErrAffixFileMissing indicates the affix path is not an existing regular file.
	ErrAffixFileMissing = errors.New("affix file does not exist")

	// ErrDictionaryFileMissing indicates a dictionary path is not an existing regular file.
	ErrDictionaryFileMissing = errors.New("dictionary file does not exist")

	// ErrTooManyDictionaries indicates the additional-dictionary limit was reached.
	// The engine supports at most MaxAdditionalDictionaries extra dictionaries.
	ErrTooManyDictionaries = errors.New("cannot add more dictionaries")

	// ErrEngineConstructionFailed indicates the native engine returned a null handle.
	ErrEngineConstructionFailed = errors.New("engine construction failed")

	// ErrEngineClosed indicates a call was made on a closed session.
	ErrEngineClosed = errors.New("engine is closed")

	// ErrNullPointer indicates the engine returned a null list or element pointer
	// where a valid pointer was required.
	ErrNullPointer = errors.New("null pointer from engine")

	// ErrNegativeLength indicates the engine reported a negative list length.
	ErrNegativeLength = errors.New("negative list length from engine")

	// ErrInvalidEncoding indicates engine output was not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid encoding in engine output")

	// ErrEmptyKey indicates an empty decryption key was supplied where a
	// key is required. Sessions without a key use the keyless open path.
	ErrEmptyKey = errors.New("decryption key is empty")

	// ErrEmbeddedNul indicates an input string contains an embedded NUL byte.
	// Such input never reaches the engine; it would be silently truncated
	// at the C string boundary.
	ErrEmbeddedNul = errors.New("input contains embedded NUL byte")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotImplemented indicates functionality is not yet available.
	// Returned by the engine stub when built without CGO.
	ErrNotImplemented = errors.New("not implemented")
)

// EngineError reports a nonzero status code from a native engine call.
// The code is opaque; the engine documents only that zero means success.
type EngineError struct {
	// Code is the raw status returned by the native call.
	Code int
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	return fmt.Sprintf("engine call failed with status %d", e.Code)
}

// NewEngineError wraps a nonzero native status code.
func NewEngineError(code int) error {
	return &EngineError{Code: code}
}
