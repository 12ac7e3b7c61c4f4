package hunspell

import (
	"fmt"
	"unicode/utf8"
	"unsafe"

	"github.com/custodia-labs/spella-cli/internal/core/domain"
)

// decodeCStrings copies a native array of n NUL-terminated C strings
// into Go strings. It only reads; releasing the array stays with the
// caller. The file carries no native header so the validation rules
// run everywhere the package does, with or without the library.
//
// A count of zero is an empty result regardless of the list pointer:
// the engine returns whatever pointer it likes alongside zero.
func decodeCStrings(list unsafe.Pointer, n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrNegativeLength, n)
	}
	if n == 0 {
		return []string{}, nil
	}
	if list == nil {
		return nil, fmt.Errorf("%w: list with %d entries", domain.ErrNullPointer, n)
	}

	elems := unsafe.Slice((*unsafe.Pointer)(list), n)
	out := make([]string, 0, n)
	for i, elem := range elems {
		if elem == nil {
			return nil, fmt.Errorf("%w: list entry %d", domain.ErrNullPointer, i)
		}
		s := cString(elem)
		if !utf8.ValidString(s) {
			return nil, fmt.Errorf("%w: list entry %d", domain.ErrInvalidEncoding, i)
		}
		out = append(out, s)
	}
	return out, nil
}

// cString copies the bytes at p up to the terminating NUL.
func cString(p unsafe.Pointer) string {
	var n int
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}
