//go:build cgo

package hunspell

/*
#cgo pkg-config: hunspell

#include <hunspell/hunspell.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/custodia-labs/spella-cli/internal/core/domain"
	"github.com/custodia-labs/spella-cli/internal/core/ports/driven"
)

// Ensure Engine implements the interface.
var _ driven.SpellEngine = (*Engine)(nil)

// Ensure Factory implements the interface.
var _ driven.EngineFactory = (Factory{})

// Factory opens native Hunspell engines.
type Factory struct{}

// Open opens a Hunspell handle from an affix file and a dictionary file.
// A null handle from the native call is the only failure mode.
func (Factory) Open(affix, dictionary string) (driven.SpellEngine, error) {
	caffix := C.CString(affix)
	defer C.free(unsafe.Pointer(caffix))

	cdictionary := C.CString(dictionary)
	defer C.free(unsafe.Pointer(cdictionary))

	handle := C.Hunspell_create(caffix, cdictionary)
	if handle == nil {
		return nil, fmt.Errorf("%w: %s, %s", domain.ErrEngineConstructionFailed, affix, dictionary)
	}
	return &Engine{handle: handle}, nil
}

// OpenWithKey opens a Hunspell handle from dictionaries encrypted with
// the hzip tool of the Hunspell distribution, decrypted with key.
func (Factory) OpenWithKey(affix, dictionary, key string) (driven.SpellEngine, error) {
	caffix := C.CString(affix)
	defer C.free(unsafe.Pointer(caffix))

	cdictionary := C.CString(dictionary)
	defer C.free(unsafe.Pointer(cdictionary))

	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	handle := C.Hunspell_create_key(caffix, cdictionary, ckey)
	if handle == nil {
		return nil, fmt.Errorf("%w: %s, %s", domain.ErrEngineConstructionFailed, affix, dictionary)
	}
	return &Engine{handle: handle}, nil
}

// Engine owns one Hunspell handle. It is the only type that issues raw
// native calls; all inputs arrive pre-validated (no embedded NUL) from
// the session layer.
//
// The handle is exclusively owned and carries no internal lock: Hunspell
// is not documented as reentrant, even nominally read-only calls may
// mutate engine-internal caches, and a lock here could not protect
// whatever global state the library keeps across handles. Callers must
// confine an Engine to one goroutine or serialize access themselves.
type Engine struct {
	handle *C.Hunhandle
}

// AddDictionary loads an extra dictionary sharing the handle's affix
// file. Zero native status means the engine accepted it; nonzero means
// its internal dictionary slots are exhausted.
func (e *Engine) AddDictionary(path string) (bool, error) {
	if e.handle == nil {
		return false, domain.ErrEngineClosed
	}

	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	status := C.Hunspell_add_dic(e.handle, cpath)
	return status == 0, nil
}

// AddWord adds a word to the runtime lexicon.
func (e *Engine) AddWord(word string) error {
	if e.handle == nil {
		return domain.ErrEngineClosed
	}

	cword := C.CString(word)
	defer C.free(unsafe.Pointer(cword))

	if status := C.Hunspell_add(e.handle, cword); status != 0 {
		return domain.NewEngineError(int(status))
	}
	return nil
}

// AddWordWithAffix adds a word to the runtime lexicon with example as
// the model of the enabled affixation and compounding.
func (e *Engine) AddWordWithAffix(word, example string) error {
	if e.handle == nil {
		return domain.ErrEngineClosed
	}

	cword := C.CString(word)
	defer C.free(unsafe.Pointer(cword))

	cexample := C.CString(example)
	defer C.free(unsafe.Pointer(cexample))

	if status := C.Hunspell_add_with_affix(e.handle, cword, cexample); status != 0 {
		return domain.NewEngineError(int(status))
	}
	return nil
}

// RemoveWord removes a word added with AddWord or AddWordWithAffix.
func (e *Engine) RemoveWord(word string) error {
	if e.handle == nil {
		return domain.ErrEngineClosed
	}

	cword := C.CString(word)
	defer C.free(unsafe.Pointer(cword))

	if status := C.Hunspell_remove(e.handle, cword); status != 0 {
		return domain.NewEngineError(int(status))
	}
	return nil
}

// Check reports whether the word is spelled correctly. The native
// return is an int, not a boolean: zero means misspelled, any nonzero
// value means correct.
func (e *Engine) Check(word string) (bool, error) {
	if e.handle == nil {
		return false, domain.ErrEngineClosed
	}

	cword := C.CString(word)
	defer C.free(unsafe.Pointer(cword))

	return C.Hunspell_spell(e.handle, cword) != 0, nil
}

// Suggest returns candidate spellings in engine-defined order.
func (e *Engine) Suggest(word string) ([]string, error) {
	if e.handle == nil {
		return nil, domain.ErrEngineClosed
	}

	cword := C.CString(word)
	defer C.free(unsafe.Pointer(cword))

	var list **C.char
	n := C.Hunspell_suggest(e.handle, &list, cword)
	defer e.freeList(&list, n)

	return decodeList(list, int(n))
}

// Analyze returns morphological analysis strings for the word.
func (e *Engine) Analyze(word string) ([]string, error) {
	if e.handle == nil {
		return nil, domain.ErrEngineClosed
	}

	cword := C.CString(word)
	defer C.free(unsafe.Pointer(cword))

	var list **C.char
	n := C.Hunspell_analyze(e.handle, &list, cword)
	defer e.freeList(&list, n)

	return decodeList(list, int(n))
}

// Stem returns the stems of the word.
func (e *Engine) Stem(word string) ([]string, error) {
	if e.handle == nil {
		return nil, domain.ErrEngineClosed
	}

	cword := C.CString(word)
	defer C.free(unsafe.Pointer(cword))

	var list **C.char
	n := C.Hunspell_stem(e.handle, &list, cword)
	defer e.freeList(&list, n)

	return decodeList(list, int(n))
}

// ExtendedStem returns stems derived by first analyzing the word, then
// stemming from the analysis list. Two native lists are produced; both
// are released here, each exactly once.
func (e *Engine) ExtendedStem(word string) ([]string, error) {
	if e.handle == nil {
		return nil, domain.ErrEngineClosed
	}

	cword := C.CString(word)
	defer C.free(unsafe.Pointer(cword))

	var analyzed **C.char
	nAnalyzed := C.Hunspell_analyze(e.handle, &analyzed, cword)
	defer e.freeList(&analyzed, nAnalyzed)

	var list **C.char
	n := C.Hunspell_stem2(e.handle, &list, analyzed, nAnalyzed)
	defer e.freeList(&list, n)

	return decodeList(list, int(n))
}

// Generate returns forms of word using model's affixation as template.
func (e *Engine) Generate(word, model string) ([]string, error) {
	if e.handle == nil {
		return nil, domain.ErrEngineClosed
	}

	cword := C.CString(word)
	defer C.free(unsafe.Pointer(cword))

	cmodel := C.CString(model)
	defer C.free(unsafe.Pointer(cmodel))

	var list **C.char
	n := C.Hunspell_generate(e.handle, &list, cword, cmodel)
	defer e.freeList(&list, n)

	return decodeList(list, int(n))
}

// ExtendedGenerate returns forms derived via morphological analysis of
// word, shaped after model. Both native lists are released here.
func (e *Engine) ExtendedGenerate(word, model string) ([]string, error) {
	if e.handle == nil {
		return nil, domain.ErrEngineClosed
	}

	cword := C.CString(word)
	defer C.free(unsafe.Pointer(cword))

	cmodel := C.CString(model)
	defer C.free(unsafe.Pointer(cmodel))

	var analyzed **C.char
	nAnalyzed := C.Hunspell_analyze(e.handle, &analyzed, cword)
	defer e.freeList(&analyzed, nAnalyzed)

	var list **C.char
	n := C.Hunspell_generate2(e.handle, &list, cmodel, analyzed, nAnalyzed)
	defer e.freeList(&list, n)

	return decodeList(list, int(n))
}

// Close destroys the Hunspell handle. Idempotent; the handle is nilled
// so no further native call can reach a destroyed handle.
func (e *Engine) Close() error {
	if e.handle != nil {
		C.Hunspell_destroy(e.handle)
		e.handle = nil
	}
	return nil
}

// freeList releases a list returned by a native query through the
// engine's own deallocator. Every list-returning Hunspell call
// transfers ownership to us, so each produced list passes through here
// exactly once, whether or not decoding succeeded.
func (e *Engine) freeList(list ***C.char, n C.int) {
	if *list == nil || n <= 0 {
		return
	}
	C.Hunspell_free_list(e.handle, list, n)
}

// decodeList copies a native array of n C strings into Go strings.
// It only reads; releasing the array stays with the caller.
func decodeList(list **C.char, n int) ([]string, error) {
	return decodeCStrings(unsafe.Pointer(list), n)
}
