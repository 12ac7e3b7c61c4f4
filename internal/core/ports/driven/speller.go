package driven

// SpellEngine is one open instance of the morphological analysis engine.
//
// The engine is not reentrant: callers must confine an engine to one
// goroutine or serialize access externally. Even operations that look
// read-only (Check, Suggest) may mutate hidden engine state, so every
// method requires exclusive access for the duration of the call.
//
// Methods take no context: every call is a single synchronous native
// operation with no cancellation or timeout semantics.
type SpellEngine interface {
	// AddDictionary loads an extra dictionary sharing the session's affix
	// file. The boolean reflects whether the engine reported success; the
	// caller owns the dictionary-count limit.
	AddDictionary(path string) (bool, error)

	// AddWord adds a word to the runtime lexicon. The word is lost when
	// the engine is closed.
	AddWord(word string) error

	// AddWordWithAffix adds a word using example as the model for its
	// affixation and compounding.
	AddWordWithAffix(word, example string) error

	// RemoveWord removes a word previously added with AddWord or
	// AddWordWithAffix, or hides a dictionary word.
	RemoveWord(word string) error

	// Check reports whether the word is spelled correctly.
	Check(word string) (bool, error)

	// Suggest returns candidate spellings for the word, in engine order.
	Suggest(word string) ([]string, error)

	// Analyze returns morphological analysis strings for the word.
	Analyze(word string) ([]string, error)

	// Stem returns the stems of the word.
	Stem(word string) ([]string, error)

	// ExtendedStem returns stems derived by analyzing the word first,
	// then stemming from the analysis.
	ExtendedStem(word string) ([]string, error)

	// Generate returns forms of word using model's affixation as template.
	Generate(word, model string) ([]string, error)

	// ExtendedGenerate returns forms derived via analysis of word first.
	ExtendedGenerate(word, model string) ([]string, error)

	// Close releases the engine. It is idempotent; all other methods
	// fail with domain.ErrEngineClosed afterwards.
	Close() error
}

// EngineFactory constructs engines from dictionary files. Each call opens
// an independent engine; handles are never shared between sessions.
type EngineFactory interface {
	// Open opens an engine from an affix file and a dictionary file.
	Open(affix, dictionary string) (SpellEngine, error)

	// OpenWithKey opens an engine from dictionaries encrypted with the
	// hzip tool, decrypted with key.
	OpenWithKey(affix, dictionary, key string) (SpellEngine, error)
}
