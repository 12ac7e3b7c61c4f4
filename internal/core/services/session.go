package services

import (
	"fmt"

	"github.com/custodia-labs/spella-cli/internal/core/domain"
	"github.com/custodia-labs/spella-cli/internal/core/ports/driven"
	"github.com/custodia-labs/spella-cli/internal/logger"
)

// Session owns one open spell-check engine together with the
// configuration it was opened from. Exactly one engine is owned by
// exactly one session; Clone opens a fresh engine rather than sharing
// the handle.
//
// A session is not safe for concurrent use. The underlying engine is
// not reentrant and even read-looking calls may mutate engine state,
// so callers must confine a session to one goroutine or serialize
// access themselves.
type Session struct {
	factory driven.EngineFactory
	cfg     domain.SessionConfig
	engine  driven.SpellEngine
}

// OpenSession opens a session from an affix (.aff) file and a
// dictionary (.dic) file. Both must be existing regular files.
//
// For dictionaries encrypted with the hzip tool use OpenSessionWithKey.
func OpenSession(factory driven.EngineFactory, affix, dictionary string) (*Session, error) {
	return open(factory, domain.SessionConfig{Affix: affix, Dictionary: dictionary})
}

// OpenSessionWithKey opens a session from encrypted dictionary files,
// decrypted with key. The key must be non-empty; a session without a
// key is opened with OpenSession.
func OpenSessionWithKey(factory driven.EngineFactory, affix, dictionary, key string) (*Session, error) {
	if key == "" {
		return nil, domain.ErrEmptyKey
	}
	return open(factory, domain.SessionConfig{Affix: affix, Dictionary: dictionary, Key: key})
}

// RestoreSession reconstructs a session from a saved configuration by
// reopening the engine and replaying AddDictionary for every additional
// dictionary, in their original order. It fails if any of the files no
// longer exist; no engine is left open on failure.
func RestoreSession(factory driven.EngineFactory, cfg domain.SessionConfig) (*Session, error) {
	s, err := open(factory, domain.SessionConfig{
		Affix:      cfg.Affix,
		Dictionary: cfg.Dictionary,
		Key:        cfg.Key,
	})
	if err != nil {
		return nil, err
	}
	for _, d := range cfg.AdditionalDictionaries {
		if _, err := s.AddDictionary(d); err != nil {
			s.Close()
			return nil, fmt.Errorf("replaying dictionary %s: %w", d, err)
		}
	}
	return s, nil
}

func open(factory driven.EngineFactory, cfg domain.SessionConfig) (*Session, error) {
	for _, s := range []string{cfg.Affix, cfg.Dictionary, cfg.Key} {
		if err := checkNul(s); err != nil {
			return nil, err
		}
	}
	if err := ValidatePaths(cfg.Affix, cfg.Dictionary); err != nil {
		return nil, err
	}

	var (
		engine driven.SpellEngine
		err    error
	)
	if cfg.Key != "" {
		engine, err = factory.OpenWithKey(cfg.Affix, cfg.Dictionary, cfg.Key)
	} else {
		engine, err = factory.Open(cfg.Affix, cfg.Dictionary)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("Opened session: affix=%s dictionary=%s", cfg.Affix, cfg.Dictionary)

	return &Session{
		factory: factory,
		cfg:     cfg,
		engine:  engine,
	}, nil
}

// Affix returns the path of the affix file.
func (s *Session) Affix() string {
	return s.cfg.Affix
}

// Dictionary returns the path of the primary dictionary file.
func (s *Session) Dictionary() string {
	return s.cfg.Dictionary
}

// AdditionalDictionaries returns the extra dictionary paths in the
// order they were added.
func (s *Session) AdditionalDictionaries() []string {
	out := make([]string, len(s.cfg.AdditionalDictionaries))
	copy(out, s.cfg.AdditionalDictionaries)
	return out
}

// Config returns a copy of the session's serializable configuration.
// The native handle is not part of it.
func (s *Session) Config() domain.SessionConfig {
	return s.cfg.Clone()
}

// AddDictionary loads an additional dictionary for lookup. The extra
// dictionary uses the session's affix file. At most
// domain.MaxAdditionalDictionaries can be added; on any failure the
// session's dictionary list is unchanged.
//
// The boolean mirrors the engine's own success report. The path is
// recorded only when the engine accepted the dictionary.
func (s *Session) AddDictionary(path string) (bool, error) {
	if s.engine == nil {
		return false, domain.ErrEngineClosed
	}
	if len(s.cfg.AdditionalDictionaries) >= domain.MaxAdditionalDictionaries {
		return false, fmt.Errorf("%w: %s", domain.ErrTooManyDictionaries, path)
	}
	if err := checkNul(path); err != nil {
		return false, err
	}
	if !isRegularFile(path) {
		return false, fmt.Errorf("%w: %s", domain.ErrDictionaryFileMissing, path)
	}

	ok, err := s.engine.AddDictionary(path)
	if err != nil {
		return false, err
	}
	if ok {
		s.cfg.AdditionalDictionaries = append(s.cfg.AdditionalDictionaries, path)
		logger.Debug("Added dictionary %s (%d extra total)", path, len(s.cfg.AdditionalDictionaries))
	}
	return ok, nil
}

// AddWord adds a word to the runtime lexicon. Added words are lost
// when the session is closed; for permanence use the personal word
// list or an extra dictionary file.
func (s *Session) AddWord(word string) error {
	if err := s.guard(word); err != nil {
		return err
	}
	return s.engine.AddWord(word)
}

// AddWordWithAffix adds a word to the runtime lexicon using example as
// the model for the word's affixation and compounding.
func (s *Session) AddWordWithAffix(word, example string) error {
	if err := s.guard(word); err != nil {
		return err
	}
	if err := checkNul(example); err != nil {
		return err
	}
	return s.engine.AddWordWithAffix(word, example)
}

// RemoveWord removes a word added with AddWord or AddWordWithAffix.
func (s *Session) RemoveWord(word string) error {
	if err := s.guard(word); err != nil {
		return err
	}
	return s.engine.RemoveWord(word)
}

// Check reports whether the word is spelled correctly.
func (s *Session) Check(word string) (bool, error) {
	if err := s.guard(word); err != nil {
		return false, err
	}
	return s.engine.Check(word)
}

// Suggest returns candidate spellings for the word. The order is
// engine-defined and the list may be empty.
func (s *Session) Suggest(word string) ([]string, error) {
	if err := s.guard(word); err != nil {
		return nil, err
	}
	return s.engine.Suggest(word)
}

// Analyze returns morphological analysis strings for the word.
func (s *Session) Analyze(word string) ([]string, error) {
	if err := s.guard(word); err != nil {
		return nil, err
	}
	return s.engine.Analyze(word)
}

// Stem returns the stems of the word.
func (s *Session) Stem(word string) ([]string, error) {
	if err := s.guard(word); err != nil {
		return nil, err
	}
	return s.engine.Stem(word)
}

// ExtendedStem returns stems derived by first analyzing the word,
// then stemming from the analysis.
func (s *Session) ExtendedStem(word string) ([]string, error) {
	if err := s.guard(word); err != nil {
		return nil, err
	}
	return s.engine.ExtendedStem(word)
}

// Generate returns morphological generations of word; model and its
// affixation serve as the template for the requested forms.
func (s *Session) Generate(word, model string) ([]string, error) {
	if err := s.guard(word); err != nil {
		return nil, err
	}
	if err := checkNul(model); err != nil {
		return nil, err
	}
	return s.engine.Generate(word, model)
}

// ExtendedGenerate returns generated forms derived via morphological
// analysis of word first, with model as the template.
func (s *Session) ExtendedGenerate(word, model string) ([]string, error) {
	if err := s.guard(word); err != nil {
		return nil, err
	}
	if err := checkNul(model); err != nil {
		return nil, err
	}
	return s.engine.ExtendedGenerate(word, model)
}

// Clone produces an independent session by reopening the configured
// files and replaying every added dictionary in order. It fails if any
// of the files no longer exist. The clone shares no engine state with
// the original.
func (s *Session) Clone() (*Session, error) {
	if s.engine == nil {
		return nil, domain.ErrEngineClosed
	}
	return RestoreSession(s.factory, s.cfg)
}

// Close releases the engine. It is idempotent; the session is unusable
// afterwards and every other method fails with domain.ErrEngineClosed.
func (s *Session) Close() error {
	if s.engine == nil {
		return nil
	}
	err := s.engine.Close()
	s.engine = nil
	return err
}

func (s *Session) guard(word string) error {
	if s.engine == nil {
		return domain.ErrEngineClosed
	}
	return checkNul(word)
}
