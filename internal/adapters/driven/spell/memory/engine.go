package memory

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/spella-cli/internal/core/domain"
	"github.com/custodia-labs/spella-cli/internal/core/ports/driven"
)

// Ensure Engine implements the interface.
var _ driven.SpellEngine = (*Engine)(nil)

// Ensure Factory implements the interface.
var _ driven.EngineFactory = (Factory{})

// Factory opens in-memory engines from plain .dic word lists.
type Factory struct{}

// Open opens an in-memory engine. The affix file is read for existence
// only; affix rules are approximated by the "S" plural flag.
func (Factory) Open(affix, dictionary string) (driven.SpellEngine, error) {
	if _, err := os.Stat(affix); err != nil {
		return nil, fmt.Errorf("%w: reading affix: %v", domain.ErrEngineConstructionFailed, err)
	}
	e := &Engine{words: make(map[string]string)}
	if err := e.load(dictionary); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEngineConstructionFailed, err)
	}
	return e, nil
}

// OpenWithKey opens an in-memory engine. The key is accepted and
// ignored; the in-memory lexicon has no encrypted form.
func (f Factory) OpenWithKey(affix, dictionary, _ string) (driven.SpellEngine, error) {
	return f.Open(affix, dictionary)
}

// Engine is an in-memory implementation of driven.SpellEngine backed
// by a word list parsed from .dic files. It supports a single affix
// rule, the "S" flag, which licenses a plural in -s. Deterministic and
// dependency-free, it stands in for the native engine in tests and in
// builds without CGO.
type Engine struct {
	// words maps a base word to its flag string ("" for none).
	words  map[string]string
	closed bool
}

func (e *Engine) load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		// The first line of a .dic file is the approximate word count.
		if first {
			first = false
			if _, err := strconv.Atoi(line); err == nil {
				continue
			}
		}
		word, flags, _ := strings.Cut(line, "/")
		e.words[word] = flags
	}
	return scanner.Err()
}

// AddDictionary merges an extra word list into the lexicon.
func (e *Engine) AddDictionary(path string) (bool, error) {
	if e.closed {
		return false, domain.ErrEngineClosed
	}
	if err := e.load(path); err != nil {
		return false, err
	}
	return true, nil
}

// AddWord adds a word to the runtime lexicon with no flags.
func (e *Engine) AddWord(word string) error {
	if e.closed {
		return domain.ErrEngineClosed
	}
	e.words[word] = ""
	return nil
}

// AddWordWithAffix adds a word inheriting the example word's flags.
func (e *Engine) AddWordWithAffix(word, example string) error {
	if e.closed {
		return domain.ErrEngineClosed
	}
	e.words[word] = e.words[example]
	return nil
}

// RemoveWord deletes a word from the lexicon.
func (e *Engine) RemoveWord(word string) error {
	if e.closed {
		return domain.ErrEngineClosed
	}
	delete(e.words, word)
	return nil
}

// Check reports whether the word is in the lexicon, directly or as a
// licensed plural.
func (e *Engine) Check(word string) (bool, error) {
	if e.closed {
		return false, domain.ErrEngineClosed
	}
	if _, ok := e.words[word]; ok {
		return true, nil
	}
	_, ok := e.pluralBase(word)
	return ok, nil
}

// Suggest returns known words close to the misspelled word: prefix
// matches and words within edit distance two, alphabetically ordered.
func (e *Engine) Suggest(word string) ([]string, error) {
	if e.closed {
		return nil, domain.ErrEngineClosed
	}
	out := []string{}
	for w := range e.words {
		if strings.HasPrefix(w, word) || strings.HasPrefix(word, w) || editDistance(word, w) <= 2 {
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out, nil
}

// Analyze returns one analysis string per reading of the word.
func (e *Engine) Analyze(word string) ([]string, error) {
	if e.closed {
		return nil, domain.ErrEngineClosed
	}
	out := []string{}
	if _, ok := e.words[word]; ok {
		out = append(out, " st:"+word)
	}
	if base, ok := e.pluralBase(word); ok {
		out = append(out, " st:"+base+" fl:S")
	}
	return out, nil
}

// Stem returns the stems of the word.
func (e *Engine) Stem(word string) ([]string, error) {
	analyses, err := e.Analyze(word)
	if err != nil {
		return nil, err
	}
	return stemsFromAnalyses(analyses), nil
}

// ExtendedStem returns stems via the analysis step, matching the
// chained analyze-then-stem native call.
func (e *Engine) ExtendedStem(word string) ([]string, error) {
	return e.Stem(word)
}

// Generate returns forms of word shaped like model: the plural when
// model is a plural, otherwise the bare stems.
func (e *Engine) Generate(word, model string) ([]string, error) {
	if e.closed {
		return nil, domain.ErrEngineClosed
	}
	stems, err := e.Stem(word)
	if err != nil {
		return nil, err
	}
	_, modelPlural := e.pluralBase(model)
	out := []string{}
	for _, stem := range stems {
		if modelPlural && strings.Contains(e.words[stem], "S") {
			out = append(out, stem+"s")
		} else {
			out = append(out, stem)
		}
	}
	return out, nil
}

// ExtendedGenerate returns generated forms via the analysis step.
func (e *Engine) ExtendedGenerate(word, model string) ([]string, error) {
	return e.Generate(word, model)
}

// Close releases the lexicon. Idempotent.
func (e *Engine) Close() error {
	e.closed = true
	e.words = nil
	return nil
}

// pluralBase returns the base word when word is a licensed -s plural.
func (e *Engine) pluralBase(word string) (string, bool) {
	base, found := strings.CutSuffix(word, "s")
	if !found || base == "" {
		return "", false
	}
	flags, ok := e.words[base]
	if !ok || !strings.Contains(flags, "S") {
		return "", false
	}
	return base, true
}

func stemsFromAnalyses(analyses []string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, a := range analyses {
		for _, field := range strings.Fields(a) {
			if stem, ok := strings.CutPrefix(field, "st:"); ok && !seen[stem] {
				seen[stem] = true
				out = append(out, stem)
			}
		}
	}
	return out
}

func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
