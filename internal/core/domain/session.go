package domain

// MaxAdditionalDictionaries is the engine's limit on extra dictionaries
// loaded into one session beyond the primary dictionary.
const MaxAdditionalDictionaries = 20

// SessionConfig is the serializable configuration of a spell-check session.
// It captures everything needed to reconstruct an equivalent session:
// the two input files, the extra dictionaries in the order they were added,
// and the optional decryption key. It never carries the native handle.
type SessionConfig struct {
	// Affix is the path to the affix (.aff) file.
	Affix string `toml:"affix"`

	// Dictionary is the path to the primary dictionary (.dic) file.
	Dictionary string `toml:"dictionary"`

	// AdditionalDictionaries lists extra dictionary paths in the order
	// they were added. They share the session's affix file.
	AdditionalDictionaries []string `toml:"additional_dictionaries"`

	// Key is the decryption key for dictionaries encrypted with the
	// hzip tool, empty for plain dictionaries.
	Key string `toml:"key,omitempty"`
}

// Clone returns a deep copy of the configuration.
func (c SessionConfig) Clone() SessionConfig {
	out := c
	if c.AdditionalDictionaries != nil {
		out.AdditionalDictionaries = make([]string, len(c.AdditionalDictionaries))
		copy(out.AdditionalDictionaries, c.AdditionalDictionaries)
	}
	return out
}

// PersonalWord is a user-added word persisted in the personal word list
// and replayed into the session's runtime lexicon on open.
type PersonalWord struct {
	// Word is the word itself.
	Word string

	// Example, when set, is a model word whose affixation and compounding
	// rules the added word inherits.
	Example string
}
