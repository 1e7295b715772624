package ahocorasick

import (
	"io"
	"math"
)

// SequenceAutomaton is an Aho-Corasick automaton over sequences of
// non-negative integers, bounded by the engine's 32-bit symbol
// representation. It mirrors StringAutomaton but converts []int keys
// instead of runes.
type SequenceAutomaton struct {
	a *automaton
}

// NewSequence constructs an empty SequenceAutomaton.
func NewSequence(opts ...Option) *SequenceAutomaton {
	return &SequenceAutomaton{a: newAutomaton(SEQUENCE, opts...)}
}

func toSymbols(key []int) ([]int32, error) {
	out := make([]int32, len(key))
	for i, v := range key {
		if v < 0 || v > math.MaxInt32 {
			return nil, errOutOfRange(i, int64(v))
		}
		out[i] = int32(v)
	}
	return out, nil
}

func fromSymbols(s []int32) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[i] = int(v)
	}
	return out
}

// Add inserts key with an explicit value, reporting whether a new
// terminal was activated.
func (s *SequenceAutomaton) Add(key []int, value any) (bool, error) {
	syms, err := toSymbols(key)
	if err != nil {
		return false, err
	}
	return s.a.addKey(syms, value, true)
}

// AddAuto inserts key letting the store mode compute the value
// automatically.
func (s *SequenceAutomaton) AddAuto(key []int) (bool, error) {
	syms, err := toSymbols(key)
	if err != nil {
		return false, err
	}
	return s.a.addKey(syms, nil, false)
}

// Remove deletes key, reporting whether it was present.
func (s *SequenceAutomaton) Remove(key []int) (bool, error) {
	syms, err := toSymbols(key)
	if err != nil {
		return false, err
	}
	return s.a.removeKey(syms)
}

// Pop deletes key and returns its payload.
func (s *SequenceAutomaton) Pop(key []int) (any, error) {
	syms, err := toSymbols(key)
	if err != nil {
		return nil, err
	}
	return s.a.popKey(syms)
}

// Get returns key's payload.
func (s *SequenceAutomaton) Get(key []int) (any, error) {
	syms, err := toSymbols(key)
	if err != nil {
		return nil, err
	}
	return s.a.getKey(syms, nil, false)
}

// GetOr returns key's payload, or def if key is absent.
func (s *SequenceAutomaton) GetOr(key []int, def any) (any, error) {
	syms, err := toSymbols(key)
	if err != nil {
		return nil, err
	}
	return s.a.getKey(syms, def, true)
}

// ContainsExact reports whether key is a stored terminal.
func (s *SequenceAutomaton) ContainsExact(key []int) bool {
	syms, err := toSymbols(key)
	if err != nil {
		return false
	}
	return s.a.containsExact(syms)
}

// ContainsPrefix reports whether key is a path in the trie.
func (s *SequenceAutomaton) ContainsPrefix(key []int) bool {
	syms, err := toSymbols(key)
	if err != nil {
		return false
	}
	return s.a.containsPrefix(syms)
}

// LongestPrefixLen returns the length of the longest prefix of key
// present as a trie path.
func (s *SequenceAutomaton) LongestPrefixLen(key []int) int {
	syms, err := toSymbols(key)
	if err != nil {
		return 0
	}
	return s.a.longestPrefixLen(syms)
}

// Clear removes every key and resets the automaton to EMPTY.
func (s *SequenceAutomaton) Clear() { s.a.clear() }

// Finalize computes the failure function, transitioning to AHOCORASICK.
func (s *SequenceAutomaton) Finalize() { s.a.finalize() }

// Phase returns the current lifecycle phase.
func (s *SequenceAutomaton) Phase() Phase { return s.a.Phase() }

// Stats returns a size snapshot.
func (s *SequenceAutomaton) Stats() Stats { return s.a.Stats() }

// DumpDOT writes a Graphviz DOT description of the automaton to w.
func (s *SequenceAutomaton) DumpDOT(w io.Writer) error { return s.a.DumpDOT(w) }

// SequenceSearchIterator drives a standard Aho-Corasick search over an
// integer-sequence input.
type SequenceSearchIterator struct{ it *SearchIterator }

// NewSearcher creates a standard search iterator over the window
// [start, end) of text. Unlike StringAutomaton, there is no
// ignore-whitespace option: spec.md scopes ignore_white_space to string
// keys only, and an integer sequence has no ASCII whitespace codes to
// skip.
func (s *SequenceAutomaton) NewSearcher(text []int, start, end int) (*SequenceSearchIterator, error) {
	syms, err := toSymbols(text)
	if err != nil {
		return nil, err
	}
	it, err := newSearchIterator(s.a, "Search", syms, start, end, false)
	if err != nil {
		return nil, err
	}
	return &SequenceSearchIterator{it: it}, nil
}

// Next returns the next match.
func (si *SequenceSearchIterator) Next() (Match, bool, error) {
	return si.it.Next()
}

// Reset swaps in a new input.
func (si *SequenceSearchIterator) Reset(text []int, hard bool) error {
	syms, err := toSymbols(text)
	if err != nil {
		return err
	}
	return si.it.Reset(syms, hard)
}

// SequenceLongestMatchIterator drives the longest-match search variant.
type SequenceLongestMatchIterator struct{ it *LongestMatchIterator }

// NewLongestMatchSearcher creates a longest-match iterator over the
// window [start, end) of text.
func (s *SequenceAutomaton) NewLongestMatchSearcher(text []int, start, end int) (*SequenceLongestMatchIterator, error) {
	syms, err := toSymbols(text)
	if err != nil {
		return nil, err
	}
	it, err := newLongestMatchIterator(s.a, "SearchLongestMatch", syms, start, end)
	if err != nil {
		return nil, err
	}
	return &SequenceLongestMatchIterator{it: it}, nil
}

// Next returns the next longest match.
func (si *SequenceLongestMatchIterator) Next() (Match, bool, error) {
	return si.it.Next()
}

// SequenceKeyIterOptions configures a key-enumeration pass over a
// SequenceAutomaton.
type SequenceKeyIterOptions struct {
	Prefix         []int
	HasWildcard    bool
	Wildcard       []int
	WildcardSym    int
	WildcardPolicy WildcardPolicy
}

// SequenceKeyIterator enumerates (key, payload) pairs over a
// SequenceAutomaton.
type SequenceKeyIterator struct{ it *keyIterator }

// Keys starts a key-enumeration pass per opts.
func (s *SequenceAutomaton) Keys(opts SequenceKeyIterOptions) (*SequenceKeyIterator, error) {
	prefix, err := toSymbols(opts.Prefix)
	if err != nil {
		return nil, err
	}
	wildcard, err := toSymbols(opts.Wildcard)
	if err != nil {
		return nil, err
	}
	it := newKeyIterator(s.a, prefix, opts.HasWildcard, wildcard, int32(opts.WildcardSym), opts.WildcardPolicy)
	return &SequenceKeyIterator{it: it}, nil
}

// Next returns the next (key, payload) pair.
func (ki *SequenceKeyIterator) Next() ([]int, any, bool, error) {
	k, v, ok, err := ki.it.next()
	if !ok || err != nil {
		return nil, nil, ok, err
	}
	return fromSymbols(k), v, true, nil
}

// Save writes the automaton to w, using encodeValue to serialize OPAQUE
// payloads.
func (s *SequenceAutomaton) Save(w io.Writer, encodeValue ValueEncoder) error {
	return s.a.save(w, encodeValue)
}

// LoadSequenceAutomaton reconstructs a SequenceAutomaton previously
// written by Save.
func LoadSequenceAutomaton(r io.Reader, decodeValue ValueDecoder) (*SequenceAutomaton, error) {
	a, err := loadAutomaton(r, decodeValue)
	if err != nil {
		return nil, err
	}
	return &SequenceAutomaton{a: a}, nil
}
