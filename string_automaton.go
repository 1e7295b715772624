package ahocorasick

import "io"

// StringAutomaton is an Aho-Corasick automaton over Unicode code point
// keys. It is a thin conversion layer over the unexported engine: every
// method turns a string into a []int32 of runes (or back) and delegates.
type StringAutomaton struct {
	a *automaton
}

// NewString constructs an empty StringAutomaton.
func NewString(opts ...Option) *StringAutomaton {
	return &StringAutomaton{a: newAutomaton(STRING, opts...)}
}

func toRunes(s string) []int32 {
	out := make([]int32, 0, len(s))
	for _, r := range s {
		out = append(out, r)
	}
	return out
}

func fromRunes(s []int32) string {
	r := make([]rune, len(s))
	for i, c := range s {
		r[i] = rune(c)
	}
	return string(r)
}

// Add inserts key with an explicit value, reporting whether a new
// terminal was activated.
func (s *StringAutomaton) Add(key string, value any) (bool, error) {
	return s.a.addKey(toRunes(key), value, true)
}

// AddAuto inserts key letting the store mode (INTEGER/LENGTH) compute the
// value automatically; only meaningful for those modes.
func (s *StringAutomaton) AddAuto(key string) (bool, error) {
	return s.a.addKey(toRunes(key), nil, false)
}

// Remove deletes key, reporting whether it was present.
func (s *StringAutomaton) Remove(key string) (bool, error) {
	return s.a.removeKey(toRunes(key))
}

// Pop deletes key and returns its payload.
func (s *StringAutomaton) Pop(key string) (any, error) {
	return s.a.popKey(toRunes(key))
}

// Get returns key's payload.
func (s *StringAutomaton) Get(key string) (any, error) {
	return s.a.getKey(toRunes(key), nil, false)
}

// GetOr returns key's payload, or def if key is absent.
func (s *StringAutomaton) GetOr(key string, def any) (any, error) {
	return s.a.getKey(toRunes(key), def, true)
}

// ContainsExact reports whether key is a stored terminal.
func (s *StringAutomaton) ContainsExact(key string) bool {
	return s.a.containsExact(toRunes(key))
}

// ContainsPrefix reports whether key is a path in the trie (terminal or
// not).
func (s *StringAutomaton) ContainsPrefix(key string) bool {
	return s.a.containsPrefix(toRunes(key))
}

// LongestPrefixLen returns the length, in code points, of the longest
// prefix of key present as a trie path.
func (s *StringAutomaton) LongestPrefixLen(key string) int {
	return s.a.longestPrefixLen(toRunes(key))
}

// Clear removes every key and resets the automaton to EMPTY.
func (s *StringAutomaton) Clear() { s.a.clear() }

// Finalize computes the failure function, transitioning to AHOCORASICK.
func (s *StringAutomaton) Finalize() { s.a.finalize() }

// Phase returns the current lifecycle phase.
func (s *StringAutomaton) Phase() Phase { return s.a.Phase() }

// Stats returns a size snapshot.
func (s *StringAutomaton) Stats() Stats { return s.a.Stats() }

// DumpDOT writes a Graphviz DOT description of the automaton to w.
func (s *StringAutomaton) DumpDOT(w io.Writer) error { return s.a.DumpDOT(w) }

// StringMatch is one matched occurrence in code-point coordinates.
type StringMatch struct {
	End     int
	Payload any
}

// StringSearchIterator drives a standard Aho-Corasick search over a
// string input.
type StringSearchIterator struct{ it *SearchIterator }

// NewSearcher creates a standard search iterator over the window
// [start, end) of runes(text), with optional whitespace-skipping.
func (s *StringAutomaton) NewSearcher(text string, start, end int, ignoreWhitespace bool) (*StringSearchIterator, error) {
	it, err := newSearchIterator(s.a, "Search", toRunes(text), start, end, ignoreWhitespace)
	if err != nil {
		return nil, err
	}
	return &StringSearchIterator{it: it}, nil
}

// Next returns the next match.
func (si *StringSearchIterator) Next() (StringMatch, bool, error) {
	m, ok, err := si.it.Next()
	return StringMatch{End: m.End, Payload: m.Payload}, ok, err
}

// Reset swaps in a new input.
func (si *StringSearchIterator) Reset(text string, hard bool) error {
	return si.it.Reset(toRunes(text), hard)
}

// StringLongestMatchIterator drives the longest-match search variant.
type StringLongestMatchIterator struct{ it *LongestMatchIterator }

// NewLongestMatchSearcher creates a longest-match iterator over the
// window [start, end) of runes(text).
func (s *StringAutomaton) NewLongestMatchSearcher(text string, start, end int) (*StringLongestMatchIterator, error) {
	it, err := newLongestMatchIterator(s.a, "SearchLongestMatch", toRunes(text), start, end)
	if err != nil {
		return nil, err
	}
	return &StringLongestMatchIterator{it: it}, nil
}

// Next returns the next longest match.
func (si *StringLongestMatchIterator) Next() (StringMatch, bool, error) {
	m, ok, err := si.it.Next()
	return StringMatch{End: m.End, Payload: m.Payload}, ok, err
}

// KeyIterOptions configures a key-enumeration pass (Keys), which yields
// each key with its payload.
// WildcardSym is a string, not a rune, to mirror pyahocorasick's API (the
// wildcard symbol is passed the same way any other key material is); it
// must decode to exactly one code point.
type KeyIterOptions struct {
	Prefix         string
	HasWildcard    bool
	Wildcard       string
	WildcardSym    string
	WildcardPolicy WildcardPolicy
}

// StringKeyIterator enumerates (key, payload) pairs over a StringAutomaton.
type StringKeyIterator struct{ it *keyIterator }

// Keys starts a key-enumeration pass per opts. If opts.HasWildcard is set,
// opts.WildcardSym must be exactly one symbol (spec.md's "the wildcard
// symbol must be exactly one symbol; otherwise fails with InvalidArgument").
func (s *StringAutomaton) Keys(opts KeyIterOptions) (*StringKeyIterator, error) {
	var wildcardSym int32
	if opts.HasWildcard {
		syms := toRunes(opts.WildcardSym)
		if len(syms) != 1 {
			return nil, errWildcardSymbolLength(opts.WildcardSym)
		}
		wildcardSym = syms[0]
	}

	it := newKeyIterator(
		s.a,
		toRunes(opts.Prefix),
		opts.HasWildcard,
		toRunes(opts.Wildcard),
		wildcardSym,
		opts.WildcardPolicy,
	)
	return &StringKeyIterator{it: it}, nil
}

// Next returns the next (key, payload) pair.
func (ki *StringKeyIterator) Next() (string, any, bool, error) {
	k, v, ok, err := ki.it.next()
	if !ok || err != nil {
		return "", nil, ok, err
	}
	return fromRunes(k), v, true, nil
}

// Save writes the automaton to w, using encodeValue to serialize OPAQUE
// payloads (ignored for INTEGER/LENGTH store modes).
func (s *StringAutomaton) Save(w io.Writer, encodeValue ValueEncoder) error {
	return s.a.save(w, encodeValue)
}

// LoadStringAutomaton reconstructs a StringAutomaton previously written by
// Save, using decodeValue to deserialize OPAQUE payloads.
func LoadStringAutomaton(r io.Reader, decodeValue ValueDecoder) (*StringAutomaton, error) {
	a, err := loadAutomaton(r, decodeValue)
	if err != nil {
		return nil, err
	}
	return &StringAutomaton{a: a}, nil
}
