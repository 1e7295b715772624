package ahocorasick

// Match is one matched occurrence emitted by a search iterator: the
// 0-based index (in the original input, not the search window) of the
// match's last symbol, and the payload of the key that matched.
type Match struct {
	End     int
	Payload any
}

// isWhitespaceSymbol classifies a symbol as whitespace for the
// ignore_white_space flag. Only ASCII space, tab, newline, and carriage
// return are recognized; non-ASCII code points are intentionally not
// special-cased (see DESIGN.md's Open Question decision).
func isWhitespaceSymbol(sym int32) bool {
	switch sym {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// step performs one goto+fail transition: while the current state has no
// edge for sym and is not root, follow fail links; then take the edge if
// present, else land on root. This is the teacher's match() inner loop,
// lifted out of the standard search iterator; the longest-match iterator
// does not use it and walks goto edges only.
func (a *automaton) step(state nodeIndex, sym int32) nodeIndex {
	s := state
	for {
		if g, ok := a.at(s).child(sym); ok {
			return g
		}
		if s == rootIndex {
			return rootIndex
		}
		s = a.at(s).fail
	}
}

type pendingEmission struct {
	end     int
	payload any
}

// SearchIterator drives the automaton over an input, emitting one Match
// per call to Next until the window is exhausted.
type SearchIterator struct {
	a          *automaton
	generation uint64

	input      []int32
	start, end int
	pos        int
	state      nodeIndex

	ignoreWS bool
	pending  []pendingEmission
}

func newSearchIterator(a *automaton, op string, input []int32, start, end int, ignoreWS bool) (*SearchIterator, error) {
	if a.phase != AHOCORASICK {
		return nil, errWrongPhase(op, a.phase)
	}
	if err := validateWindow(start, end, len(input)); err != nil {
		return nil, err
	}
	return &SearchIterator{
		a:          a,
		generation: a.generation,
		input:      input,
		start:      start,
		end:        end,
		pos:        start,
		state:      rootIndex,
		ignoreWS:   ignoreWS,
	}, nil
}

func validateWindow(start, end, length int) error {
	if start < 0 {
		return errIndexOutOfBounds("window start", start, length)
	}
	if end > length {
		return errIndexOutOfBounds("window end", end, length)
	}
	if start > end {
		return errIndexOutOfBounds("window start", start, end)
	}
	return nil
}

// Next advances the iterator and returns the next match. The second
// return value is false once the window is exhausted. An invalidated
// iterator (the automaton mutated since construction or the last Reset)
// returns ErrInvalidated.
func (it *SearchIterator) Next() (Match, bool, error) {
	if it.generation != it.a.generation {
		return Match{}, false, errInvalidated()
	}
	for {
		if len(it.pending) > 0 {
			e := it.pending[0]
			it.pending = it.pending[1:]
			return Match{End: e.end, Payload: e.payload}, true, nil
		}
		if it.pos >= it.end {
			return Match{}, false, nil
		}

		sym := it.input[it.pos]
		if it.ignoreWS && isWhitespaceSymbol(sym) {
			it.pos++
			continue
		}

		it.state = it.a.step(it.state, sym)
		endIdx := it.pos
		it.pos++
		it.collectEmissions(endIdx)
	}
}

// collectEmissions walks the fail chain from the current state, deepest
// node first, appending one pending emission per terminal encountered
// (§4.5's ordering rule, §8/P8).
func (it *SearchIterator) collectEmissions(endIdx int) {
	s := it.state
	for s != rootIndex {
		n := it.a.at(s)
		if n.terminal {
			it.pending = append(it.pending, pendingEmission{end: endIdx, payload: n.payload})
		}
		s = n.fail
	}
}

// Reset swaps in a new input, preserving the automaton state unless hard
// is true, in which case the state resets to root. This supports
// streaming a logically continuous input delivered in chunks.
func (it *SearchIterator) Reset(input []int32, hard bool) error {
	if err := validateWindow(0, len(input), len(input)); err != nil {
		return err
	}
	it.input = input
	it.start = 0
	it.end = len(input)
	it.pos = 0
	it.pending = nil
	if hard {
		it.state = rootIndex
	}
	it.generation = it.a.generation
	return nil
}

// LongestMatchIterator emits only the longest non-overlapping match
// starting at each scan position (§4.5's longest-match variant).
type LongestMatchIterator struct {
	a          *automaton
	generation uint64

	input      []int32
	start, end int
	pos        int
}

func newLongestMatchIterator(a *automaton, op string, input []int32, start, end int) (*LongestMatchIterator, error) {
	if a.phase != AHOCORASICK {
		return nil, errWrongPhase(op, a.phase)
	}
	if err := validateWindow(start, end, len(input)); err != nil {
		return nil, err
	}
	return &LongestMatchIterator{
		a:     a,
		generation: a.generation,
		input: input,
		start: start,
		end:   end,
		pos:   start,
	}, nil
}

// Next extends a pure-goto walk (no fail fallback) from the current scan
// position, remembering the deepest terminal seen as a candidate. On a
// miss it emits the candidate and resumes scanning right after the
// matched span; with no candidate, the simplest possible fail step is to
// retry from the very next position with the state reset to root, which
// is what a fail-walk from an unmatched single symbol reduces to. This
// restart-per-position strategy is what gives the variant its worst-case
// quadratic time (§4.5) and is required to surface every individual
// match even when a longer, ultimately-dead-end branch was tried first
// (§8/P7's corner case: D={"b","abc"}, T="abb").
func (it *LongestMatchIterator) Next() (Match, bool, error) {
	if it.generation != it.a.generation {
		return Match{}, false, errInvalidated()
	}
	for it.pos < it.end {
		state := rootIndex
		i := it.pos
		candEnd := -1
		var candPayload any

		for i < it.end {
			sym := it.input[i]
			g, ok := it.a.at(state).child(sym)
			if !ok {
				break
			}
			state = g
			i++
			if it.a.at(state).terminal {
				candEnd = i - 1
				candPayload = it.a.at(state).payload
			}
		}

		if candEnd != -1 {
			it.pos = candEnd + 1
			return Match{End: candEnd, Payload: candPayload}, true, nil
		}
		it.pos++
	}
	return Match{}, false, nil
}
