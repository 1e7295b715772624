package ahocorasick

// This file implements the trie builder operations of §4.2, parameterized
// over the internal []int32 symbol representation. StringAutomaton and
// SequenceAutomaton convert their public key types to/from []int32 and
// delegate here.

// addKey inserts key with the given value. It reports whether a new
// terminal was activated (true) or an existing terminal's payload was
// replaced (false), matching the teacher's replace-returns-false,
// new-returns-true convention carried over from spec.md §4.2.
func (a *automaton) addKey(key []int32, value any, hasValue bool) (bool, error) {
	if len(key) == 0 {
		return false, errEmptyKey()
	}

	val, err := a.resolveValue(value, hasValue, len(key))
	if err != nil {
		return false, err
	}

	cur := rootIndex
	for _, sym := range key {
		if child, ok := a.at(cur).child(sym); ok {
			cur = child
			continue
		}
		idx := a.allocNode()
		nn := a.at(idx)
		nn.parent = cur
		nn.parentSym = sym
		a.at(cur).setChild(sym, idx)
		cur = idx
	}

	term := a.at(cur)
	if term.terminal {
		term.payload = val
		return false, nil
	}

	term.terminal = true
	term.payload = val
	a.wordsCount++
	if len(key) > a.longestWord {
		a.longestWord = len(key)
	}
	if a.phase == EMPTY {
		a.setPhase(TRIE)
	} else {
		a.dropToTrie()
	}
	a.bumpGeneration()
	return true, nil
}

// removeKey clears the terminal at key, if any, and prunes nodes that
// become both non-terminal and childless as a result. Reports whether a
// key was actually removed.
func (a *automaton) removeKey(key []int32) (bool, error) {
	if len(key) == 0 {
		return false, errEmptyKey()
	}
	idx, ok := a.walk(key)
	if !ok || !a.at(idx).terminal {
		return false, nil
	}
	a.clearTerminal(idx)
	return true, nil
}

// popKey is removeKey but also returns the cleared payload. Fails with
// NotFound if the key is absent or not a terminal.
func (a *automaton) popKey(key []int32) (any, error) {
	if len(key) == 0 {
		return nil, errEmptyKey()
	}
	idx, ok := a.walk(key)
	if !ok || !a.at(idx).terminal {
		return nil, errNotFound(key)
	}
	return a.clearTerminal(idx), nil
}

// clearTerminal deactivates the terminal at idx, prunes dead nodes
// bottom-up, and updates phase/generation bookkeeping.
func (a *automaton) clearTerminal(idx nodeIndex) any {
	n := a.at(idx)
	val := n.payload
	n.terminal = false
	n.payload = nil
	a.wordsCount--
	a.bumpGeneration()

	cur := idx
	for cur != rootIndex {
		nn := a.at(cur)
		if nn.terminal || nn.childCount() > 0 {
			break
		}
		parent := nn.parent
		parentSym := nn.parentSym
		a.at(parent).removeChild(parentSym)
		a.freeNode(cur)
		cur = parent
	}

	if a.wordsCount == 0 {
		a.setPhase(EMPTY)
	} else {
		a.dropToTrie()
	}
	return val
}

// getKey returns the payload at key's terminal, the supplied default if
// hasDefault, or NotFound.
func (a *automaton) getKey(key []int32, def any, hasDefault bool) (any, error) {
	idx, ok := a.walk(key)
	if ok && a.at(idx).terminal {
		return a.at(idx).payload, nil
	}
	if hasDefault {
		return def, nil
	}
	return nil, errNotFound(key)
}

// containsPrefix reports whether the trie has a node reached by key.
func (a *automaton) containsPrefix(key []int32) bool {
	_, ok := a.walk(key)
	return ok
}

// containsExact reports whether key's node exists and is terminal.
func (a *automaton) containsExact(key []int32) bool {
	idx, ok := a.walk(key)
	return ok && a.at(idx).terminal
}

// longestPrefixLen returns the length of the longest prefix of key that is
// a path in the trie, terminal or not.
func (a *automaton) longestPrefixLen(key []int32) int {
	cur := rootIndex
	n := 0
	for _, sym := range key {
		child, ok := a.at(cur).child(sym)
		if !ok {
			break
		}
		cur = child
		n++
	}
	return n
}

// walk follows key from the root and reports the node reached and whether
// the full key was consumed (i.e. is a trie path).
func (a *automaton) walk(key []int32) (nodeIndex, bool) {
	cur := rootIndex
	for _, sym := range key {
		child, ok := a.at(cur).child(sym)
		if !ok {
			return 0, false
		}
		cur = child
	}
	return cur, true
}

// clear releases all nodes except the root and resets the automaton to
// EMPTY.
func (a *automaton) clear() {
	a.nodes = a.nodes[:1]
	a.nodes[0] = node{parent: noIndex, fail: noIndex}
	a.freeList = nil
	a.wordsCount = 0
	a.longestWord = 0
	a.nextInt = 0
	a.setPhase(EMPTY)
	a.bumpGeneration()
}
