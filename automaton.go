package ahocorasick

// automaton is the unexported engine shared by StringAutomaton and
// SequenceAutomaton. Every symbol, regardless of key kind, is represented
// as an int32 internally (see SPEC_FULL.md's symbol-parameterization
// note); the keyType field is purely a discriminator, recorded in the
// persistence header.
type automaton struct {
	nodes    []node
	freeList []nodeIndex

	store   StoreMode
	keyType KeyType

	phase      Phase
	generation uint64

	wordsCount  int
	longestWord int

	// nextInt is the running counter used by INTEGER store mode when Add
	// is called without an explicit value.
	nextInt int
}

// config holds functional-option state applied before construction. This
// mirrors the constructor idiom used throughout vechain/thor (packer,
// consensus) rather than a flag/env parser, since this is a library with
// no CLI surface.
type config struct {
	store StoreMode
}

// Option configures an automaton at construction time.
type Option func(*config)

// WithStore selects the value-storage mode. Default OPAQUE.
func WithStore(mode StoreMode) Option {
	return func(c *config) { c.store = mode }
}

func newAutomaton(keyType KeyType, opts ...Option) *automaton {
	cfg := config{store: OPAQUE}
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &automaton{
		keyType: keyType,
		store:   cfg.store,
		phase:   EMPTY,
	}
	// Allocate the root at index 0.
	a.nodes = append(a.nodes, node{parent: noIndex, fail: noIndex})
	return a
}

// Phase returns the automaton's current lifecycle phase.
func (a *automaton) Phase() Phase { return a.phase }

// Generation returns the current structural generation counter, exposed
// mainly for tests asserting P6 (iterator invalidation).
func (a *automaton) Generation() uint64 { return a.generation }

// Stats returns a read-only snapshot of automaton size statistics.
func (a *automaton) Stats() Stats {
	const sizeofNode = 64 // approximate, platform-dependent in spirit only
	nodes := a.liveNodeCount()
	return Stats{
		NodesCount:  nodes,
		WordsCount:  a.wordsCount,
		LinksCount:  a.linksCount(),
		LongestWord: a.longestWord,
		SizeofNode:  sizeofNode,
		TotalSize:   nodes * sizeofNode,
	}
}

// bumpGeneration records a structural mutation. Payload-only overwrites
// on already-terminal nodes must never call this (see addKey in builder.go).
func (a *automaton) bumpGeneration() {
	a.generation++
}

func (a *automaton) setPhase(p Phase) {
	a.phase = p
}

// dropToTrie is called by any structural mutation while in AHOCORASICK
// phase: fail links become stale, so the automaton must be re-finalized
// before searching again.
func (a *automaton) dropToTrie() {
	if a.phase == AHOCORASICK {
		a.setPhase(TRIE)
	}
}
