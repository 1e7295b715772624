package ahocorasick

// frame is one entry of the explicit depth-first traversal stack used by
// keyIterator. Generators over a graph don't map directly to Go (no
// coroutines); SPEC_FULL.md §4.4 calls for an explicit stack instead. Each
// frame is one pending child: its node, the edge symbol leading to it, and
// its depth below the start node.
type frame struct {
	node    nodeIndex
	sym     int32
	pathLen int
}

// keyIterator walks the terminal nodes reachable from a start node
// (itself reached by an optional prefix), optionally constrained by a
// wildcard template and match policy. It is the engine behind Keys on
// both StringAutomaton and SequenceAutomaton; each step yields a key
// together with its payload.
//
// Sibling order is not prescribed by spec.md, which only requires it be
// "stable across identical mutation histories" (§4.4). Go map iteration
// order is randomized even without mutation, so this implementation sorts
// each node's outgoing symbols ascending before descending into them —
// concrete, cheap, and trivially stable for any fixed automaton state.
type keyIterator struct {
	a          *automaton
	generation uint64

	prefix []int32
	path   []int32
	stack  []frame

	startNode    nodeIndex
	exhausted    bool
	visitedStart bool

	hasWildcard bool
	wildcard    []int32
	wildcardSym int32
	policy      WildcardPolicy
}

func newKeyIterator(a *automaton, prefix []int32, hasWildcard bool, wildcard []int32, wildcardSym int32, policy WildcardPolicy) *keyIterator {
	it := &keyIterator{
		a:           a,
		generation:  a.generation,
		prefix:      append([]int32(nil), prefix...),
		hasWildcard: hasWildcard,
		wildcard:    wildcard,
		wildcardSym: wildcardSym,
		policy:      policy,
	}
	startNode, ok := a.walk(prefix)
	if !ok {
		it.exhausted = true
		return it
	}
	it.startNode = startNode
	return it
}

func (it *keyIterator) shouldEmit(terminal bool, depth int) bool {
	if !terminal {
		return false
	}
	if !it.hasWildcard {
		return true
	}
	switch it.policy {
	case ExactLength:
		return depth == len(it.wildcard)
	case AtMostPrefix:
		return depth <= len(it.wildcard)
	case AtLeastPrefix:
		return depth >= len(it.wildcard)
	default:
		return false
	}
}

// pushChildrenFiltered pushes n's children as traversal frames, narrowing
// to the wildcard template's symbol at this depth while still inside the
// template, allowing free descent past it only under AtLeastPrefix, and
// stopping expansion past the template under ExactLength/AtMostPrefix.
func (it *keyIterator) pushChildrenFiltered(n nodeIndex, depth int) {
	nd := it.a.at(n)
	if nd.edges == nil {
		return
	}

	if it.hasWildcard && depth < len(it.wildcard) {
		want := it.wildcard[depth]
		if want == it.wildcardSym {
			it.pushAllChildren(nd, depth+1)
			return
		}
		if child, ok := nd.child(want); ok {
			it.stack = append(it.stack, frame{node: child, sym: want, pathLen: depth + 1})
		}
		return
	}
	if it.hasWildcard && depth >= len(it.wildcard) && it.policy != AtLeastPrefix {
		return
	}
	it.pushAllChildren(nd, depth+1)
}

func (it *keyIterator) pushAllChildren(nd *node, childDepth int) {
	syms := make([]int32, 0, len(nd.edges))
	for s := range nd.edges {
		syms = append(syms, s)
	}
	sortInt32s(syms)
	for i := len(syms) - 1; i >= 0; i-- {
		s := syms[i]
		it.stack = append(it.stack, frame{node: nd.edges[s], sym: s, pathLen: childDepth})
	}
}

// next returns the next (key, payload) pair, or ok=false once the
// traversal is exhausted. Returns ErrInvalidated if the automaton has
// mutated structurally since the iterator was created.
func (it *keyIterator) next() ([]int32, any, bool, error) {
	if it.generation != it.a.generation {
		return nil, nil, false, errInvalidated()
	}
	if it.exhausted {
		return nil, nil, false, nil
	}

	if !it.visitedStart {
		it.visitedStart = true
		start := it.a.at(it.startNode)
		it.pushChildrenFiltered(it.startNode, 0)
		if it.shouldEmit(start.terminal, 0) {
			return append([]int32(nil), it.prefix...), start.payload, true, nil
		}
	}

	for len(it.stack) > 0 {
		f := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		it.path = append(it.path[:f.pathLen-1], f.sym)

		n := it.a.at(f.node)
		it.pushChildrenFiltered(f.node, f.pathLen)

		if it.shouldEmit(n.terminal, f.pathLen) {
			full := make([]int32, 0, len(it.prefix)+len(it.path))
			full = append(full, it.prefix...)
			full = append(full, it.path...)
			return full, n.payload, true, nil
		}
	}
	it.exhausted = true
	return nil, nil, false, nil
}
