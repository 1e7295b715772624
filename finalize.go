package ahocorasick

import "container/list"

// Finalize computes the failure function over the current trie,
// transitioning the automaton from TRIE to AHOCORASICK. The algorithm is
// the teacher's own breadth-first construction (container/list queue,
// walking fail pointers from the parent until an edge or root is found),
// generalized from a one-shot dictionary build into a re-invokable step:
// every live node is reachable from the root (invariant I1), so a full
// BFS recomputes every fail link correctly regardless of how many times
// the trie has been mutated since the last finalize.
//
// Finalizing an EMPTY automaton is a no-op. Finalizing an automaton
// already in AHOCORASICK phase with no intervening mutation is a no-op
// too (P5: idempotent finalize).
func (a *automaton) finalize() {
	if a.phase == EMPTY || a.phase == AHOCORASICK {
		return
	}

	root := a.at(rootIndex)
	queue := list.New()
	for _, child := range root.edges {
		a.at(child).fail = rootIndex
		queue.PushBack(child)
	}

	for queue.Len() > 0 {
		frontIdx := queue.Remove(queue.Front()).(nodeIndex)
		n := a.at(frontIdx)
		for sym, child := range n.edges {
			queue.PushBack(child)

			f := n.fail
			for {
				if g, ok := a.at(f).child(sym); ok {
					a.at(child).fail = g
					break
				}
				if f == rootIndex {
					a.at(child).fail = rootIndex
					break
				}
				f = a.at(f).fail
			}
		}
	}

	a.setPhase(AHOCORASICK)
	a.bumpGeneration()
}
