package ahocorasick

// nodeIndex addresses a node inside an automaton's arena. The root always
// lives at index 0. A negative index denotes "no such node" (used for a
// parent-less root, and for fail links before finalization).
type nodeIndex int32

const (
	rootIndex nodeIndex = 0
	noIndex   nodeIndex = -1
)

// node is a trie/automaton vertex. Edges are stored in a map keyed by
// symbol; the map is left nil until the first child is added, mirroring
// the teacher's lazy child-map allocation so that leaf-heavy dictionaries
// do not pay for an empty map per node.
type node struct {
	edges map[int32]nodeIndex

	parent    nodeIndex
	parentSym int32

	terminal bool
	payload  any

	fail nodeIndex

	// free marks an arena slot that has been released by key removal and
	// is available for reuse by the next allocation (Clear truncates the
	// arena instead).
	free bool
}

func (n *node) reset() {
	n.edges = nil
	n.parent = noIndex
	n.parentSym = 0
	n.terminal = false
	n.payload = nil
	n.fail = noIndex
	n.free = false
}

func (n *node) childCount() int {
	return len(n.edges)
}

func (n *node) child(sym int32) (nodeIndex, bool) {
	if n.edges == nil {
		return 0, false
	}
	idx, ok := n.edges[sym]
	return idx, ok
}

func (n *node) setChild(sym int32, idx nodeIndex) {
	if n.edges == nil {
		n.edges = make(map[int32]nodeIndex, 1)
	}
	n.edges[sym] = idx
}

func (n *node) removeChild(sym int32) {
	delete(n.edges, sym)
	if len(n.edges) == 0 {
		n.edges = nil
	}
}

// allocNode returns the index of a fresh, zeroed node, reusing a freed
// arena slot when one is available.
func (a *automaton) allocNode() nodeIndex {
	if len(a.freeList) > 0 {
		idx := a.freeList[len(a.freeList)-1]
		a.freeList = a.freeList[:len(a.freeList)-1]
		a.nodes[idx].reset()
		return idx
	}
	a.nodes = append(a.nodes, node{parent: noIndex, fail: noIndex})
	return nodeIndex(len(a.nodes) - 1)
}

func (a *automaton) at(idx nodeIndex) *node {
	return &a.nodes[idx]
}

// freeNode releases a node back to the free list. The caller is
// responsible for having already unlinked it from its parent.
func (a *automaton) freeNode(idx nodeIndex) {
	n := &a.nodes[idx]
	n.reset()
	n.free = true
	a.freeList = append(a.freeList, idx)
}

// linksCount walks every live node and counts outgoing edges, used only
// for the Stats snapshot (not hot-path).
func (a *automaton) linksCount() int {
	total := 0
	for i := range a.nodes {
		if a.nodes[i].free {
			continue
		}
		total += len(a.nodes[i].edges)
	}
	return total
}

// liveNodeCount counts non-free arena slots, used only for the Stats
// snapshot.
func (a *automaton) liveNodeCount() int {
	count := 0
	for i := range a.nodes {
		if !a.nodes[i].free {
			count++
		}
	}
	return count
}
