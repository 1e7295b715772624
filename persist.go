package ahocorasick

import (
	"bufio"
	"encoding/binary"
	"io"

	pkgerrors "github.com/pkg/errors"
)

// magicBytes and formatVersion identify the on-disk layout (§6). The
// layout is specified down to field order and an explicit 1-based node
// indexing scheme with 0 reserved as a sentinel, so encoding/binary is
// used directly for every fixed-width field rather than a general-purpose
// codec (see DESIGN.md's persistence entry for why).
var magicBytes = [4]byte{'A', 'H', 'O', 'C'}

const formatVersion uint16 = 1

// ValueEncoder serializes a stored payload to bytes for the OPAQUE-mode
// trailer. ValueDecoder is its inverse, supplied to Load.
type ValueEncoder func(value any) ([]byte, error)
type ValueDecoder func(data []byte) (any, error)

// save writes the node table (and, in OPAQUE mode, a trailer of
// caller-serialized payloads in terminal-node-index order) to w.
func (a *automaton) save(w io.Writer, encodeValue ValueEncoder) error {
	order, indexOf := a.depthFirstOrder()
	bw := bufio.NewWriter(w)

	if err := writeHeader(bw, a); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(order))); err != nil {
		return pkgerrors.Wrap(err, "ahocorasick: writing chunk node count")
	}

	var payloads [][]byte

	for _, idx := range order {
		n := a.at(idx)

		var value int64
		if n.terminal {
			switch a.store {
			case OPAQUE:
				if encodeValue == nil {
					return pkgerrors.New("ahocorasick: OPAQUE store requires an encodeValue function")
				}
				encoded, err := encodeValue(n.payload)
				if err != nil {
					return pkgerrors.Wrapf(err, "ahocorasick: encoding payload at node %d", idx)
				}
				payloads = append(payloads, encoded)
				value = int64(len(payloads))
			case INTEGER, LENGTH:
				value = toInt64(n.payload)
			}
		}

		var failIdx uint32
		if a.phase == AHOCORASICK && idx != rootIndex {
			failIdx = uint32(indexOf[n.fail])
		}

		if err := writeAll(bw,
			field{binary.LittleEndian, value},
			field{binary.LittleEndian, failIdx},
			field{binary.LittleEndian, uint16(n.childCount())},
			field{binary.LittleEndian, boolToByte(n.terminal)},
		); err != nil {
			return err
		}

		syms := make([]int32, 0, len(n.edges))
		for s := range n.edges {
			syms = append(syms, s)
		}
		sortInt32s(syms)
		for _, s := range syms {
			target := indexOf[n.edges[s]]
			if err := writeAll(bw,
				field{binary.LittleEndian, s},
				field{binary.LittleEndian, uint32(target)},
			); err != nil {
				return err
			}
		}
	}

	if a.store == OPAQUE {
		for _, p := range payloads {
			if err := binary.Write(bw, binary.LittleEndian, uint32(len(p))); err != nil {
				return pkgerrors.Wrap(err, "ahocorasick: writing trailer length")
			}
			if _, err := bw.Write(p); err != nil {
				return pkgerrors.Wrap(err, "ahocorasick: writing trailer payload")
			}
		}
	}

	return bw.Flush()
}

func writeHeader(w io.Writer, a *automaton) error {
	if _, err := w.Write(magicBytes[:]); err != nil {
		return pkgerrors.Wrap(err, "ahocorasick: writing magic")
	}
	return writeAll(w,
		field{binary.LittleEndian, formatVersion},
		field{binary.LittleEndian, uint8(a.phase)},
		field{binary.LittleEndian, uint8(a.store)},
		field{binary.LittleEndian, uint8(a.keyType)},
		field{binary.LittleEndian, uint32(a.wordsCount)},
		field{binary.LittleEndian, uint32(a.longestWord)},
	)
}

// depthFirstOrder walks every live node from the root in the same
// ascending-symbol order key enumeration uses, assigning each a 1-based
// persisted index (root gets 1; 0 is the file-format sentinel for "no
// such node").
func (a *automaton) depthFirstOrder() ([]nodeIndex, map[nodeIndex]int) {
	order := make([]nodeIndex, 0, a.liveNodeCount())
	indexOf := make(map[nodeIndex]int, a.liveNodeCount())
	visited := make(map[nodeIndex]bool, a.liveNodeCount())

	stack := []nodeIndex{rootIndex}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[n] {
			continue
		}
		visited[n] = true
		order = append(order, n)
		indexOf[n] = len(order)

		nd := a.at(n)
		syms := make([]int32, 0, len(nd.edges))
		for s := range nd.edges {
			syms = append(syms, s)
		}
		sortInt32s(syms)
		for i := len(syms) - 1; i >= 0; i-- {
			stack = append(stack, nd.edges[syms[i]])
		}
	}
	return order, indexOf
}

// loadAutomaton reconstructs an automaton from r, validating every
// cross-reference (fail index, edge target) against the declared node
// count before trusting it.
func loadAutomaton(r io.Reader, decodeValue ValueDecoder) (*automaton, error) {
	br := bufio.NewReader(r)

	var magic [4]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, errCorrupt("reading magic: %v", err)
	}
	if magic != magicBytes {
		return nil, errCorrupt("bad magic %x", magic)
	}

	var version uint16
	if err := binary.Read(br, binary.LittleEndian, &version); err != nil {
		return nil, errCorrupt("reading format version: %v", err)
	}
	if version != formatVersion {
		return nil, errCorrupt("unsupported format version %d", version)
	}

	var phaseByte, storeByte, keyTypeByte uint8
	var wordsCount, longestWord uint32
	if err := readAll(br,
		&phaseByte, &storeByte, &keyTypeByte, &wordsCount, &longestWord,
	); err != nil {
		return nil, errCorrupt("reading header: %v", err)
	}

	var chunkNodeCount uint32
	if err := binary.Read(br, binary.LittleEndian, &chunkNodeCount); err != nil {
		return nil, errCorrupt("reading chunk node count: %v", err)
	}
	total := int(chunkNodeCount)

	a := newAutomaton(KeyType(keyTypeByte))
	a.store = StoreMode(storeByte)
	a.wordsCount = int(wordsCount)
	a.longestWord = int(longestWord)

	if total == 0 {
		a.phase = EMPTY
		return a, nil
	}

	a.nodes = make([]node, total)
	for i := range a.nodes {
		a.nodes[i] = node{parent: noIndex, fail: noIndex}
	}

	var payloadArenaIdx []int

	for i := 0; i < total; i++ {
		var value int64
		var failIdx uint32
		var edgeCount uint16
		var terminalByte uint8
		if err := readAll(br, &value, &failIdx, &edgeCount, &terminalByte); err != nil {
			return nil, errCorrupt("node %d: reading record: %v", i+1, err)
		}
		if int(failIdx) > total {
			return nil, errCorrupt("node %d: fail index %d out of bounds", i+1, failIdx)
		}

		nd := &a.nodes[i]
		nd.terminal = terminalByte == 1
		if failIdx != 0 {
			nd.fail = nodeIndex(failIdx - 1)
		}

		for e := 0; e < int(edgeCount); e++ {
			var sym int32
			var target uint32
			if err := readAll(br, &sym, &target); err != nil {
				return nil, errCorrupt("node %d: reading edge %d: %v", i+1, e, err)
			}
			if target < 1 || int(target) > total {
				return nil, errCorrupt("node %d: edge target %d out of bounds", i+1, target)
			}
			child := nodeIndex(target - 1)
			if nd.edges == nil {
				nd.edges = make(map[int32]nodeIndex, edgeCount)
			}
			nd.edges[sym] = child
			a.nodes[child].parent = nodeIndex(i)
			a.nodes[child].parentSym = sym
		}

		if nd.terminal {
			switch a.store {
			case OPAQUE:
				payloadArenaIdx = append(payloadArenaIdx, i)
			case INTEGER, LENGTH:
				nd.payload = int(value)
			}
		}
	}

	if a.store == OPAQUE && len(payloadArenaIdx) > 0 {
		if decodeValue == nil {
			return nil, errCorrupt("OPAQUE store requires a decodeValue function")
		}
		for _, arenaIdx := range payloadArenaIdx {
			var length uint32
			if err := binary.Read(br, binary.LittleEndian, &length); err != nil {
				return nil, errCorrupt("node %d: reading trailer length: %v", arenaIdx+1, err)
			}
			buf := make([]byte, length)
			if _, err := io.ReadFull(br, buf); err != nil {
				return nil, errCorrupt("node %d: reading trailer payload: %v", arenaIdx+1, err)
			}
			val, err := decodeValue(buf)
			if err != nil {
				return nil, errCorrupt("node %d: decoding payload: %v", arenaIdx+1, err)
			}
			a.nodes[arenaIdx].payload = val
		}
	}

	a.phase = Phase(phaseByte)
	return a, nil
}

type field struct {
	order binary.ByteOrder
	value any
}

func writeAll(w io.Writer, fields ...field) error {
	for _, f := range fields {
		if err := binary.Write(w, f.order, f.value); err != nil {
			return pkgerrors.Wrap(err, "ahocorasick: writing field")
		}
	}
	return nil
}

func readAll(r io.Reader, dests ...any) error {
	for _, d := range dests {
		if err := binary.Read(r, binary.LittleEndian, d); err != nil {
			return err
		}
	}
	return nil
}

func boolToByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
