package build

import (
	"github.com/chem-william/yowl/feature"
	"github.com/chem-william/yowl/graph"
)

// edgeTarget names either a resolved atom index or a still-open ring
// placeholder waiting on its closing digit.
type edgeTarget struct {
	id      int
	pending bool
	digit   int
}

type edge struct {
	kind   feature.BondKind
	target edgeTarget
}

type node struct {
	kind  feature.AtomKind
	edges []edge
}

type openRing struct {
	atom, edgeIndex int
}

// Builder implements walk.Follower, accumulating Root/Extend/Join/Pop
// events into a graph.AdjacencyList. The zero value is not ready to
// use; construct one with New.
type Builder struct {
	cfg   config
	stack []int
	nodes []node
	opens map[int]openRing
	err   error
}

// New returns an empty Builder ready to receive Follower events.
func New(opts ...Option) *Builder {
	cfg := newConfig(opts...)
	b := &Builder{
		cfg:   cfg,
		opens: make(map[int]openRing),
	}
	if cfg.capacityHint > 0 {
		b.nodes = make([]node, 0, cfg.capacityHint)
	}
	return b
}

// Root starts a new connected component at atom.
func (b *Builder) Root(atom feature.AtomKind) {
	b.stack = append(b.stack, len(b.nodes))
	b.nodes = append(b.nodes, node{kind: atom})
}

// Extend adds atom as a tree-edge neighbor of the atom on top of the
// DFS stack, connected by bond, and becomes the new top of stack.
func (b *Builder) Extend(bond feature.BondKind, atom feature.AtomKind) {
	if len(b.stack) == 0 {
		b.recordErr(ErrNoRoot)
		return
	}
	sid := b.stack[len(b.stack)-1]
	tid := len(b.nodes)

	atom = atom.InvertConfiguration()

	b.nodes = append(b.nodes, node{
		kind:  atom,
		edges: []edge{{kind: bond.Complement(), target: edgeTarget{id: sid}}},
	})
	b.nodes[sid].edges = append(b.nodes[sid].edges, edge{kind: bond, target: edgeTarget{id: tid}})
	b.stack = append(b.stack, tid)
}

// Join closes a ring bond named by digit. The first call for a given
// digit opens a placeholder edge on the current atom; the second call
// reconciles the two bond kinds (invariant 2, §3) and wires the
// reciprocal pair.
func (b *Builder) Join(bond feature.BondKind, digit int) {
	if len(b.stack) == 0 {
		b.recordErr(ErrNoRoot)
		return
	}
	sid := b.stack[len(b.stack)-1]

	opener, ok := b.opens[digit]
	if !ok {
		edgeIdx := len(b.nodes[sid].edges)
		b.opens[digit] = openRing{atom: sid, edgeIndex: edgeIdx}
		b.nodes[sid].edges = append(b.nodes[sid].edges, edge{kind: bond, target: edgeTarget{pending: true, digit: digit}})
		return
	}
	delete(b.opens, digit)

	openEdge := &b.nodes[opener.atom].edges[opener.edgeIndex]
	leftKind, rightKind, ok := feature.Reconcile(openEdge.kind, bond)
	if !ok {
		b.recordErr(&RingBondMismatchError{Opener: opener.atom, Closer: sid})
		return
	}
	openEdge.kind = leftKind
	openEdge.target = edgeTarget{id: sid}
	b.nodes[sid].edges = append(b.nodes[sid].edges, edge{kind: rightKind, target: edgeTarget{id: opener.atom}})
}

// Pop closes depth pending atoms off the DFS stack.
func (b *Builder) Pop(depth int) {
	if depth > len(b.stack) {
		depth = len(b.stack)
	}
	b.stack = b.stack[:len(b.stack)-depth]
}

func (b *Builder) recordErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build finalizes the Builder into an immutable graph.AdjacencyList,
// computing each atom's ImplicitH along the way (§4.E). It fails if any
// Follower-event error was recorded, if no atom was added, if any ring
// digit is still open, if an atom has more than one Up or more than one
// Down bond, or — unless WithoutValenceCheck was given — if any atom is
// hypervalent. It does not check for an unclosed branch: the DFS stack
// of a plain chain is never popped either, so read.Read reports an
// unclosed '(' itself (read.UnclosedBranchError).
func (b *Builder) Build() (*graph.AdjacencyList, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.nodes) == 0 {
		return nil, ErrEmptyBuilder
	}
	if len(b.opens) > 0 {
		lowest := -1
		for digit := range b.opens {
			if lowest == -1 || digit < lowest {
				lowest = digit
			}
		}
		return nil, &UnclosedRingError{Digit: lowest}
	}

	atoms := make([]graph.Atom, len(b.nodes))
	for idx, n := range b.nodes {
		if err := checkStereo(idx, n); err != nil {
			return nil, err
		}
		bonds := make([]graph.Bond, len(n.edges))
		for i, e := range n.edges {
			if e.target.pending {
				return nil, &UnclosedRingError{Digit: e.target.digit}
			}
			bonds[i] = graph.Bond{Kind: e.kind, Target: e.target.id}
		}
		atoms[idx] = graph.Atom{Kind: n.kind, Bonds: bonds}
		atoms[idx].ImplicitH = ImplicitHydrogens(atoms[idx])
	}

	if !b.cfg.skipValence {
		for idx, atom := range atoms {
			if hypervalent(atom) {
				return nil, &HypervalentError{Atom: idx}
			}
		}
	}

	return graph.New(atoms), nil
}

func checkStereo(atomIdx int, n node) error {
	up, down := 0, 0
	for _, e := range n.edges {
		switch e.kind {
		case feature.BondUp:
			up++
			if up > 1 {
				return &ConflictingStereoError{Atom: atomIdx, Kind: "Up"}
			}
		case feature.BondDown:
			down++
			if down > 1 {
				return &ConflictingStereoError{Atom: atomIdx, Kind: "Down"}
			}
		}
	}
	return nil
}
