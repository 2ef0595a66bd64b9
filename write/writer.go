package write

import (
	"strings"

	"github.com/chem-william/yowl/element"
	"github.com/chem-william/yowl/feature"
	"github.com/chem-william/yowl/graph"
	"github.com/chem-william/yowl/walk"
)

// entry is one item in an atom's outgoing sequence: either a tree edge
// to a freshly visited child, or a ring-closure digit with no child of
// its own.
type entry struct {
	bond   feature.BondKind
	isRing bool
	digit  int
	child  *node
}

// node is one atom of the tree Writer accumulates. It mirrors
// build.node's shape but for the opposite direction: entries record
// what Extend and Join reported, in the order they arrived, instead of
// graph.Bond slices.
type node struct {
	kind      feature.AtomKind
	fromBond  feature.BondKind
	hasParent bool
	entries   []entry
}

// bondOrderSum is the integer bond-order total §4.E and the Debracket
// supplement both key off: the bond that reached this atom (if any)
// plus every bond this atom's own entries carry, each rounded down
// (build.hypervalent uses the same OrderFloor rounding for the same
// sum).
func (n *node) bondOrderSum() int {
	sum := 0
	if n.hasParent {
		sum += n.fromBond.OrderFloor()
	}
	for _, e := range n.entries {
		sum += e.bond.OrderFloor()
	}
	return sum
}

// Writer implements walk.Follower, accumulating Root/Extend/Join/Pop
// events into a forest of nodes and rendering them into SMILES text on
// demand. The zero value is ready to use.
type Writer struct {
	roots []*node
	stack []*node
}

// New returns an empty Writer ready to receive Follower events.
func New() *Writer {
	return &Writer{}
}

// Root starts a new connected component at atom.
func (w *Writer) Root(atom feature.AtomKind) {
	n := &node{kind: atom}
	w.roots = append(w.roots, n)
	w.stack = []*node{n}
}

// Extend adds atom as a new tree-edge neighbor of whichever atom is
// currently on top of the traversal's path.
func (w *Writer) Extend(bond feature.BondKind, atom feature.AtomKind) {
	parent := w.stack[len(w.stack)-1]
	child := &node{kind: atom, fromBond: bond, hasParent: true}
	parent.entries = append(parent.entries, entry{bond: bond, child: child})
	w.stack = append(w.stack, child)
}

// Join records a ring-bond digit occurrence against the atom currently
// on top of the traversal's path.
func (w *Writer) Join(bond feature.BondKind, digit int) {
	parent := w.stack[len(w.stack)-1]
	parent.entries = append(parent.entries, entry{bond: bond, isRing: true, digit: digit})
}

// Pop closes depth pending atoms off the traversal's current path.
func (w *Writer) Pop(depth int) {
	w.stack = w.stack[:len(w.stack)-depth]
}

// String renders every component Writer has seen so far, joined by the
// disconnection '.' §4.D's grammar uses between independent structures.
func (w *Writer) String() string {
	var buf strings.Builder
	ring := make(map[int]bool)
	for i, root := range w.roots {
		if i > 0 {
			buf.WriteByte('.')
		}
		renderNode(&buf, root, ring)
	}
	return buf.String()
}

// renderNode writes n's own text followed by its entries in the order
// they arrived. An entry is wrapped in parentheses unless it is the
// last entry overall: that one keeps the unwrapped "trunk" the DFS
// itself continued along. A ring-closure entry is never wrapped — one
// isn't a branch at all, just a digit attached to the current atom —
// so its position never costs it or its neighbors a pair of
// parentheses it wouldn't otherwise need.
func renderNode(buf *strings.Builder, n *node, ring map[int]bool) {
	buf.WriteString(atomText(n.kind, n.bondOrderSum()))
	aromatic := n.kind.IsAromatic()
	last := len(n.entries) - 1

	for i, e := range n.entries {
		if e.isRing {
			writeRingEntry(buf, e, aromatic, ring)
			continue
		}

		wrap := i != last
		if wrap {
			buf.WriteByte('(')
		}
		buf.WriteString(bondSymbol(e.bond, aromatic, e.child.kind.IsAromatic()))
		renderNode(buf, e.child, ring)
		if wrap {
			buf.WriteByte(')')
		}
	}
}

// writeRingEntry writes a ring-closure digit. The bond symbol between
// two ring-closure endpoints depends on both atoms' aromaticity, but
// only one of the two is known at the first occurrence — so the first
// occurrence writes a bare digit and remembers its own atom's
// aromaticity, and the second occurrence resolves the symbol against
// both and writes it just ahead of the repeated digit.
func writeRingEntry(buf *strings.Builder, e entry, aromatic bool, ring map[int]bool) {
	openAromatic, seen := ring[e.digit]
	if !seen {
		ring[e.digit] = aromatic
		buf.WriteString(feature.Rnum(e.digit).String())
		return
	}
	buf.WriteString(bondSymbol(e.bond, openAromatic, aromatic))
	buf.WriteString(feature.Rnum(e.digit).String())
	delete(ring, e.digit)
}

// atomText renders a single atom's own token, normalizing a bracket
// atom's provisional element symbol and collapsing a bracket atom
// whose fields are entirely redundant given bondOrderSum into its
// shortcut form first (the Debracket supplement to §4.H).
func atomText(k feature.AtomKind, bondOrderSum int) string {
	if k.Tag == feature.AtomBracket {
		k.Symbol = element.Normalize(k.Symbol)
		k = k.Debracket(bondOrderSum)
	}
	return k.String()
}

// bondSymbol implements §4.H's elision and disambiguation rules for a
// bond between two atoms whose aromaticity is already known at both
// ends. Elided never gets a symbol. Single only needs one between two
// aromatic atoms, where a bare adjacency would otherwise read as the
// aromatic bond. Aromatic only needs one between two non-aromatic
// atoms, the mirror case. Every other kind always writes its own
// symbol; there's no ambiguity to elide.
func bondSymbol(kind feature.BondKind, fromAromatic, toAromatic bool) string {
	switch kind {
	case feature.BondElided:
		return ""
	case feature.BondSingle:
		if fromAromatic && toAromatic {
			return "-"
		}
		return ""
	case feature.BondAromatic:
		if !fromAromatic && !toAromatic {
			return ":"
		}
		return ""
	default:
		return kind.String()
	}
}

// Write renders g as SMILES text. It validates g's adjacency invariant
// (§3, invariant 1) before ever calling walk.Walk, so a caller gets
// graph.IncompleteAdjacencyError directly rather than one of walk's
// less specific traversal errors for the same underlying problem.
func Write(g *graph.AdjacencyList) (string, error) {
	if err := g.Validate(); err != nil {
		return "", err
	}
	w := New()
	if err := walk.Walk(g, w); err != nil {
		return "", wrapWalkError(err)
	}
	return w.String(), nil
}
