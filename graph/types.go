package graph

import "github.com/chem-william/yowl/feature"

// Bond is one outgoing edge from an Atom, naming its neighbor by index
// within the owning AdjacencyList rather than by pointer (§9: arena
// indices, not pointers).
type Bond struct {
	Kind   feature.BondKind
	Target int
}

// Atom is one node of the adjacency list: a tagged Kind (§4.A) plus its
// outgoing bonds in the textual order they appeared in the source
// SMILES, which the walk package must preserve for stereo parity to
// remain meaningful (§9 Parity preservation). ImplicitH is the count
// build.Build computes at finalization from Bonds and Kind's standard
// valence table (§4.E); it is always 0 for a bracket atom, which
// states its own hydrogen count explicitly instead.
type Atom struct {
	Kind      feature.AtomKind
	Bonds     []Bond
	ImplicitH int
}

// AdjacencyList is the finalized, immutable molecular graph build.Build
// produces. Index i of Atoms is atom i; every Bond.Target must be a
// valid index into the same slice, and every bond must have a
// reciprocal twin (invariant 1, §3) — build.Builder guarantees both
// before handing out an AdjacencyList, and the IncompleteAdjacencyError
// that write.Write reports (through Validate) exists to catch a caller
// who constructs one by hand and violates that guarantee.
type AdjacencyList struct {
	Atoms []Atom
}

// New wraps atoms as a finalized adjacency list. It performs no
// validation; build.Builder calls this only after establishing every
// invariant in §3, and a caller assembling atoms by hand (e.g. in a
// test) is responsible for the same invariants if it wants Validate,
// and so write.Write, never to report an IncompleteAdjacencyError.
func New(atoms []Atom) *AdjacencyList {
	return &AdjacencyList{Atoms: atoms}
}

// Len returns the number of atoms.
func (a *AdjacencyList) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Atoms)
}

// Atom returns atom i and true, or a zero Atom and false if i is out
// of range.
func (a *AdjacencyList) Atom(i int) (Atom, bool) {
	if a == nil || i < 0 || i >= len(a.Atoms) {
		return Atom{}, false
	}
	return a.Atoms[i], true
}

// Validate checks invariant 1 (§3): every bond's target is in range and
// has a reciprocal twin of the complementary kind. write.Write runs it
// before walking and returns its IncompleteAdjacencyError (§7);
// walk.Walk does not call it.
func (a *AdjacencyList) Validate() error {
	if a == nil {
		return nil
	}
	for u, atom := range a.Atoms {
		for _, bond := range atom.Bonds {
			if bond.Target < 0 || bond.Target >= len(a.Atoms) {
				return &IncompleteAdjacencyError{Atom: u, Target: bond.Target}
			}
			if !hasReciprocal(a.Atoms[bond.Target], u, bond.Kind.Complement()) {
				return &IncompleteAdjacencyError{Atom: u, Target: bond.Target}
			}
		}
	}
	return nil
}

func hasReciprocal(target Atom, from int, wantKind feature.BondKind) bool {
	for _, b := range target.Bonds {
		if b.Target == from && b.Kind == wantKind {
			return true
		}
	}
	return false
}
