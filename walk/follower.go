package walk

import "github.com/chem-william/yowl/feature"

// Follower receives the events a traversal emits, in the order it
// emits them. It has no branch-open or ring-open method: a branch (or
// a ring-closing digit written at its opening atom) is just an Extend
// or a Join that hasn't been followed by a matching Pop yet. Depth
// bookkeeping — how many pending atoms a Pop closes at once — is the
// traversal's job, not the Follower's.
//
// build.Builder and write.Writer are the two implementations: one
// turns the events back into a graph.AdjacencyList, the other renders
// them as SMILES text.
type Follower interface {
	// Root starts a new connected component at atom. Called once per
	// component walk visits, including the first.
	Root(atom feature.AtomKind)

	// Extend adds atom as a new tree-edge neighbor of whichever atom
	// is currently on top of the traversal's path, connected by bond.
	Extend(bond feature.BondKind, atom feature.AtomKind)

	// Join closes a ring bond of kind bond back to the atom that
	// opened ring digit digit. Called twice per physical ring bond,
	// once at each endpoint, with the same digit both times.
	Join(bond feature.BondKind, digit int)

	// Pop closes depth pending atoms off the traversal's current path,
	// returning it to the ancestor depth levels up. depth is always
	// at least 1; Pop is never called with nothing to close.
	Pop(depth int)
}
