package walk

import "fmt"

// UnknownTargetError reports a bond whose target index does not name
// an atom in the graph being walked.
type UnknownTargetError struct {
	Source, Target int
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("walk: bond from %d targets unknown atom %d", e.Source, e.Target)
}

// LoopError reports a bond from an atom to itself, which §3's graph
// model never produces from a successful read.Read but which a
// hand-built graph.AdjacencyList could still contain.
type LoopError struct {
	Atom int
}

func (e *LoopError) Error() string {
	return fmt.Sprintf("walk: atom %d has a bond to itself", e.Atom)
}

// HalfBondError reports a tree edge whose target has no bond back to
// the atom that reached it, violating invariant 1 (§3). graph.Validate
// catches this before a walk starts; this only fires against a graph
// nobody validated first.
type HalfBondError struct {
	Source, Target int
}

func (e *HalfBondError) Error() string {
	return fmt.Sprintf("walk: atom %d has no bond back to %d", e.Target, e.Source)
}

// IncompatibleBondError reports a forward and back bond that describe
// the same edge inconsistently: two different undirected kinds, or a
// directional kind whose back bond isn't its complement.
type IncompatibleBondError struct {
	Source, Target int
}

func (e *IncompatibleBondError) Error() string {
	return fmt.Sprintf("walk: bond between %d and %d is inconsistent in each direction", e.Source, e.Target)
}
