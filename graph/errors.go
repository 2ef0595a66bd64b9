package graph

import "fmt"

// IncompleteAdjacencyError reports a bond whose target index is out of
// range, or which lacks a reciprocal twin of the complementary kind
// (invariant 1, §3). write.Write checks this through Validate before
// traversing (§7's IncompleteAdjacency taxonomy entry); walk.Walk does
// not, and reports its own traversal errors instead.
type IncompleteAdjacencyError struct {
	Atom   int
	Target int
}

func (e *IncompleteAdjacencyError) Error() string {
	return fmt.Sprintf("graph: atom %d has an incomplete bond to %d", e.Atom, e.Target)
}
