package build

import (
	"errors"
	"fmt"
)

// ErrEmptyBuilder is returned by Build when no atom was ever added —
// there is no valid empty molecule, so finalizing an unused Builder is
// always an error rather than an empty graph.AdjacencyList.
var ErrEmptyBuilder = errors.New("build: no atoms were added")

// ErrNoRoot is returned when Extend or Join is called before any Root
// call established a current atom to extend from. read.Read never
// drives a Builder this way; this only guards direct Follower use.
var ErrNoRoot = errors.New("build: no root atom to extend from")

// UnclosedRingError reports a ring-closure digit that was opened (§4.D's
// *rnum*, written once) but never closed with a matching second
// occurrence before Build.
type UnclosedRingError struct {
	Digit int
}

func (e *UnclosedRingError) Error() string {
	return fmt.Sprintf("build: ring digit %d was never closed", e.Digit)
}

// HypervalentError reports an atom whose incident bond orders (plus any
// explicit hydrogen count) exceed its element's maximum standard
// valence (§4.E's finalization check, §8's valence-soundness property).
type HypervalentError struct {
	Atom int
}

func (e *HypervalentError) Error() string {
	return fmt.Sprintf("build: atom %d exceeds its standard valence", e.Atom)
}

// RingBondMismatchError reports two ring-bond occurrences of the same
// digit whose kinds cannot be reconciled (invariant 2, §3) — e.g. a
// digit opened with '/' and closed with '/' at the same end, which
// would require two directional bonds pointing the same way. read.Read
// catches this earlier, at the cursor of the closing occurrence
// (read.MismatchError); this is the Builder's own defensive check for
// callers that drive it directly.
type RingBondMismatchError struct {
	Opener, Closer int
}

func (e *RingBondMismatchError) Error() string {
	return fmt.Sprintf("build: ring bond between atoms %d and %d has incompatible kinds", e.Opener, e.Closer)
}

// ConflictingStereoError reports an atom with more than one Up bond or
// more than one Down bond incident on it, which can never be resolved
// into a single consistent stereo descriptor.
type ConflictingStereoError struct {
	Atom int
	Kind string
}

func (e *ConflictingStereoError) Error() string {
	return fmt.Sprintf("build: atom %d has more than one %s bond", e.Atom, e.Kind)
}
