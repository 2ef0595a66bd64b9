package read

import "fmt"

// CharacterError reports an unexpected character at Pos — §7's
// Character(pos) — measured in the original, quote-including input.
type CharacterError struct {
	Pos int
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("read: unexpected character at %d", e.Pos)
}

// EndOfLineError reports that the input ended in the middle of a
// construct that needed another character — §7's EndOfLine(pos).
type EndOfLineError struct {
	Pos int
}

func (e *EndOfLineError) Error() string {
	return fmt.Sprintf("read: unexpected end of input at %d", e.Pos)
}

// DigitError reports that a ring-bond digit or atom-map class was
// expected at Pos but no digit was found — §7's Digit(pos).
type DigitError struct {
	Pos int
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("read: expected a digit at %d", e.Pos)
}

// MismatchError reports that a ring closure's two declared bond kinds
// cannot be reconciled (invariant 2, §3) — §7's Mismatch(pos), raised
// at the cursor of the closing occurrence rather than deferred to
// build.Builder's own position-less RingBondMismatchError.
type MismatchError struct {
	Pos int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("read: ring bond kinds conflict at %d", e.Pos)
}

// UnclosedBranchError reports a '(' with no matching ')' before the
// input ended. §4.E's build-time taxonomy names this UnclosedBranch,
// but the branch stack a build.Builder sees is the shared DFS stack a
// plain unbranched chain also uses without ever popping it — it cannot
// tell "never opened a branch" apart from "opened one and never closed
// it". Read.Read can, because it is the one consuming '(' and ')'
// directly, so it raises this itself rather than letting an unclosed
// branch surface as a generic EndOfLineError.
type UnclosedBranchError struct {
	Pos int
}

func (e *UnclosedBranchError) Error() string {
	return fmt.Sprintf("read: branch opened at or before %d was never closed", e.Pos)
}
