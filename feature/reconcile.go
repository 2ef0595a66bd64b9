package feature

// Reconcile decides what a ring bond's two occurrences resolve to once
// both are known: the opening bond kind (left) and the closing bond
// kind (right) from the text that named the same ring digit twice.
// Elided is compatible with everything and adopts the other side's
// kind; Up only reconciles with Down and vice versa (and with Elided,
// which becomes the complementary direction); two explicit kinds
// reconcile only if they're identical. ok is false when the two
// occurrences are irreconcilable (invariant 2, §3).
func Reconcile(left, right BondKind) (leftOut, rightOut BondKind, ok bool) {
	switch {
	case left == BondUp && right == BondUp, left == BondDown && right == BondDown:
		return 0, 0, false
	case left == BondUp && right == BondDown, left == BondDown && right == BondUp:
		return left, right, true
	case left == BondElided && right == BondElided:
		return BondElided, BondElided, true
	case left == BondElided && right == BondUp, left == BondDown && right == BondElided:
		return BondDown, BondUp, true
	case left == BondElided && right == BondDown, left == BondUp && right == BondElided:
		return BondUp, BondDown, true
	case right == BondElided:
		return left, left, true
	case left == BondElided:
		return right, right, true
	case left == right:
		return left, right, true
	default:
		return 0, 0, false
	}
}
