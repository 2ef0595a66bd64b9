package feature

import "fmt"

// BondKind is the closed set of bond symbols §4.D's *bond* production
// recognizes, plus Elided for a bond with no explicit symbol.
type BondKind int

const (
	BondElided BondKind = iota
	BondSingle
	BondDouble
	BondTriple
	BondQuadruple
	BondAromatic
	BondUp
	BondDown
)

// String renders the bond symbol exactly as the grammar accepts it on
// read. Writers apply their own elision rules on top of this (§4.H);
// String itself never elides.
func (k BondKind) String() string {
	switch k {
	case BondElided:
		return ""
	case BondSingle:
		return "-"
	case BondDouble:
		return "="
	case BondTriple:
		return "#"
	case BondQuadruple:
		return "$"
	case BondAromatic:
		return ":"
	case BondUp:
		return "/"
	case BondDown:
		return "\\"
	default:
		return fmt.Sprintf("BondKind(%d)", int(k))
	}
}

// Complement returns the bond kind the reciprocal twin of a bond of
// kind k must carry (invariant 1, §3): Up and Down swap, every other
// kind is its own complement.
func (k BondKind) Complement() BondKind {
	switch k {
	case BondUp:
		return BondDown
	case BondDown:
		return BondUp
	default:
		return k
	}
}

// Order returns the bond's contribution to its endpoints' valence sum.
// Aromatic bonds contribute 1.5, matching §4.E's rounding rule; callers
// that need the rounded-down or rounded-up integer contribution for
// valence or hydrogen-saturation accounting should use OrderFloor and
// OrderCeil instead of truncating this value themselves.
func (k BondKind) Order() float64 {
	switch k {
	case BondElided, BondSingle, BondUp, BondDown:
		return 1
	case BondDouble:
		return 2
	case BondTriple:
		return 3
	case BondQuadruple:
		return 4
	case BondAromatic:
		return 1.5
	default:
		return 0
	}
}

// IsAromatic reports whether the bond kind is the explicit aromatic
// bond symbol ':'. It does not report on the aromaticity of either
// endpoint atom; an Elided bond between two aromatic atoms is aromatic
// in effect but is not BondAromatic here.
func (k BondKind) IsAromatic() bool {
	return k == BondAromatic
}

// OrderFloor rounds Order down to the nearest integer, so a half-order
// aromatic bond contributes 1 toward a valence sum.
func (k BondKind) OrderFloor() int {
	return int(k.Order())
}

// OrderCeil rounds Order up to the nearest integer, so a half-order
// aromatic bond contributes 2 toward a valence sum. build.ImplicitHydrogens
// rounds every bond up this way, while build's hypervalence check
// rounds every bond down with OrderFloor.
func (k BondKind) OrderCeil() int {
	o := k.Order()
	whole := int(o)
	if o == float64(whole) {
		return whole
	}
	return whole + 1
}
