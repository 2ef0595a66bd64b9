package feature

import "strconv"

// ParityClass names the stereochemical template a Parity belongs to.
// Most applications only ever see ParityTH (tetrahedral); the rest
// exist because §6 accepts them on read and the core must carry them
// through unchanged (§9, §4.A).
type ParityClass int

const (
	ParityNone ParityClass = iota
	ParityTH             // tetrahedral: @ / @@ / @TH1 / @TH2
	ParityAL             // allenal: @AL1 / @AL2
	ParitySP             // square planar: @SP1..@SP3
	ParityTB             // trigonal bipyramidal: @TB1..@TB20
	ParityOH             // octahedral: @OH1..@OH30
)

// Parity is a stereo descriptor attached to a bracket atom. Index is
// 1-based within its class; an Index of 0 means the class was written
// without a trailing digit (bare "@TH", "@AL", ...), which OpenSMILES
// treats as "unspecified within this class".
type Parity struct {
	Class ParityClass
	Index int
}

// NoParity is the zero value, meaning the atom carries no stereo
// descriptor at all (distinct from an explicit but unspecified one).
var NoParity = Parity{}

// String renders the parity the way it appears in SMILES text. TH1 and
// AL1 render as the bare "@"; TH2 and AL2 render as "@@" — every other
// class always carries its letters and (if present) index.
func (p Parity) String() string {
	switch p.Class {
	case ParityNone:
		return ""
	case ParityTH:
		switch p.Index {
		case 1:
			return "@"
		case 2:
			return "@@"
		default:
			return "@TH"
		}
	case ParityAL:
		switch p.Index {
		case 1:
			return "@"
		case 2:
			return "@@"
		default:
			return "@AL"
		}
	case ParitySP:
		return classString("@SP", p.Index)
	case ParityTB:
		return classString("@TB", p.Index)
	case ParityOH:
		return classString("@OH", p.Index)
	default:
		return ""
	}
}

func classString(prefix string, index int) string {
	if index == 0 {
		return prefix
	}
	return prefix + strconv.Itoa(index)
}

// Invert flips a tetrahedral parity between its two indices (TH1<->TH2),
// the only inversion this implementation performs (§4.E, §9 Open
// Questions). Every other class, and an unspecified-index TH parity, is
// returned unchanged: inverting them would require a per-class
// geometric model this graph-structural core does not have.
func (p Parity) Invert() Parity {
	if p.Class != ParityTH {
		return p
	}
	switch p.Index {
	case 1:
		return Parity{ParityTH, 2}
	case 2:
		return Parity{ParityTH, 1}
	default:
		return p
	}
}
