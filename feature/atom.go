package feature

import (
	"strconv"
	"strings"

	"github.com/chem-william/yowl/element"
)

// AtomTag is the closed set of ways an atom may appear in SMILES text.
type AtomTag int

const (
	AtomStar AtomTag = iota
	AtomAliphatic
	AtomAromatic
	AtomBracket
)

// AtomKind is a tagged variant covering every shape §4.D's *atom*
// production accepts. Only the fields relevant to Tag are meaningful;
// the zero value of the rest is always interpreted as "absent", never
// as a legal zero.
type AtomKind struct {
	Tag AtomTag

	// Symbol is the element/aromatic symbol: uppercase for Aliphatic
	// and for a Bracket atom's canonical element form, lowercase for
	// Aromatic, "*" for a bracketed wildcard. Unused for bare AtomStar.
	Symbol string

	// BracketAromatic is true when a Bracket atom's symbol was written
	// in lowercase aromatic form ("[se]", "[as]", "[c]") rather than
	// its uppercase element form. Meaningless outside Tag == AtomBracket.
	BracketAromatic bool

	// Isotope is the bracket atom's mass number, or 0 if absent.
	Isotope int

	// Parity is the bracket atom's stereo descriptor, or NoParity.
	Parity Parity

	// HasHCount/HCount record an explicit hydrogen count (0..9).
	HasHCount bool
	HCount    int

	// Charge is the formal charge (-15..15); 0 is both the default and
	// a legal explicit value, so there is no HasCharge flag — §6's
	// grammar has no way to write "no charge" differently from "+0".
	Charge int

	// HasMap/MapClass record an atom map class (0..999).
	HasMap   bool
	MapClass int
}

// IsAromatic reports whether this atom kind was written in a form that
// declares aromaticity: the Aromatic tag outright, or a Bracket atom
// whose symbol was written lowercase.
func (k AtomKind) IsAromatic() bool {
	switch k.Tag {
	case AtomAromatic:
		return true
	case AtomBracket:
		return k.BracketAromatic
	default:
		return false
	}
}

// Targets returns the standard valence targets this atom kind offers,
// given its own charge where relevant. An empty or nil result means no
// valence/hypervalence check applies (the star wildcard, or an element
// outside the tables in element.BracketTargets).
func (k AtomKind) Targets() []int {
	switch k.Tag {
	case AtomStar:
		return nil
	case AtomAliphatic:
		return element.AliphaticTargets(k.Symbol)
	case AtomAromatic:
		return element.AromaticTargets(k.Symbol)
	case AtomBracket:
		if k.Symbol == "*" {
			return nil
		}
		return element.BracketTargets(k.Symbol, k.Charge)
	default:
		return nil
	}
}

// Debracket returns an unbracketed form of a Bracket atom when
// bondOrderSum (the sum of bond orders already incident on it, not
// counting any explicit hydrogen) makes the bracket's fields entirely
// redundant: no isotope, no parity, no charge, no map class, and a
// valence that lands exactly on one of the shortcut symbol's standard
// targets. Every other tag, and any Bracket atom carrying a
// distinguishing field, is returned unchanged.
func (k AtomKind) Debracket(bondOrderSum int) AtomKind {
	if k.Tag != AtomBracket {
		return k
	}
	if k.Isotope != 0 || k.Parity != NoParity || k.Charge != 0 || k.HasMap {
		return k
	}

	hcount := 0
	if k.HasHCount {
		hcount = k.HCount
	}
	valence := bondOrderSum + hcount

	if k.Symbol == "*" {
		if hcount != 0 {
			return k
		}
		return AtomKind{Tag: AtomStar}
	}

	if k.BracketAromatic {
		sym := strings.ToLower(k.Symbol)
		if !element.AromaticSymbols[sym] {
			return k
		}
		allowance := 0
		if hcount != 0 {
			allowance = 1
		}
		for _, target := range element.AromaticTargets(sym) {
			if valence == target-allowance {
				return AtomKind{Tag: AtomAromatic, Symbol: sym}
			}
		}
		return k
	}

	if !element.AliphaticSymbols[k.Symbol] {
		return k
	}
	for _, target := range element.AliphaticTargets(k.Symbol) {
		if target == valence {
			return AtomKind{Tag: AtomAliphatic, Symbol: k.Symbol}
		}
	}
	return k
}

// InvertConfiguration flips a Bracket atom's tetrahedral parity
// (TH1<->TH2) when it carries a nonzero explicit hydrogen count — the
// situation described in §4.E, where inserting the implicit "from"
// neighbor changes the effective neighbor order enough to require the
// flip. Every other atom kind, and a Bracket atom with no explicit
// hydrogen, is returned unchanged.
func (k AtomKind) InvertConfiguration() AtomKind {
	if k.Tag != AtomBracket || !k.HasHCount || k.HCount == 0 {
		return k
	}
	k.Parity = k.Parity.Invert()
	return k
}

// String renders the atom kind exactly as write.Writer would before
// applying any elision rules; it exists mainly for diagnostics and
// tests, not as the canonical writer (§4.H owns bracket-vs-bare and
// single-bond disambiguation decisions the writer package implements).
func (k AtomKind) String() string {
	switch k.Tag {
	case AtomStar:
		return "*"
	case AtomAliphatic:
		return k.Symbol
	case AtomAromatic:
		return k.Symbol
	case AtomBracket:
		var b strings.Builder
		b.WriteByte('[')
		if k.Isotope != 0 {
			b.WriteString(strconv.Itoa(k.Isotope))
		}
		if k.BracketAromatic {
			b.WriteString(strings.ToLower(k.Symbol))
		} else {
			b.WriteString(k.Symbol)
		}
		b.WriteString(k.Parity.String())
		if k.HasHCount {
			if k.HCount == 1 {
				b.WriteByte('H')
			} else if k.HCount > 1 {
				b.WriteByte('H')
				b.WriteString(strconv.Itoa(k.HCount))
			}
		}
		b.WriteString(formatCharge(k.Charge))
		if k.HasMap {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(k.MapClass))
		}
		b.WriteByte(']')
		return b.String()
	default:
		return ""
	}
}

// formatCharge renders a signed charge the way OpenSMILES bracket atoms
// do: a zero charge renders as the empty string, "+"/"-"
// stand alone for unit charges, and larger magnitudes spell out the
// number ("+2", "-3", ...).
func formatCharge(charge int) string {
	switch {
	case charge == 0:
		return ""
	case charge == 1:
		return "+"
	case charge == -1:
		return "-"
	case charge > 0:
		return "+" + strconv.Itoa(charge)
	default:
		return strconv.Itoa(charge)
	}
}
