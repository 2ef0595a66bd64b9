package element

// AliphaticSymbols is the closed organic subset of §4.D's *atom* production
// that may appear bare (unbracketed, uppercase) in a SMILES chain.
var AliphaticSymbols = map[string]bool{
	"B": true, "C": true, "N": true, "O": true, "P": true, "S": true,
	"F": true, "Cl": true, "Br": true, "I": true, "At": true, "Ts": true,
}

// AromaticSymbols is the closed set of lowercase aromatic shortcut symbols
// accepted bare in a chain (not every aromatic-eligible bracket symbol
// may appear unbracketed; As and Se, for example, must be bracketed).
var AromaticSymbols = map[string]bool{
	"b": true, "c": true, "n": true, "o": true, "p": true, "s": true,
}

// bracketAromaticElements is the wider set of element symbols eligible to
// carry an aromatic lowercase form inside a bracket atom: b, c, n, o, s,
// p, se, as, si, te.
var bracketAromaticElements = map[string]bool{
	"B": true, "C": true, "N": true, "O": true, "S": true, "P": true,
	"Se": true, "As": true, "Si": true, "Te": true,
}

// provisional maps the IUPAC systematic ("provisional") element names for
// 104-118 that chemistry toolkits still emit on input to their modern
// symbols. Only 112-118, plus Uun (110), are listed; read.Read
// normalizes them as it reads a bracket atom, and write.Writer
// normalizes every bracket symbol again before rendering it.
var provisional = map[string]string{
	"Uub": "Cn", // 112 Copernicium
	"Uut": "Nh", // 113 Nihonium
	"Uuq": "Fl", // 114 Flerovium
	"Uup": "Mc", // 115 Moscovium
	"Uuh": "Lv", // 116 Livermorium
	"Uus": "Ts", // 117 Tennessine
	"Uuo": "Og", // 118 Oganesson
	"Uun": "Ds", // 110 Darmstadtium (historical provisional name, kept for compatibility)
}

// Normalize returns the modern IUPAC symbol for a provisional element
// name, or sym unchanged if it is not a recognized provisional name.
func Normalize(sym string) string {
	if modern, ok := provisional[sym]; ok {
		return modern
	}
	return sym
}

// symbols is every modern element symbol §4.D's bracket-atom grammar
// accepts, elements 1-118; IsElementSymbol also accepts the provisional
// names Normalize maps from, which are kept in provisional instead. It
// exists only to let read.Read recognize "any recognized element" per
// §4.D without mistaking arbitrary letter runs for a symbol; it is not
// a general periodic-table model (no masses, no valence data beyond
// what AliphaticTargets/AromaticTargets/BracketTargets already carry).
var symbols = map[string]bool{
	"H": true, "He": true, "Li": true, "Be": true, "B": true, "C": true,
	"N": true, "O": true, "F": true, "Ne": true, "Na": true, "Mg": true,
	"Al": true, "Si": true, "P": true, "S": true, "Cl": true, "Ar": true,
	"K": true, "Ca": true, "Sc": true, "Ti": true, "V": true, "Cr": true,
	"Mn": true, "Fe": true, "Co": true, "Ni": true, "Cu": true, "Zn": true,
	"Ga": true, "Ge": true, "As": true, "Se": true, "Br": true, "Kr": true,
	"Rb": true, "Sr": true, "Y": true, "Zr": true, "Nb": true, "Mo": true,
	"Tc": true, "Ru": true, "Rh": true, "Pd": true, "Ag": true, "Cd": true,
	"In": true, "Sn": true, "Sb": true, "Te": true, "I": true, "Xe": true,
	"Cs": true, "Ba": true, "La": true, "Ce": true, "Pr": true, "Nd": true,
	"Pm": true, "Sm": true, "Eu": true, "Gd": true, "Tb": true, "Dy": true,
	"Ho": true, "Er": true, "Tm": true, "Yb": true, "Lu": true, "Hf": true,
	"Ta": true, "W": true, "Re": true, "Os": true, "Ir": true, "Pt": true,
	"Au": true, "Hg": true, "Tl": true, "Pb": true, "Bi": true, "Po": true,
	"At": true, "Rn": true, "Fr": true, "Ra": true, "Ac": true, "Th": true,
	"Pa": true, "U": true, "Np": true, "Pu": true, "Am": true, "Cm": true,
	"Bk": true, "Cf": true, "Es": true, "Fm": true, "Md": true, "No": true,
	"Lr": true, "Rf": true, "Db": true, "Sg": true, "Bh": true, "Hs": true,
	"Mt": true, "Ds": true, "Rg": true, "Cn": true, "Nh": true, "Fl": true,
	"Mc": true, "Lv": true, "Ts": true, "Og": true,
}

// IsElementSymbol reports whether sym is a recognized element symbol,
// including the provisional names (Uub..Uuo, Uun) that Normalize maps
// to a modern one.
func IsElementSymbol(sym string) bool {
	if symbols[sym] {
		return true
	}
	_, ok := provisional[sym]
	return ok
}

// IsAromaticEligible reports whether sym may carry a lowercase aromatic
// form inside a bracket atom.
func IsAromaticEligible(sym string) bool {
	return bracketAromaticElements[sym]
}

var (
	boronTarget       = []int{3}
	carbonTarget      = []int{4}
	nitrogenTarget    = []int{3, 5}
	oxygenTarget      = []int{2}
	phosphorusTarget  = []int{3, 5}
	sulfurTarget      = []int{2, 4, 6}
	halogenTarget     = []int{1}
	emptyTarget       = []int{}
)

// AliphaticTargets returns the standard valence targets for a bare
// organic-subset symbol. An unrecognized symbol yields an empty slice,
// meaning no valence check applies to it.
func AliphaticTargets(sym string) []int {
	switch sym {
	case "B":
		return boronTarget
	case "C":
		return carbonTarget
	case "N", "P":
		return nitrogenTarget
	case "O":
		return oxygenTarget
	case "S":
		return sulfurTarget
	case "F", "Cl", "Br", "I", "At", "Ts":
		return halogenTarget
	default:
		return emptyTarget
	}
}

// AromaticTargets returns the standard valence targets for a bare
// aromatic shortcut symbol (lowercase b, c, n, o, p, s).
func AromaticTargets(sym string) []int {
	switch sym {
	case "b":
		return boronTarget
	case "c":
		return carbonTarget
	case "n":
		return nitrogenTarget
	case "o":
		return oxygenTarget
	case "p":
		return nitrogenTarget
	case "s":
		return sulfurTarget
	default:
		return emptyTarget
	}
}

// BracketTargets returns the standard valence targets for a bracket
// atom's element symbol under a given formal charge, following the
// charge-dependent target tables used throughout organic chemistry
// (e.g. a -1 boron behaves like neutral carbon; a +1 carbon behaves
// like neutral boron). Elements outside this table yield an empty
// slice, meaning no valence check applies.
func BracketTargets(sym string, charge int) []int {
	switch sym {
	case "B":
		switch charge {
		case 0:
			return boronTarget
		case -1:
			return carbonTarget
		case -2:
			return nitrogenTarget
		case -3:
			return oxygenTarget
		default:
			return emptyTarget
		}
	case "C":
		switch charge {
		case 0:
			return carbonTarget
		case 1:
			return boronTarget
		case -1:
			return nitrogenTarget
		case -2:
			return oxygenTarget
		default:
			return emptyTarget
		}
	case "N":
		switch charge {
		case 0:
			return nitrogenTarget
		case 1:
			return carbonTarget
		default:
			return emptyTarget
		}
	case "O":
		switch charge {
		case 0:
			return oxygenTarget
		case 1:
			return nitrogenTarget
		default:
			return emptyTarget
		}
	case "P", "As":
		switch charge {
		case 0:
			return phosphorusTarget
		case -1:
			return sulfurTarget
		default:
			return emptyTarget
		}
	case "S", "Se":
		switch charge {
		case 0:
			return sulfurTarget
		case 1:
			return phosphorusTarget
		default:
			return emptyTarget
		}
	default:
		return emptyTarget
	}
}
