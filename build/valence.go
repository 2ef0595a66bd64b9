package build

import (
	"github.com/chem-william/yowl/feature"
	"github.com/chem-william/yowl/graph"
)

// hypervalent reports whether atom's incident bonds (plus, for a
// bracket atom, its explicit hydrogen count) exceed the largest
// standard valence its element offers (§4.E's finalization check).
// Atoms with no standard valence table — the wildcard '*' — never
// trigger this check.
func hypervalent(atom graph.Atom) bool {
	targets := atom.Kind.Targets()
	if len(targets) == 0 {
		return false
	}
	maxTarget := targets[len(targets)-1]

	floorSum := 0
	for _, bond := range atom.Bonds {
		floorSum += bond.Kind.OrderFloor()
	}
	if atom.Kind.Tag == feature.AtomBracket && atom.Kind.HasHCount {
		floorSum += atom.Kind.HCount
	}
	return floorSum > maxTarget
}

// ImplicitHydrogens returns the number of implicit hydrogens §4.E
// assigns to atom given its incident bonds, following the OpenSMILES
// rule that an aromatic bond's order (1.5) rounds down when checking
// against the standard valence but rounds up when deciding how many
// hydrogens are still needed. It only applies to the aliphatic and
// aromatic shortcut forms; a bracket atom's hydrogen count is always
// whatever it explicitly states (0 if absent), never computed.
func ImplicitHydrogens(atom graph.Atom) int {
	if atom.Kind.Tag != feature.AtomAliphatic && atom.Kind.Tag != feature.AtomAromatic {
		return 0
	}
	targets := atom.Kind.Targets()
	if len(targets) == 0 {
		return 0
	}

	ceilSum := 0
	for _, bond := range atom.Bonds {
		ceilSum += bond.Kind.OrderCeil()
	}

	target := targets[len(targets)-1]
	for _, t := range targets {
		if t >= ceilSum {
			target = t
			break
		}
	}

	h := target - ceilSum
	if h < 0 {
		h = 0
	}
	return h
}
