package read

import "github.com/chem-william/yowl/feature"

// readBond consumes one of §4.D's bond symbols if present, returning
// feature.BondElided (and consuming nothing) otherwise — a bond symbol
// is always optional in the grammar; its absence just means "elided".
func readBond(s *scanner) feature.BondKind {
	r, ok := s.peek()
	if !ok {
		return feature.BondElided
	}
	switch r {
	case '-':
		s.pop()
		return feature.BondSingle
	case '=':
		s.pop()
		return feature.BondDouble
	case '#':
		s.pop()
		return feature.BondTriple
	case '$':
		s.pop()
		return feature.BondQuadruple
	case ':':
		s.pop()
		return feature.BondAromatic
	case '/':
		s.pop()
		return feature.BondUp
	case '\\':
		s.pop()
		return feature.BondDown
	default:
		return feature.BondElided
	}
}
