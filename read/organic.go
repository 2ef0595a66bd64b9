package read

import "github.com/chem-william/yowl/feature"

// aliphaticTwoLetter lists the organic-subset symbols that need a
// second-letter lookahead before committing, longest match first so a
// bare "A" or "T" (neither of which is a legal organic-subset symbol
// on its own) never gets misread as the start of one.
var aliphaticTwoLetter = []string{"Cl", "Br", "At", "Ts"}

const aliphaticOneLetter = "BCNOPSFI"
const aromaticOneLetter = "bcnops"

// readOrganic consumes one of §4.D's organic-subset shortcut atoms —
// a bare aliphatic symbol {B, C, N, O, P, S, F, Cl, Br, I, At, Ts} or
// aromatic lowercase {b, c, n, o, p, s} — reporting ok=false without
// consuming anything if the next character starts neither.
func readOrganic(s *scanner) (feature.AtomKind, bool) {
	for _, sym := range aliphaticTwoLetter {
		if s.matchStr(sym) {
			return feature.AtomKind{Tag: feature.AtomAliphatic, Symbol: sym}, true
		}
	}

	r, ok := s.peek()
	if !ok {
		return feature.AtomKind{}, false
	}
	for _, c := range aliphaticOneLetter {
		if r == c {
			s.pop()
			return feature.AtomKind{Tag: feature.AtomAliphatic, Symbol: string(c)}, true
		}
	}
	for _, c := range aromaticOneLetter {
		if r == c {
			s.pop()
			return feature.AtomKind{Tag: feature.AtomAromatic, Symbol: string(c)}, true
		}
	}
	return feature.AtomKind{}, false
}

// readStar consumes the bare wildcard atom '*', §4.D's third *atom*
// alternative alongside organic-subset shortcuts and bracket atoms.
func readStar(s *scanner) (feature.AtomKind, bool) {
	if !s.match('*') {
		return feature.AtomKind{}, false
	}
	return feature.AtomKind{Tag: feature.AtomStar}, true
}
