package read

import "github.com/chem-william/yowl/element"

// bracketSymbol is a bracket atom's element/aromaticity/wildcard body
// before any isotope, parity, hcount, charge, or map is attached.
type bracketSymbol struct {
	symbol   string
	aromatic bool
	star     bool
}

// readBracketSymbol consumes the required *symbol* slot of §4.D's
// *bracket-atom* production: '*', a lowercase aromatic form, or any
// recognized element symbol (including a provisional Uub..Uuo name,
// normalized to its modern equivalent immediately on read). Which
// lowercase forms count as aromatic is delegated to
// element.IsAromaticEligible rather than a second, hand-kept list here
// — se, as, si, and te need two letters, b, c, n, o, p, and s need one,
// and the element table is the one place that distinction is recorded.
func readBracketSymbol(s *scanner) (bracketSymbol, bool) {
	if s.match('*') {
		return bracketSymbol{star: true}, true
	}
	if cand, ok := peekRun(s, 2); ok {
		sym := upperFirst(cand)
		if isLowerRun(cand) && element.IsAromaticEligible(sym) {
			s.popN(2)
			return bracketSymbol{symbol: sym, aromatic: true}, true
		}
	}
	if r, ok := s.peek(); ok && r >= 'a' && r <= 'z' {
		sym := upperFirst(string(r))
		if element.IsAromaticEligible(sym) {
			s.pop()
			return bracketSymbol{symbol: sym, aromatic: true}, true
		}
	}
	if sym, ok := readElementSymbol(s); ok {
		return bracketSymbol{symbol: element.Normalize(sym)}, true
	}
	return bracketSymbol{}, false
}

// isLowerRun reports whether every rune in s is a lowercase ASCII
// letter, so a two-letter aromatic candidate like "se" isn't
// mistakenly matched against input like "Se" (the uppercase,
// non-aromatic selenium symbol).
func isLowerRun(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// readElementSymbol consumes the longest recognized element symbol
// starting at the cursor — trying a three-letter provisional name
// first, then the usual two-letter form, then a bare single uppercase
// letter — so "Cl" is read whole rather than as "C" followed by a
// stray "l", and an unrecognized letter run like "Q" is rejected
// outright rather than silently accepted as a one-letter symbol.
func readElementSymbol(s *scanner) (string, bool) {
	first, ok := s.peek()
	if !ok || first < 'A' || first > 'Z' {
		return "", false
	}
	if cand, ok := peekRun(s, 3); ok && element.IsElementSymbol(cand) {
		s.popN(3)
		return cand, true
	}
	if cand, ok := peekRun(s, 2); ok && element.IsElementSymbol(cand) {
		s.popN(2)
		return cand, true
	}
	if element.IsElementSymbol(string(first)) {
		s.pop()
		return string(first), true
	}
	return "", false
}

// peekRun returns the next n characters as a string without consuming
// them, or ok=false if fewer than n remain.
func peekRun(s *scanner, n int) (string, bool) {
	runes := make([]rune, n)
	for i := 0; i < n; i++ {
		r, ok := s.peekAt(i)
		if !ok {
			return "", false
		}
		runes[i] = r
	}
	return string(runes), true
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
