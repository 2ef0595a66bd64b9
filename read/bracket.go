package read

import "github.com/chem-william/yowl/feature"

// readBracket consumes §4.D's *bracket-atom* production: `[` [isotope]
// symbol [parity] [hcount] [charge] [`:` map] `]`. It reports ok=false
// without consuming anything if the next character isn't `[`; once the
// `[` is consumed, every failure past that point is a hard error — the
// grammar gives no other alternative to fall back to.
func readBracket(s *scanner) (feature.AtomKind, bool, error) {
	if !s.match('[') {
		return feature.AtomKind{}, false, nil
	}

	isotope := readIsotope(s)

	sym, ok := readBracketSymbol(s)
	if !ok {
		return feature.AtomKind{}, true, missingCharacter(s)
	}

	parity, err := readConfiguration(s)
	if err != nil {
		return feature.AtomKind{}, true, err
	}

	hasH, hcount := readHCount(s)
	charge, _ := readCharge(s)

	mapVal, hasMap, err := readMap(s)
	if err != nil {
		return feature.AtomKind{}, true, err
	}

	if !s.match(']') {
		return feature.AtomKind{}, true, missingCharacter(s)
	}

	symbol := sym.symbol
	if sym.star {
		symbol = "*"
	}

	return feature.AtomKind{
		Tag:             feature.AtomBracket,
		Symbol:          symbol,
		BracketAromatic: sym.aromatic,
		Isotope:         isotope,
		Parity:          parity,
		HasHCount:       hasH,
		HCount:          hcount,
		Charge:          charge,
		HasMap:          hasMap,
		MapClass:        mapVal,
	}, true, nil
}

// readIsotope consumes up to three leading ASCII digits as a mass
// number (§3's 1..999 isotope range), reporting 0 (absent) if the
// cursor isn't on a digit at all.
func readIsotope(s *scanner) int {
	value := 0
	for i := 0; i < 3; i++ {
		d, ok := s.takeDigit()
		if !ok {
			break
		}
		value = value*10 + d
	}
	return value
}

// readHCount consumes an optional explicit hydrogen count: 'H' alone
// (meaning 1), or 'H' followed by a single digit 0-9.
func readHCount(s *scanner) (bool, int) {
	if !s.match('H') {
		return false, 0
	}
	d, ok := s.takeDigit()
	if !ok {
		return true, 1
	}
	return true, d
}

// readMap consumes an optional atom-map class: ':' followed by 1-3
// digits (§6's 0..999 range). A ':' with no digit after it is a
// malformed map, not an absent one.
func readMap(s *scanner) (int, bool, error) {
	if !s.match(':') {
		return 0, false, nil
	}
	first, ok := s.takeDigit()
	if !ok {
		return 0, false, &DigitError{Pos: s.pos()}
	}
	value := first
	for i := 0; i < 2; i++ {
		d, ok := s.takeDigit()
		if !ok {
			break
		}
		value = value*10 + d
	}
	return value, true, nil
}
