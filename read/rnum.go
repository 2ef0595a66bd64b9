package read

// readRnum consumes §4.D's *rnum* production — a bare digit 0-9, or a
// '%' followed by exactly two digits for 10-99 — reporting ok=false
// without consuming anything if neither form is present. A '%' not
// followed by two digits is a malformed ring-closure slot, not an
// absent one, so it reports a DigitError rather than ok=false.
func readRnum(s *scanner) (int, bool, error) {
	if d, ok := s.takeDigit(); ok {
		return d, true, nil
	}
	if !s.match('%') {
		return 0, false, nil
	}
	tens, ok := s.takeDigit()
	if !ok {
		return 0, false, &DigitError{Pos: s.pos()}
	}
	ones, ok := s.takeDigit()
	if !ok {
		return 0, false, &DigitError{Pos: s.pos()}
	}
	return tens*10 + ones, true, nil
}
