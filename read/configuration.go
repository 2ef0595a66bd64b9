package read

import "github.com/chem-william/yowl/feature"

// readConfiguration consumes §4.D's optional stereo parity descriptor:
// bare '@'/'@@' (TH1/TH2), or '@' followed by a two-letter class tag
// (TH, AL, SP, TB, OH) and an optional index. A tag with no index is
// "unspecified within this class" (§6) rather than an error; an index
// outside its class's range is a CharacterError at the first digit.
func readConfiguration(s *scanner) (feature.Parity, error) {
	if !s.match('@') {
		return feature.NoParity, nil
	}
	if s.match('@') {
		return feature.Parity{Class: feature.ParityTH, Index: 2}, nil
	}

	switch {
	case s.matchStr("TH"):
		return readParityIndex(s, feature.ParityTH, 2, false)
	case s.matchStr("AL"):
		return readParityIndex(s, feature.ParityAL, 2, false)
	case s.matchStr("SP"):
		return readParityIndex(s, feature.ParitySP, 3, false)
	case s.matchStr("TB"):
		return readParityIndex(s, feature.ParityTB, 20, true)
	case s.matchStr("OH"):
		return readParityIndex(s, feature.ParityOH, 30, true)
	default:
		return feature.Parity{Class: feature.ParityTH, Index: 1}, nil
	}
}

// readParityIndex reads a class's trailing index: a single digit for
// classes whose index never reaches 10 (twoDigit == false), or a
// digit optionally followed by a second one for classes whose index
// runs up to 20 or 30.
func readParityIndex(s *scanner, class feature.ParityClass, max int, twoDigit bool) (feature.Parity, error) {
	start := s.pos()
	first, ok := s.takeDigit()
	if !ok {
		return feature.Parity{Class: class, Index: 0}, nil
	}

	n := first
	if twoDigit {
		if second, ok := s.takeDigit(); ok {
			n = first*10 + second
		}
	}

	if n < 1 || n > max {
		return feature.Parity{}, &CharacterError{Pos: start}
	}
	return feature.Parity{Class: class, Index: n}, nil
}
