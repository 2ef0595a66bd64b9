package feature

import "fmt"

// Rnum is a ring-bond digit, §4.D's *rnum* production: a bare digit 0-9,
// or a '%' followed by exactly two digits for 10-99.
type Rnum int

// String renders the digit the way the grammar accepts it back: bare
// for single digits, "%" plus two zero-padded digits otherwise.
func (r Rnum) String() string {
	if r < 10 {
		return fmt.Sprintf("%d", int(r))
	}
	return fmt.Sprintf("%%%02d", int(r))
}
