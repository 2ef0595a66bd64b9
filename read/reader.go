package read

import (
	"github.com/chem-william/yowl/feature"
	"github.com/chem-william/yowl/trace"
	"github.com/chem-william/yowl/walk"
)

// Read parses smiles against §4.D's grammar, driving follower with the
// resulting Root/Extend/Join/Pop events and, if tr is non-nil,
// recording every produced atom, bond, and ring-closure event's source
// span into it. It returns nil only if the entire input was consumed
// as one valid production; any leftover or malformed input is an
// error carrying the cursor of the first offending character (§4.D's
// error cursor rule).
func Read(smiles string, follower walk.Follower, tr *trace.Trace) error {
	c := &ctx{
		s:         newScanner(smiles),
		f:         follower,
		tr:        tr,
		ringOpens: make(map[int]ringOpen),
	}

	_, gotSomething, err := readSmiles(c, nil)
	if err != nil {
		return err
	}
	atEnd := c.s.done()

	switch {
	case gotSomething && atEnd:
		return nil
	case !gotSomething && atEnd:
		return &EndOfLineError{Pos: c.s.pos()}
	default:
		return &CharacterError{Pos: c.s.pos()}
	}
}

// ctx bundles the state every grammar production needs: the scanner,
// the Follower and optional Trace being driven, and the read-side
// atom-index/ring bookkeeping that exists purely to label trace spans
// and to catch ring-bond kind conflicts at the closing cursor (§7's
// Mismatch(pos)) before build.Builder ever sees them.
type ctx struct {
	s         *scanner
	f         walk.Follower
	tr        *trace.Trace
	atoms     indexStack
	ringOpens map[int]ringOpen
}

type ringOpen struct {
	kind feature.BondKind
	atom int
	pos  int
}

// indexStack mirrors build.Builder's own DFS stack of atom indices,
// kept independently here because Follower has no way to report back
// which index it assigned an atom — Read needs to know that index
// itself to label Trace spans per atom.
type indexStack struct {
	next  int
	stack []int
}

func (t *indexStack) top() int {
	return t.stack[len(t.stack)-1]
}

func (t *indexStack) push() int {
	idx := t.next
	t.next++
	t.stack = append(t.stack, idx)
	return idx
}

func (t *indexStack) pop(depth int) {
	if depth > len(t.stack) {
		depth = len(t.stack)
	}
	t.stack = t.stack[:len(t.stack)-depth]
}

// missingCharacter reports whichever of §7's Character(pos)/EndOfLine(pos)
// fits the scanner's current position — the input ran out of characters,
// or the next one just isn't the one a production required.
func missingCharacter(s *scanner) error {
	if s.done() {
		return &EndOfLineError{Pos: s.pos()}
	}
	return &CharacterError{Pos: s.pos()}
}

// readAtom is §4.D's *atom* production: bracket atom, organic-subset
// shortcut, or the bare wildcard '*'.
func readAtom(s *scanner) (feature.AtomKind, bool, error) {
	if k, ok := readOrganic(s); ok {
		return k, true, nil
	}
	if k, ok := readStar(s); ok {
		return k, true, nil
	}
	k, matched, err := readBracket(s)
	if err != nil {
		return feature.AtomKind{}, true, err
	}
	if matched {
		return k, true, nil
	}
	return feature.AtomKind{}, false, nil
}

// readSmiles is §4.D's *smiles* production: an atom followed by zero
// or more bodies. inputBond is the bond the caller already consumed
// (nil for a fresh root, e.g. the very start of input or the atom
// after a '.' disconnect). It returns the number of atoms produced (to
// let readBranch know how many stack frames to Pop), whether
// an atom was found at all, and any hard error.
func readSmiles(c *ctx, inputBond *feature.BondKind) (int, bool, error) {
	cursor := c.s.pos()
	atomKind, ok, err := readAtom(c.s)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return 0, false, nil
	}

	if inputBond != nil {
		parent := c.atoms.top()
		idx := c.atoms.push()
		bondStart := cursor
		if *inputBond != feature.BondElided {
			bondStart = cursor - 1
		}
		c.f.Extend(*inputBond, atomKind)
		c.tr.RecordAtom(trace.Span{Start: cursor, End: c.s.pos()})
		span := trace.Span{Start: bondStart, End: cursor}
		c.tr.RecordBond(idx, span)
		c.tr.RecordBond(parent, span)
	} else {
		c.atoms.push()
		c.f.Root(atomKind)
		c.tr.RecordAtom(trace.Span{Start: cursor, End: c.s.pos()})
	}

	result := 1
	for {
		length, ok, err := readBody(c)
		if err != nil {
			return 0, false, err
		}
		if !ok {
			break
		}
		result += length
	}
	return result, true, nil
}

// readBody is §4.D's *body* production: a branch, a disconnect-split,
// or a bond/ring union.
func readBody(c *ctx) (int, bool, error) {
	consumed, err := readBranch(c)
	if err != nil {
		return 0, false, err
	}
	if consumed {
		return 0, true, nil
	}

	length, ok, err := readSplit(c)
	if err != nil {
		return 0, false, err
	}
	if ok {
		return length, true, nil
	}

	return readUnion(c)
}

// readBranch is §4.D's *branch* production: "(" ( dot | bond )? smiles
// ")". A missing closing ")" at end-of-input is specifically an
// UnclosedBranchError (§7) rather than the generic EndOfLineError a
// plain missing character would get — this is the one place Read
// actually knows a branch was opened and never closed, which is why
// this check lives here rather than in build.Builder (see
// UnclosedBranchError's doc comment).
func readBranch(c *ctx) (bool, error) {
	if !c.s.match('(') {
		return false, nil
	}

	var length int
	if c.s.match('.') {
		l, ok, err := readSmiles(c, nil)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, missingCharacter(c.s)
		}
		length = l
	} else {
		bond := readBond(c.s)
		l, ok, err := readSmiles(c, &bond)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, missingCharacter(c.s)
		}
		length = l
	}

	if !c.s.match(')') {
		if c.s.done() {
			return false, &UnclosedBranchError{Pos: c.s.pos()}
		}
		return false, &CharacterError{Pos: c.s.pos()}
	}

	c.f.Pop(length)
	c.atoms.pop(length)
	return true, nil
}

// readSplit is §4.D's disconnect alternative: "." smiles, starting a
// fresh root unconnected to anything before it.
func readSplit(c *ctx) (int, bool, error) {
	if !c.s.match('.') {
		return 0, false, nil
	}
	length, ok, err := readSmiles(c, nil)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return 0, false, missingCharacter(c.s)
	}
	return length, true, nil
}

// readUnion is §4.D's final *body* alternative: an optional bond
// followed by either another atom (a plain chain continuation) or a
// ring-closure digit. An elided bond with neither following it simply
// means this production is absent — readBody's caller then has
// nothing left to try and the enclosing chain ends here.
func readUnion(c *ctx) (int, bool, error) {
	bondCursor := c.s.pos()
	bond := readBond(c.s)

	length, ok, err := readSmiles(c, &bond)
	if err != nil {
		return 0, false, err
	}
	if ok {
		return length, true, nil
	}

	cursor := c.s.pos()
	digit, ok, err := readRnum(c.s)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		if bond == feature.BondElided {
			return 0, false, nil
		}
		return 0, false, missingCharacter(c.s)
	}

	if err := c.join(bond, digit, bondCursor, cursor); err != nil {
		return 0, false, err
	}
	return 0, true, nil
}

// join records a ring-bond digit's occurrence: the first records the
// opener and forwards straight to the Follower; the second reconciles
// the two declared kinds itself (invariant 2, §3) so a conflict can be
// reported as a cursor-accurate MismatchError right here, rather than
// only surfacing later as build.Builder's position-less
// RingBondMismatchError.
func (c *ctx) join(bond feature.BondKind, digit int, bondCursor, cursor int) error {
	sid := c.atoms.top()

	opener, seen := c.ringOpens[digit]
	if !seen {
		c.ringOpens[digit] = ringOpen{kind: bond, atom: sid, pos: cursor}
		c.f.Join(bond, digit)
		c.tr.RecordBond(sid, trace.Span{Start: bondCursor, End: cursor})
		c.tr.RecordRing(digit, trace.Span{Start: cursor, End: c.s.pos()})
		return nil
	}

	if _, _, ok := feature.Reconcile(opener.kind, bond); !ok {
		return &MismatchError{Pos: cursor}
	}
	delete(c.ringOpens, digit)
	c.f.Join(bond, digit)
	c.tr.RecordBond(sid, trace.Span{Start: bondCursor, End: cursor})
	c.tr.RecordBond(opener.atom, trace.Span{Start: opener.pos, End: opener.pos + 1})
	c.tr.RecordRing(digit, trace.Span{Start: cursor, End: c.s.pos()})
	return nil
}
