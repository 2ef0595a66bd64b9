package walk

import (
	"strconv"
	"testing"

	"github.com/chem-william/yowl/feature"
	"github.com/chem-william/yowl/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a minimal Follower that renders events as a flat trace
// string, enough to pin down call order and arguments without pulling
// in the write package.
type recorder struct {
	events []string
}

func (r *recorder) Root(atom feature.AtomKind) {
	r.events = append(r.events, "root("+atom.String()+")")
}

func (r *recorder) Extend(bond feature.BondKind, atom feature.AtomKind) {
	r.events = append(r.events, "extend("+bond.String()+","+atom.String()+")")
}

func (r *recorder) Join(bond feature.BondKind, digit int) {
	r.events = append(r.events, "join("+bond.String()+","+strconv.Itoa(digit)+")")
}

func (r *recorder) Pop(depth int) {
	r.events = append(r.events, "pop("+strconv.Itoa(depth)+")")
}

func carbon() feature.AtomKind {
	return feature.AtomKind{Tag: feature.AtomAliphatic, Symbol: "C"}
}

func oxygen() feature.AtomKind {
	return feature.AtomKind{Tag: feature.AtomAliphatic, Symbol: "O"}
}

func TestWalkSimpleLinear(t *testing.T) {
	g := graph.New([]graph.Atom{
		{Kind: carbon(), Bonds: []graph.Bond{{Kind: feature.BondElided, Target: 1}}},
		{Kind: oxygen(), Bonds: []graph.Bond{{Kind: feature.BondElided, Target: 0}}},
	})
	r := &recorder{}
	require.NoError(t, Walk(g, r))
	assert.Equal(t, []string{"root(C)", "extend(,O)"}, r.events)
}

func TestWalkDisconnectedComponents(t *testing.T) {
	g := graph.New([]graph.Atom{
		{Kind: carbon()},
		{Kind: oxygen()},
	})
	r := &recorder{}
	require.NoError(t, Walk(g, r))
	assert.Equal(t, []string{"root(C)", "root(O)"}, r.events)
}

func TestWalkFourMemberRing(t *testing.T) {
	c := carbon()
	single := feature.BondSingle
	g := graph.New([]graph.Atom{
		{Kind: c, Bonds: []graph.Bond{{Kind: single, Target: 1}, {Kind: single, Target: 3}}},
		{Kind: c, Bonds: []graph.Bond{{Kind: single, Target: 0}, {Kind: single, Target: 2}}},
		{Kind: c, Bonds: []graph.Bond{{Kind: single, Target: 1}, {Kind: single, Target: 3}}},
		{Kind: c, Bonds: []graph.Bond{{Kind: single, Target: 0}, {Kind: single, Target: 2}}},
	})
	r := &recorder{}
	require.NoError(t, Walk(g, r))
	assert.Equal(t, []string{
		"root(C)", "extend(-,C)", "extend(-,C)", "extend(-,C)", "join(-,1)", "pop(3)", "join(-,1)",
	}, r.events)
}

func TestWalkDirectionalBond(t *testing.T) {
	star := feature.AtomKind{Tag: feature.AtomStar}
	g := graph.New([]graph.Atom{
		{Kind: star, Bonds: []graph.Bond{{Kind: feature.BondUp, Target: 1}}},
		{Kind: star, Bonds: []graph.Bond{{Kind: feature.BondDown, Target: 0}}},
	})
	r := &recorder{}
	require.NoError(t, Walk(g, r))
	assert.Equal(t, []string{"root(*)", "extend(/,*)"}, r.events)
}

func TestWalkUnknownTarget(t *testing.T) {
	g := graph.New([]graph.Atom{
		{Kind: carbon(), Bonds: []graph.Bond{{Kind: feature.BondElided, Target: 5}}},
	})
	err := Walk(g, &recorder{})
	require.Error(t, err)
	var target *UnknownTargetError
	require.ErrorAs(t, err, &target)
}

func TestWalkIncompatibleDirectionalBond(t *testing.T) {
	star := feature.AtomKind{Tag: feature.AtomStar}
	g := graph.New([]graph.Atom{
		{Kind: star, Bonds: []graph.Bond{{Kind: feature.BondUp, Target: 1}}},
		{Kind: star, Bonds: []graph.Bond{{Kind: feature.BondUp, Target: 0}}},
	})
	err := Walk(g, &recorder{})
	require.Error(t, err)
	var target *IncompatibleBondError
	require.ErrorAs(t, err, &target)
}

func TestWalkHalfBond(t *testing.T) {
	// A graph with a one-sided bond violates invariant 1 and would be
	// rejected by graph.Validate before reaching Walk; constructed here
	// directly to exercise HalfBondError in isolation.
	bad := graph.New([]graph.Atom{
		{Kind: carbon(), Bonds: []graph.Bond{{Kind: feature.BondElided, Target: 1}}},
		{Kind: oxygen()},
	})
	err := Walk(bad, &recorder{})
	require.Error(t, err)
	var target *HalfBondError
	require.ErrorAs(t, err, &target)
}

func TestRingPoolReusesLowestFreeDigit(t *testing.T) {
	p := newRingPool()
	first := p.hit(0, 3)  // opens digit 1
	p.hit(0, 3)            // closes it, 1 goes back on the free list
	second := p.hit(5, 9)  // a later, unrelated ring opens; should get 1 back
	assert.Equal(t, 1, first)
	assert.Equal(t, first, second)
}

func TestRingPoolKeepsDistinctDigitsForOverlappingRings(t *testing.T) {
	p := newRingPool()
	a := p.hit(0, 5) // opens ring A, digit 1
	b := p.hit(1, 6) // opens ring B while A is still open, digit 2
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
	assert.Equal(t, a, p.hit(0, 5)) // closes A, reusing digit 1
	assert.Equal(t, b, p.hit(1, 6)) // closes B, reusing digit 2
}
