package build

import (
	"testing"

	"github.com/chem-william/yowl/feature"
	"github.com/chem-william/yowl/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func star() feature.AtomKind { return feature.AtomKind{Tag: feature.AtomStar} }

func TestBuildP1(t *testing.T) {
	b := New(WithoutValenceCheck())
	b.Root(star())
	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())
	atom, _ := g.Atom(0)
	assert.Empty(t, atom.Bonds)
}

func TestBuildP2(t *testing.T) {
	b := New(WithoutValenceCheck())
	b.Root(star())
	b.Extend(feature.BondElided, star())
	g, err := b.Build()
	require.NoError(t, err)
	a0, _ := g.Atom(0)
	a1, _ := g.Atom(1)
	assert.Equal(t, []graph.Bond{{Kind: feature.BondElided, Target: 1}}, a0.Bonds)
	assert.Equal(t, []graph.Bond{{Kind: feature.BondElided, Target: 0}}, a1.Bonds)
}

func TestBuildP3Branched(t *testing.T) {
	b := New(WithoutValenceCheck())
	b.Root(star())
	b.Extend(feature.BondElided, star())
	b.Pop(1)
	b.Extend(feature.BondSingle, star())
	g, err := b.Build()
	require.NoError(t, err)
	a0, _ := g.Atom(0)
	assert.Equal(t, []graph.Bond{
		{Kind: feature.BondElided, Target: 1},
		{Kind: feature.BondSingle, Target: 2},
	}, a0.Bonds)
}

func TestBuildRingElidedElided(t *testing.T) {
	b := New(WithoutValenceCheck())
	b.Root(star())
	b.Join(feature.BondElided, 1)
	b.Extend(feature.BondElided, star())
	b.Extend(feature.BondElided, star())
	b.Join(feature.BondElided, 1)
	g, err := b.Build()
	require.NoError(t, err)
	a0, _ := g.Atom(0)
	assert.Equal(t, []graph.Bond{
		{Kind: feature.BondElided, Target: 2},
		{Kind: feature.BondElided, Target: 1},
	}, a0.Bonds)
}

func TestBuildRingSingleElidedReconciled(t *testing.T) {
	b := New(WithoutValenceCheck())
	b.Root(star())
	b.Join(feature.BondSingle, 1)
	b.Extend(feature.BondElided, star())
	b.Extend(feature.BondElided, star())
	b.Join(feature.BondElided, 1)
	g, err := b.Build()
	require.NoError(t, err)
	a0, _ := g.Atom(0)
	a2, _ := g.Atom(2)
	assert.Equal(t, feature.BondSingle, a0.Bonds[0].Kind)
	assert.Equal(t, feature.BondSingle, a2.Bonds[1].Kind)
}

func TestBuildRingJoinIncompatible(t *testing.T) {
	b := New(WithoutValenceCheck())
	b.Root(star())
	b.Join(feature.BondUp, 1)
	b.Extend(feature.BondElided, star())
	b.Extend(feature.BondElided, star())
	b.Join(feature.BondUp, 1)
	_, err := b.Build()
	require.Error(t, err)
	var target *RingBondMismatchError
	require.ErrorAs(t, err, &target)
}

func TestBuildRingJoinUnbalanced(t *testing.T) {
	b := New(WithoutValenceCheck())
	b.Root(star())
	b.Join(feature.BondElided, 1)
	b.Extend(feature.BondElided, star())
	b.Extend(feature.BondElided, star())
	b.Join(feature.BondElided, 1)
	b.Join(feature.BondElided, 2)
	_, err := b.Build()
	require.Error(t, err)
	var target *UnclosedRingError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, 2, target.Digit)
}

func TestBuildPlainChainNeedsNoPop(t *testing.T) {
	// A straight chain never calls Pop, so the DFS stack retains every
	// atom's index at Build time; Build must not mistake that for an
	// unclosed branch (the original Builder has no such check either).
	c := feature.AtomKind{Tag: feature.AtomAliphatic, Symbol: "C"}
	b := New()
	b.Root(c)
	b.Extend(feature.BondElided, c)
	b.Extend(feature.BondElided, c)
	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())
}

func TestBuildHypervalentCarbon(t *testing.T) {
	c := feature.AtomKind{Tag: feature.AtomAliphatic, Symbol: "C"}
	b := New()
	b.Root(c)
	b.Extend(feature.BondElided, c)
	b.Pop(1)
	b.Extend(feature.BondElided, c)
	b.Pop(1)
	b.Extend(feature.BondElided, c)
	b.Pop(1)
	b.Extend(feature.BondElided, c)
	b.Pop(1)
	b.Extend(feature.BondElided, c)
	_, err := b.Build()
	require.Error(t, err)
	var target *HypervalentError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, 0, target.Atom)
}

func TestBuildTetrahedralChildHydrogenInvertsParity(t *testing.T) {
	bracket := feature.AtomKind{
		Tag:       feature.AtomBracket,
		Symbol:    "*",
		Parity:    feature.Parity{Class: feature.ParityTH, Index: 1},
		HasHCount: true,
		HCount:    1,
	}
	b := New(WithoutValenceCheck())
	b.Root(star())
	b.Extend(feature.BondElided, bracket)
	b.Extend(feature.BondElided, star())
	b.Pop(1)
	b.Extend(feature.BondElided, star())
	b.Pop(1)
	b.Extend(feature.BondElided, star())
	g, err := b.Build()
	require.NoError(t, err)
	a1, _ := g.Atom(1)
	assert.Equal(t, feature.Parity{Class: feature.ParityTH, Index: 2}, a1.Kind.Parity)
}

func TestBuildComputesImplicitHydrogens(t *testing.T) {
	// Build finalizes ImplicitH from each atom's own Bonds: a carbon
	// bonded to a single neighbor needs 3, one bonded to two neighbors
	// needs 2, and a bracket atom ([CH3] here) always reports 0 since
	// it states its hydrogen count explicitly instead.
	c := feature.AtomKind{Tag: feature.AtomAliphatic, Symbol: "C"}
	bracket := feature.AtomKind{Tag: feature.AtomBracket, Symbol: "C", HasHCount: true, HCount: 3}

	b := New()
	b.Root(c)
	b.Extend(feature.BondElided, c)
	b.Extend(feature.BondElided, bracket)
	g, err := b.Build()
	require.NoError(t, err)

	a0, _ := g.Atom(0)
	a1, _ := g.Atom(1)
	a2, _ := g.Atom(2)
	assert.Equal(t, 3, a0.ImplicitH)
	assert.Equal(t, 2, a1.ImplicitH)
	assert.Equal(t, 0, a2.ImplicitH)
}

func TestBuildEmptyBuilder(t *testing.T) {
	b := New()
	_, err := b.Build()
	assert.ErrorIs(t, err, ErrEmptyBuilder)
}
