package graph

import (
	"testing"

	"github.com/chem-william/yowl/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ethane() *AdjacencyList {
	return New([]Atom{
		{Kind: feature.AtomKind{Tag: feature.AtomAliphatic, Symbol: "C"}, Bonds: []Bond{{Kind: feature.BondElided, Target: 1}}},
		{Kind: feature.AtomKind{Tag: feature.AtomAliphatic, Symbol: "C"}, Bonds: []Bond{{Kind: feature.BondElided, Target: 0}}},
	})
}

func TestAdjacencyListValidateOK(t *testing.T) {
	require.NoError(t, ethane().Validate())
}

func TestAdjacencyListValidateOutOfRange(t *testing.T) {
	a := New([]Atom{
		{Kind: feature.AtomKind{Tag: feature.AtomAliphatic, Symbol: "C"}, Bonds: []Bond{{Kind: feature.BondElided, Target: 5}}},
	})
	err := a.Validate()
	require.Error(t, err)
	var target *IncompleteAdjacencyError
	require.ErrorAs(t, err, &target)
}

func TestAdjacencyListValidateMissingReciprocal(t *testing.T) {
	a := New([]Atom{
		{Kind: feature.AtomKind{Tag: feature.AtomAliphatic, Symbol: "C"}, Bonds: []Bond{{Kind: feature.BondElided, Target: 1}}},
		{Kind: feature.AtomKind{Tag: feature.AtomAliphatic, Symbol: "C"}},
	})
	err := a.Validate()
	require.Error(t, err)
}

func TestAdjacencyListLenAndAtom(t *testing.T) {
	a := ethane()
	assert.Equal(t, 2, a.Len())
	atom, ok := a.Atom(0)
	require.True(t, ok)
	assert.Equal(t, "C", atom.Kind.Symbol)
	_, ok = a.Atom(9)
	assert.False(t, ok)
}
