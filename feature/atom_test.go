package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomKindTargets(t *testing.T) {
	carbon := AtomKind{Tag: AtomAliphatic, Symbol: "C"}
	assert.Equal(t, []int{4}, carbon.Targets())

	aromaticN := AtomKind{Tag: AtomAromatic, Symbol: "n"}
	assert.Equal(t, []int{3, 5}, aromaticN.Targets())

	star := AtomKind{Tag: AtomStar}
	assert.Empty(t, star.Targets())

	chargedBoron := AtomKind{Tag: AtomBracket, Symbol: "B", Charge: -1}
	assert.Equal(t, []int{4}, chargedBoron.Targets())
}

func TestAtomKindDebracketToAliphatic(t *testing.T) {
	// [CH4] with no other incident bonds: bondOrderSum=0, hcount=4 -> valence 4 -> debrackets to C.
	bracketMethane := AtomKind{Tag: AtomBracket, Symbol: "C", HasHCount: true, HCount: 4}
	got := bracketMethane.Debracket(0)
	require.Equal(t, AtomAliphatic, got.Tag)
	assert.Equal(t, "C", got.Symbol)
}

func TestAtomKindDebracketKeepsDistinguishingFields(t *testing.T) {
	isotopic := AtomKind{Tag: AtomBracket, Symbol: "Cl", Isotope: 37}
	got := isotopic.Debracket(0)
	assert.Equal(t, AtomBracket, got.Tag)
}

func TestAtomKindInvertConfiguration(t *testing.T) {
	noHydrogen := AtomKind{Tag: AtomBracket, Symbol: "C", Parity: Parity{ParityTH, 1}}
	assert.Equal(t, noHydrogen, noHydrogen.InvertConfiguration())

	withHydrogen := AtomKind{Tag: AtomBracket, Symbol: "C", Parity: Parity{ParityTH, 1}, HasHCount: true, HCount: 1}
	inverted := withHydrogen.InvertConfiguration()
	assert.Equal(t, Parity{ParityTH, 2}, inverted.Parity)

	inverted = inverted.InvertConfiguration()
	assert.Equal(t, Parity{ParityTH, 1}, inverted.Parity)
}

func TestAtomKindStringBracket(t *testing.T) {
	cl37 := AtomKind{Tag: AtomBracket, Symbol: "Cl", Isotope: 37}
	assert.Equal(t, "[37Cl]", cl37.String())

	anion := AtomKind{Tag: AtomBracket, Symbol: "N", Charge: -1}
	assert.Equal(t, "[N-]", anion.String())
}
