package write

import (
	"testing"

	"github.com/chem-william/yowl/build"
	"github.com/chem-william/yowl/read"
	"github.com/chem-william/yowl/walk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip parses smiles through the real read.Read/build.Builder
// pipeline, then re-serializes the resulting graph through the real
// walk.Walk/write.Writer pipeline, exercising the whole thing end to
// end rather than a hand-built graph.
func roundTrip(t *testing.T, smiles string) string {
	t.Helper()
	b := build.New()
	require.NoError(t, read.Read(smiles, b, nil))
	g, err := b.Build()
	require.NoError(t, err)
	w := New()
	require.NoError(t, walk.Walk(g, w))
	return w.String()
}

func TestWriteReadRoundTripAromaticRingWithBracketBranch(t *testing.T) {
	// The ring digit closing atom 0's ring is read before the chain
	// continues to atom 1, so the walker descends the ring before ever
	// reaching the chlorine branch off atom 1.
	assert.Equal(t, "c(ccccc1[37Cl])1", roundTrip(t, "c1c([37Cl])cccc1"))
}

func TestWriteReadRoundTripAcetamide(t *testing.T) {
	assert.Equal(t, "CC(=O)N", roundTrip(t, "CC(=O)N"))
}

func TestWriteReadRoundTripNormalizesProvisionalSymbol(t *testing.T) {
	assert.Equal(t, "[Ds]", roundTrip(t, "[Uun]"))
}

func TestWriteReadRoundTripStripsQuotesFromBracketSymbol(t *testing.T) {
	assert.Equal(t, "[Lv]", roundTrip(t, "['Lv']"))
}

func TestWriteReadRoundTripLinearChain(t *testing.T) {
	assert.Equal(t, "CCO", roundTrip(t, "CCO"))
}
