package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBondKindComplement(t *testing.T) {
	assert.Equal(t, BondDown, BondUp.Complement())
	assert.Equal(t, BondUp, BondDown.Complement())
	assert.Equal(t, BondDouble, BondDouble.Complement())
	assert.Equal(t, BondElided, BondElided.Complement())
}

func TestBondKindOrder(t *testing.T) {
	cases := []struct {
		kind  BondKind
		order float64
	}{
		{BondElided, 1}, {BondSingle, 1}, {BondDouble, 2}, {BondTriple, 3},
		{BondQuadruple, 4}, {BondAromatic, 1.5}, {BondUp, 1}, {BondDown, 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.order, c.kind.Order())
	}
}

func TestBondKindString(t *testing.T) {
	assert.Equal(t, "", BondElided.String())
	assert.Equal(t, "-", BondSingle.String())
	assert.Equal(t, "=", BondDouble.String())
	assert.Equal(t, "#", BondTriple.String())
	assert.Equal(t, "$", BondQuadruple.String())
	assert.Equal(t, ":", BondAromatic.String())
	assert.Equal(t, "/", BondUp.String())
	assert.Equal(t, "\\", BondDown.String())
}
