package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceRecordsAndRetrieves(t *testing.T) {
	tr := New()
	tr.RecordAtom(Span{0, 1})
	tr.RecordAtom(Span{1, 2})
	tr.RecordBond(0, Span{1, 2})
	tr.RecordRing(1, Span{2, 3})

	span, ok := tr.Atom(1)
	require.True(t, ok)
	assert.Equal(t, Span{1, 2}, span)

	bondSpan, ok := tr.Bond(0, 0)
	require.True(t, ok)
	assert.Equal(t, Span{1, 2}, bondSpan)

	_, ok = tr.Bond(0, 5)
	assert.False(t, ok)

	assert.Equal(t, []RingEvent{{Digit: 1, Span: Span{2, 3}}}, tr.Rings())
}

func TestNilTraceIsSafe(t *testing.T) {
	var tr *Trace
	tr.RecordAtom(Span{0, 1})
	tr.RecordBond(0, Span{0, 1})
	tr.RecordRing(1, Span{0, 1})
	_, ok := tr.Atom(0)
	assert.False(t, ok)
	assert.Nil(t, tr.Rings())
}
