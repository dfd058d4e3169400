package search_test

import (
	"testing"

	"github.com/patiencelab/shenzhen/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeStableAcrossEqualPositions(t *testing.T) {
	a := newPosBuilder(7).col(t, 0, "R5").col(t, 1, "G3").cell(t, "B1").build(t)
	b := newPosBuilder(7).col(t, 0, "R5").col(t, 1, "G3").cell(t, "B1").build(t)

	assert.Equal(t, search.Canonicalize(a), search.Canonicalize(b))
}

func TestCanonicalizeCollapsesFreeCellOrder(t *testing.T) {
	a := newPosBuilder(7).col(t, 0, "R5").cell(t, "G1", "B1").build(t)
	b := newPosBuilder(7).col(t, 0, "R5").cell(t, "B1", "G1").build(t)

	assert.Equal(t, search.Canonicalize(a), search.Canonicalize(b))
}

func TestCanonicalizeCollapsesColumnOrder(t *testing.T) {
	a := newPosBuilder(7).col(t, 0, "R5").col(t, 1, "G3").build(t)
	b := newPosBuilder(7).col(t, 0, "G3").col(t, 1, "R5").build(t)

	assert.Equal(t, search.Canonicalize(a), search.Canonicalize(b))
}

func TestCanonicalizeEmptyColumnSortsLast(t *testing.T) {
	// A single occupied column plus seven empty ones must canonicalize the
	// same way regardless of which index holds the occupied column.
	a := newPosBuilder(0).col(t, 0, "R5").build(t)
	b := newPosBuilder(7).col(t, 7, "R5").build(t)

	assert.Equal(t, search.Canonicalize(a), search.Canonicalize(b))
}

func TestCanonicalizeTiedBottomCardOrderIrrelevant(t *testing.T) {
	// Two columns bottomed on the same-suit dragon (only possible from
	// the initial deal, since nothing can ever be stacked on a dragon)
	// but differing in the cards above it: swapping which column sits
	// at the lower index must not change the Fingerprint.
	a := newPosBuilder(7).col(t, 0, "R-", "B5").col(t, 1, "R-", "B4").build(t)
	b := newPosBuilder(7).col(t, 0, "R-", "B4").col(t, 1, "R-", "B5").build(t)

	assert.Equal(t, search.Canonicalize(a), search.Canonicalize(b))
}

func TestCanonicalizeDoesNotReorderColumnInterior(t *testing.T) {
	a := newPosBuilder(7).col(t, 0, "R5", "G4").build(t)
	b := newPosBuilder(7).col(t, 0, "G4", "R5").build(t)

	assert.NotEqual(t, search.Canonicalize(a), search.Canonicalize(b))
}

func TestCanonicalizeDistinguishesDifferentPositions(t *testing.T) {
	a := newPosBuilder(7).col(t, 0, "R5").build(t)
	b := newPosBuilder(7).col(t, 0, "R6").build(t)

	assert.NotEqual(t, search.Canonicalize(a), search.Canonicalize(b))
}

func TestCanonicalizeDistinguishesFoundations(t *testing.T) {
	a := newPosBuilder(7).foundations(0, 1, 0, 0).build(t)
	b := newPosBuilder(7).foundations(0, 2, 0, 0).build(t)

	assert.NotEqual(t, search.Canonicalize(a), search.Canonicalize(b))
}
