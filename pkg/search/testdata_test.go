package search_test

import (
	"testing"

	"github.com/patiencelab/shenzhen/pkg/solitaire"
	"github.com/patiencelab/shenzhen/pkg/solitaire/layout"
	"github.com/stretchr/testify/require"
)

// posBuilder assembles a full-deck Position from the columns/cells/
// foundations a test cares about, dumping the remainder of the deck, in
// fixed deck order, into a filler column. See pkg/solitaire's own copy of
// this helper for the full rationale; duplicated here since it's a small,
// package-private test fixture and not worth exporting across packages.
type posBuilder struct {
	columns [solitaire.NumColumns][]solitaire.Card
	cells   []solitaire.Card
	found   [solitaire.NumSuits]uint8
	filler  int
}

func newPosBuilder(filler int) *posBuilder {
	return &posBuilder{filler: filler}
}

func (b *posBuilder) col(t *testing.T, i int, tokens ...string) *posBuilder {
	t.Helper()
	for _, tok := range tokens {
		c, err := layout.ParseCard(tok)
		require.NoError(t, err)
		b.columns[i] = append(b.columns[i], c)
	}
	return b
}

func (b *posBuilder) cell(t *testing.T, tokens ...string) *posBuilder {
	t.Helper()
	for _, tok := range tokens {
		c, err := layout.ParseCard(tok)
		require.NoError(t, err)
		b.cells = append(b.cells, c)
	}
	return b
}

func (b *posBuilder) foundations(special, red, green, black uint8) *posBuilder {
	b.found = [solitaire.NumSuits]uint8{special, red, green, black}
	return b
}

func (b *posBuilder) build(t *testing.T) *solitaire.Position {
	t.Helper()

	used := map[solitaire.Card]int{}
	explicitFaceDown := 0
	for _, col := range b.columns {
		for _, c := range col {
			if c.IsFaceDown() {
				explicitFaceDown++
				continue
			}
			used[c]++
		}
	}
	for _, c := range b.cells {
		if c.IsFaceDown() {
			explicitFaceDown++
			continue
		}
		used[c]++
	}

	foundationCounts := map[solitaire.Card]int{}
	if b.found[solitaire.Special] >= 1 {
		foundationCounts[solitaire.Card{Suit: solitaire.Special, Value: 1}]++
	}
	for _, s := range []solitaire.Suit{solitaire.Red, solitaire.Green, solitaire.Black} {
		for v := uint8(1); v <= b.found[s]; v++ {
			foundationCounts[solitaire.Card{Suit: s, Value: v}]++
		}
	}

	skipDragons := 4 * explicitFaceDown
	var leftover []solitaire.Card
	for _, c := range solitaire.StandardDeck() {
		switch {
		case used[c] > 0:
			used[c]--
		case foundationCounts[c] > 0:
			foundationCounts[c]--
		case c.Value == 0 && skipDragons > 0:
			skipDragons--
		default:
			leftover = append(leftover, c)
		}
	}

	cols := b.columns
	cols[b.filler] = append(cols[b.filler], leftover...)
	p, err := solitaire.NewPosition(cols, b.cells, b.found)
	require.NoError(t, err)
	return p
}
