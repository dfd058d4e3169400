package layout_test

import (
	"testing"

	"github.com/patiencelab/shenzhen/pkg/solitaire"
	"github.com/patiencelab/shenzhen/pkg/solitaire/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	tests := []struct {
		tok  string
		want solitaire.Card
	}{
		{"xx", solitaire.FaceDownCard},
		{"S1", solitaire.Card{Suit: solitaire.Special, Value: 1}},
		{"R-", solitaire.Card{Suit: solitaire.Red, Value: 0}},
		{"G7", solitaire.Card{Suit: solitaire.Green, Value: 7}},
		{"B9", solitaire.Card{Suit: solitaire.Black, Value: 9}},
	}
	for _, tt := range tests {
		c, err := layout.ParseCard(tt.tok)
		require.NoError(t, err, tt.tok)
		assert.Equal(t, tt.want, c, tt.tok)
	}
}

func TestParseCardInvalid(t *testing.T) {
	tests := []string{"", "Z5", "R0", "R10", "x"}
	for _, tok := range tests {
		_, err := layout.ParseCard(tok)
		assert.Error(t, err, tok)
	}
}

// dealStandardDeck deals the 40-card StandardDeck round-robin across the
// 8 tableau columns, 5 cards each, matching how Shenzhen Solitaire itself
// deals a fresh game.
func dealStandardDeck(t *testing.T) *solitaire.Position {
	t.Helper()
	deck := solitaire.StandardDeck()
	var columns [solitaire.NumColumns][]solitaire.Card
	for i, c := range deck {
		col := i % solitaire.NumColumns
		columns[col] = append(columns[col], c)
	}
	p, err := solitaire.NewPosition(columns, nil, [solitaire.NumSuits]uint8{})
	require.NoError(t, err)
	return p
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	p := dealStandardDeck(t)

	text := layout.Encode(p)
	got, err := layout.Decode(text)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestDecodeEncodeRoundTripWithCellsAndFoundations(t *testing.T) {
	p := dealStandardDeck(t)
	// Move a card into a free cell, to exercise the CELLS: line alongside
	// the FOUND: line (all zero here) that Encode always writes.
	np, err := solitaire.Apply(p, solitaire.Move{Kind: solitaire.ColumnToFreeCell, Column: 0})
	require.NoError(t, err)

	text := layout.Encode(np)
	got, err := layout.Decode(text)
	require.NoError(t, err)
	assert.Equal(t, np, got)
}

func TestDecodeTreatsBlankLineAsEmptyColumn(t *testing.T) {
	p := dealStandardDeck(t)
	var columns [solitaire.NumColumns][]solitaire.Card
	columns[0] = p.Columns[0]
	// Leaving columns 1-7 empty would drop the remaining 35 cards of the
	// deal and violate the deck invariant, so rebuild from the standard
	// deck instead: Special/1 in column 0, the other 39 cards in column 1,
	// columns 2-7 empty. An empty column encoded as a blank line must
	// decode back to a zero-length column, not be skipped.
	deck := solitaire.StandardDeck()
	columns[0] = deck[:1] // Special/1
	var rest []solitaire.Card
	rest = append(rest, deck[1:]...)
	columns[1] = rest

	pos, err := solitaire.NewPosition(columns, nil, [solitaire.NumSuits]uint8{})
	require.NoError(t, err)

	text := layout.Encode(pos)
	got, err := layout.Decode(text)
	require.NoError(t, err)
	require.Empty(t, got.Columns[2]) // blank line for column 2 round-trips as empty, not skipped
	assert.Equal(t, pos, got)
}

func TestDecodeRejectsWrongColumnCount(t *testing.T) {
	_, err := layout.Decode("R1\nG1\n")
	assert.Error(t, err)
}

func TestDecodeRejectsBadFoundLine(t *testing.T) {
	text := "\n\n\n\n\n\n\n\nFOUND: 1 2 3\n"
	_, err := layout.Decode(text)
	assert.Error(t, err)
}
