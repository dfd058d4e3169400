// Package search implements the heuristic best-first solver over
// solitaire positions: canonicalization, the priority frontier, the
// visited set, and the Solve entry point.
package search

import (
	"crypto/sha256"
	"io"
	"sort"

	"github.com/patiencelab/shenzhen/pkg/solitaire"
)

// Fingerprint is an opaque, comparable identity for a canonical position.
// Two positions that differ only by a free-cell/column permutation hash
// to the same Fingerprint.
type Fingerprint [32]byte

// Canonicalize computes the Fingerprint of p: free cells are sorted by
// Card.Less, and the 8 columns are sorted by bottom card (an empty
// column sorts last); column interiors are never reordered, since the
// order of cards within a column is never interchangeable. This is the
// explicit-sort generalization of an incremental Zobrist-style hash,
// needed because chess transpositions are keyed by fixed piece-square
// identity while solitaire's free cells and
// columns are themselves an unordered collection.
func Canonicalize(p *solitaire.Position) Fingerprint {
	cells := append([]solitaire.Card{}, p.FreeCells...)
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })

	cols := make([][]solitaire.Card, len(p.Columns))
	copy(cols, p.Columns[:])
	sort.Slice(cols, func(i, j int) bool { return columnLess(cols[i], cols[j]) })

	h := sha256.New()
	for _, c := range cols {
		for _, card := range c {
			writeCard(h, card)
		}
		h.Write([]byte{0xff}) // column separator, distinguishes e.g. [R1,R2] from [R1],[R2]
	}
	for _, c := range cells {
		writeCard(h, c)
	}
	h.Write([]byte{0xfe})
	for _, f := range p.Foundations {
		h.Write([]byte{f})
	}

	var fp Fingerprint
	copy(fp[:], h.Sum(nil))
	return fp
}

func writeCard(w io.Writer, c solitaire.Card) {
	w.Write([]byte{byte(c.Suit), c.Value})
}

// columnLess orders columns by bottom card for the canonical form; an
// empty column sorts last. Two columns with the same bottom card (e.g.
// both bottomed on a same-suit dragon, which can't be stacked on and so
// only arises from the initial deal) fall back to a full, index-free
// lexicographic comparison of their contents -- otherwise the tie would
// resolve by input position and swapping the two columns would change
// the Fingerprint.
func columnLess(a, b []solitaire.Card) bool {
	if len(a) == 0 {
		return false
	}
	if len(b) == 0 {
		return true
	}
	for i := 0; i < len(a) && i < len(b); i++ {
		if !a[i].Equals(b[i]) {
			return a[i].Less(b[i])
		}
	}
	return len(a) < len(b)
}
