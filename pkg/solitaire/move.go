package solitaire

import "fmt"

// MoveKind identifies one of the six legal move kinds, plus the terminal
// sentinel used to close out a winning solution.
type MoveKind uint8

const (
	NoMove MoveKind = iota
	CollectDragons
	ColumnToFoundation
	FreeCellToFoundation
	ColumnToColumn
	ColumnToFreeCell
	FreeCellToColumn
)

func (k MoveKind) String() string {
	switch k {
	case NoMove:
		return "none"
	case CollectDragons:
		return "collect-dragons"
	case ColumnToFoundation:
		return "column-to-foundation"
	case FreeCellToFoundation:
		return "freecell-to-foundation"
	case ColumnToColumn:
		return "column-to-column"
	case ColumnToFreeCell:
		return "column-to-freecell"
	case FreeCellToColumn:
		return "freecell-to-column"
	default:
		return "?"
	}
}

// Move represents a single, not-necessarily-legal move along with its
// parameters. Unused fields are zero for any given Kind; this mirrors the
// single flat struct a chess move often uses, where castling, captures
// and promotions all coexist in one struct shape.
type Move struct {
	Kind MoveKind

	Suit Suit // CollectDragons

	Column int // ColumnToFoundation, ColumnToColumn (from), ColumnToFreeCell, FreeCellToColumn (to)
	To     int // ColumnToColumn (to)

	Cell int // FreeCellToFoundation, FreeCellToColumn (cell)

	StackSize int // ColumnToColumn
}

// Equals reports whether two moves are identical.
func (m Move) Equals(other Move) bool {
	return m == other
}

func (m Move) String() string {
	switch m.Kind {
	case CollectDragons:
		return fmt.Sprintf("collect(%v)", m.Suit)
	case ColumnToFoundation:
		return fmt.Sprintf("col(%d)->foundation", m.Column)
	case FreeCellToFoundation:
		return fmt.Sprintf("cell(%d)->foundation", m.Cell)
	case ColumnToColumn:
		return fmt.Sprintf("col(%d)->col(%d)x%d", m.Column, m.To, m.StackSize)
	case ColumnToFreeCell:
		return fmt.Sprintf("col(%d)->cell", m.Column)
	case FreeCellToColumn:
		return fmt.Sprintf("cell(%d)->col(%d)", m.Cell, m.Column)
	default:
		return "none"
	}
}
