package layout

import (
	"fmt"
	"strings"

	"github.com/patiencelab/shenzhen/pkg/solitaire"
)

// Render renders p as a human-readable, transposed-columns board, used
// by the console driver's "show" command: the free cells
// and foundations print as a header row, then the 8 tableau columns
// print left to right, one card-row at a time.
func Render(p *solitaire.Position) string {
	var sb strings.Builder
	sb.WriteString("========== GAME STATE =========\n")

	for _, c := range p.FreeCells {
		fmt.Fprintf(&sb, "%-3v", c.String())
	}
	for i := len(p.FreeCells); i < solitaire.MaxFreeCells; i++ {
		sb.WriteString("   ")
	}
	sb.WriteString("  ")
	for _, s := range []solitaire.Suit{solitaire.Red, solitaire.Green, solitaire.Black} {
		v := p.Foundations[s]
		if v == 0 {
			sb.WriteString("   ")
			continue
		}
		fmt.Fprintf(&sb, "%-3v", solitaire.Card{Suit: s, Value: v}.String())
	}
	sb.WriteString("\n\n")

	height := 0
	for _, col := range p.Columns {
		if len(col) > height {
			height = len(col)
		}
	}
	for row := 0; row < height; row++ {
		for _, col := range p.Columns {
			if row < len(col) {
				fmt.Fprintf(&sb, "%-3v", col[row].String())
			} else {
				sb.WriteString("   ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
