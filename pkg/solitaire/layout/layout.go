// Package layout contains text and YAML notations for a Shenzhen
// Solitaire Position: the fixture and save-file formats used by tests,
// the console driver and the CLI.
package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/patiencelab/shenzhen/pkg/solitaire"
)

const (
	cellsPrefix = "CELLS:"
	foundPrefix = "FOUND:"
)

// Decode parses the compact text notation into a Position: 8 lines, one
// per tableau column (left to right), each a space-separated list of
// card tokens (bottom of the column first); an optional "CELLS:" line
// listing 0-3 free-cell tokens; and an optional "FOUND:" line listing
// the four foundation values in Special, Red, Green, Black order.
// Mirrors fen.Decode's signature shape and error style.
//
// Example:
//
//	R5 G4 B3
//	R-
//	...(6 more column lines)...
//	CELLS: S1
//	FOUND: 0 0 0 0
func Decode(text string) (*solitaire.Position, error) {
	var columns [solitaire.NumColumns][]solitaire.Card
	var freeCells []solitaire.Card
	var foundations [solitaire.NumSuits]uint8

	col := 0
	sawFound := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" && col >= solitaire.NumColumns {
			continue // trailing blank line, once all 8 columns are read
		}

		switch {
		case line == "" && col < solitaire.NumColumns:
			col++ // a blank line before CELLS:/FOUND: is an empty column

		case strings.HasPrefix(line, cellsPrefix):
			tokens := strings.Fields(strings.TrimPrefix(line, cellsPrefix))
			for _, t := range tokens {
				c, err := ParseCard(t)
				if err != nil {
					return nil, fmt.Errorf("layout: invalid free cell token %q: %w", t, err)
				}
				freeCells = append(freeCells, c)
			}

		case strings.HasPrefix(line, foundPrefix):
			tokens := strings.Fields(strings.TrimPrefix(line, foundPrefix))
			if len(tokens) != solitaire.NumSuits {
				return nil, fmt.Errorf("layout: FOUND line needs %v values, got %v", solitaire.NumSuits, len(tokens))
			}
			for i, t := range tokens {
				v, err := strconv.Atoi(t)
				if err != nil || v < 0 || v > 9 {
					return nil, fmt.Errorf("layout: invalid foundation value %q", t)
				}
				foundations[i] = uint8(v)
			}
			sawFound = true

		default:
			if col >= solitaire.NumColumns {
				return nil, fmt.Errorf("layout: more than %v column lines", solitaire.NumColumns)
			}
			for _, t := range strings.Fields(line) {
				c, err := ParseCard(t)
				if err != nil {
					return nil, fmt.Errorf("layout: invalid card token %q in column %v: %w", t, col, err)
				}
				columns[col] = append(columns[col], c)
			}
			col++
		}
	}
	if col != solitaire.NumColumns {
		return nil, fmt.Errorf("layout: expected %v column lines, got %v", solitaire.NumColumns, col)
	}
	_ = sawFound // zero foundations is a legal, if unusual, starting layout

	return solitaire.NewPosition(columns, freeCells, foundations)
}

// Encode renders p in the Decode text notation.
func Encode(p *solitaire.Position) string {
	var sb strings.Builder
	for _, col := range p.Columns {
		tokens := make([]string, len(col))
		for i, c := range col {
			tokens[i] = c.String()
		}
		sb.WriteString(strings.Join(tokens, " "))
		sb.WriteByte('\n')
	}

	if len(p.FreeCells) > 0 {
		tokens := make([]string, len(p.FreeCells))
		for i, c := range p.FreeCells {
			tokens[i] = c.String()
		}
		fmt.Fprintf(&sb, "%v %v\n", cellsPrefix, strings.Join(tokens, " "))
	}

	fmt.Fprintf(&sb, "%v %v %v %v %v\n", foundPrefix,
		p.Foundations[solitaire.Special], p.Foundations[solitaire.Red],
		p.Foundations[solitaire.Green], p.Foundations[solitaire.Black])

	return sb.String()
}

// ParseCard parses a single card token: "xx" for the FaceDown
// placeholder, "S1" for the special card, "<suit>-" for a dragon (e.g.
// "R-"), or "<suit><value>" for a numeric card (e.g. "G7").
func ParseCard(tok string) (solitaire.Card, error) {
	if tok == "xx" {
		return solitaire.FaceDownCard, nil
	}
	if len(tok) < 2 {
		return solitaire.Card{}, fmt.Errorf("token too short")
	}

	suit, ok := parseSuit(tok[0])
	if !ok {
		return solitaire.Card{}, fmt.Errorf("unknown suit %q", tok[0:1])
	}
	rest := tok[1:]
	if rest == "-" {
		return solitaire.Card{Suit: suit, Value: 0}, nil
	}
	v, err := strconv.Atoi(rest)
	if err != nil || v < 1 || v > 9 {
		return solitaire.Card{}, fmt.Errorf("invalid value %q", rest)
	}
	return solitaire.Card{Suit: suit, Value: uint8(v)}, nil
}

func parseSuit(r byte) (solitaire.Suit, bool) {
	switch r {
	case 'S':
		return solitaire.Special, true
	case 'R':
		return solitaire.Red, true
	case 'G':
		return solitaire.Green, true
	case 'B':
		return solitaire.Black, true
	default:
		return 0, false
	}
}
