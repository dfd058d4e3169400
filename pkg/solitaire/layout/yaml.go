package layout

import (
	"fmt"

	"github.com/patiencelab/shenzhen/pkg/solitaire"
	"gopkg.in/yaml.v3"
)

// saveFile is the on-disk shadow of a Position, grounded on
// _examples/gazed-purecell/save.go's Save struct: plain fields with
// yaml.v3 struct tags, persisted with yaml.Marshal rather than a
// hand-rolled format. Card tokens reuse the Decode/Encode text notation
// so a YAML fixture and a plain-text fixture describe the same cards.
type saveFile struct {
	Columns     [solitaire.NumColumns][]string `yaml:"columns"`
	FreeCells   []string                       `yaml:"free_cells,omitempty"`
	Foundations [solitaire.NumSuits]uint8      `yaml:"foundations,flow"`
}

// EncodeYAML renders p as a YAML save file.
func EncodeYAML(p *solitaire.Position) ([]byte, error) {
	var s saveFile
	for i, col := range p.Columns {
		s.Columns[i] = make([]string, len(col))
		for j, c := range col {
			s.Columns[i][j] = c.String()
		}
	}
	s.FreeCells = make([]string, len(p.FreeCells))
	for i, c := range p.FreeCells {
		s.FreeCells[i] = c.String()
	}
	s.Foundations = p.Foundations

	return yaml.Marshal(&s)
}

// DecodeYAML parses a YAML save file into a Position.
func DecodeYAML(data []byte) (*solitaire.Position, error) {
	var s saveFile
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("layout: invalid YAML save file: %w", err)
	}

	var columns [solitaire.NumColumns][]solitaire.Card
	for i, tokens := range s.Columns {
		columns[i] = make([]solitaire.Card, len(tokens))
		for j, t := range tokens {
			c, err := ParseCard(t)
			if err != nil {
				return nil, fmt.Errorf("layout: invalid card token %q in column %v: %w", t, i, err)
			}
			columns[i][j] = c
		}
	}

	freeCells := make([]solitaire.Card, len(s.FreeCells))
	for i, t := range s.FreeCells {
		c, err := ParseCard(t)
		if err != nil {
			return nil, fmt.Errorf("layout: invalid free cell token %q: %w", t, err)
		}
		freeCells[i] = c
	}

	return solitaire.NewPosition(columns, freeCells, s.Foundations)
}
