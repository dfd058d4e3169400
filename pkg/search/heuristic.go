package search

import "github.com/patiencelab/shenzhen/pkg/solitaire"

// Score is the sum of the four foundation values, minus the number of
// columns that still contain at least one dragon. Higher is closer to a
// win. Grounded on
// pkg/eval/eval.go's Evaluator shape, simplified to a plain function
// since no quiescence or material-table machinery applies here.
func Score(p *solitaire.Position) int {
	score := 0
	for _, f := range p.Foundations {
		score += int(f)
	}
	for _, col := range p.Columns {
		for _, c := range col {
			if c.IsDragon() {
				score--
				break
			}
		}
	}
	return score
}

// Priority returns the frontier priority for p: the negation of Score,
// since the frontier is a min-heap and higher Score should pop first.
func Priority(p *solitaire.Position) priorityValue {
	return priorityValue(-Score(p))
}
