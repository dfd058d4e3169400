package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/patiencelab/shenzhen/pkg/solitaire"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// ErrNoSolution is returned when the frontier empties without reaching a
// winning position, encoded as an error here so context cancellation and
// the solved case can share a single (Solution, error) signature while
// errors.Is still separates
// genuine exhaustion from a resource cap cutting the search short.
var ErrNoSolution = errors.New("search: no solution found")

// ErrCapExceeded is wrapped, together with ErrNoSolution, in the error
// Solve returns when a configured Options cap was hit before the frontier
// was exhausted, distinguishing "gave up" from "proved unsolvable".
var ErrCapExceeded = errors.New("search: cap exceeded")

// Options configures a Solve call, with lang.Optional fields for the
// resource caps a best-first solitaire search needs: how many positions
// to expand and how large the frontier may grow.
type Options struct {
	// ExpansionCap bounds the number of positions expanded before giving
	// up. If unset, there is no limit.
	ExpansionCap lang.Optional[int]
	// FrontierCap bounds the number of distinct fingerprints the visited
	// set will track before giving up. If unset, there is no limit.
	FrontierCap lang.Optional[int]
}

func (o Options) String() string {
	exp, _ := o.ExpansionCap.V()
	fc, _ := o.FrontierCap.V()
	return fmt.Sprintf("{expansioncap=%v, frontiercap=%v}", exp, fc)
}

// Step is one (position, move) pair of a Solution, in play order. The
// final Step's Move is the NoMove sentinel, marking the winning position
// itself rather than a move leading away from it.
type Step struct {
	Position *solitaire.Position
	Move     solitaire.Move
}

// Solution is the ordered sequence of (Position, Move) pairs from the
// starting deal to the win.
type Solution struct {
	Steps []Step
}

// fullChecker is implemented by VisitedSet wrappers that can report
// having reached a configured capacity; see bounded.Full.
type fullChecker interface {
	Full() bool
}

// Solve runs an iterative best-first search from start and returns the
// winning Solution, or ErrNoSolution (optionally wrapping ErrCapExceeded)
// if none is found. It is a single synchronous, side-effect-free entry
// point.
//
// This uses an iterative best-first loop: an explicit priority queue
// over a recursive depth-first walk, because naive recursion with no
// visited set revisits the same position arbitrarily many times
// through different move orderings.
func Solve(ctx context.Context, start *solitaire.Position, opts Options) (Solution, error) {
	logw.Infof(ctx, "Solve starting from %v, opts=%v", start, opts)

	f := newFrontier()
	visited := NewVisitedSet()
	if max, ok := opts.FrontierCap.V(); ok {
		visited = NewBoundedVisitedSet(max)
	}

	root := &searchNode{position: start, priority: Priority(start)}
	f.Push(root)
	visited.Mark(Canonicalize(start))

	expanded := 0
	for {
		if contextx.IsCancelled(ctx) {
			return Solution{}, ctx.Err()
		}

		n, ok := f.Pop()
		if !ok {
			logw.Infof(ctx, "Solve exhausted frontier after %v expansions: no solution", expanded)
			return Solution{}, ErrNoSolution
		}

		if solitaire.IsWinning(n.position) {
			if err := solitaire.ValidateWinningInvariant(n.position); err != nil {
				panic(fmt.Sprintf("search: won position fails sanity check: %v", err))
			}
			logw.Infof(ctx, "Solve found solution after %v expansions", expanded)
			return reconstruct(n), nil
		}

		expanded++
		if expanded%1000 == 0 {
			logw.Debugf(ctx, "Solve progress: %v expanded, %v frontier, %v visited", expanded, f.Len(), visited.Len())
		}
		if max, ok := opts.ExpansionCap.V(); ok && expanded > max {
			return Solution{}, fmt.Errorf("%w: %w after %v expansions", ErrNoSolution, ErrCapExceeded, expanded)
		}
		if fc, ok := visited.(fullChecker); ok && fc.Full() {
			return Solution{}, fmt.Errorf("%w: %w: visited set reached its cap", ErrNoSolution, ErrCapExceeded)
		}

		for _, succ := range expand(n.position) {
			fp := Canonicalize(succ.position)
			if visited.Seen(fp) {
				continue
			}
			visited.Mark(fp)

			succ.parent = n
			succ.priority = Priority(succ.position)
			f.Push(succ)
		}
	}
}

// expand returns the successor nodes of p: if a forced foundation move
// is legal, it is the ONLY move applied; otherwise every move LegalMoves
// enumerates is applied.
func expand(p *solitaire.Position) []*searchNode {
	if m, ok := solitaire.ForcedFoundationMove(p); ok {
		succ, err := solitaire.Apply(p, m)
		if err != nil {
			// ForcedFoundationMove only ever returns legal moves.
			panic(fmt.Sprintf("search: forced move %v rejected: %v", m, err))
		}
		return []*searchNode{{position: succ, move: m}}
	}

	moves := solitaire.LegalMoves(p)
	nodes := make([]*searchNode, 0, len(moves))
	for _, m := range moves {
		succ, err := solitaire.Apply(p, m)
		if err != nil {
			panic(fmt.Sprintf("search: enumerated move %v rejected: %v", m, err))
		}
		nodes = append(nodes, &searchNode{position: succ, move: m})
	}
	return nodes
}

// reconstruct walks n's parent chain back to the root and reverses it
// into play order.
func reconstruct(n *searchNode) Solution {
	var steps []Step
	steps = append(steps, Step{Position: n.position, Move: solitaire.Move{Kind: solitaire.NoMove}})
	for cur := n; cur.parent != nil; cur = cur.parent {
		steps = append(steps, Step{Position: cur.parent.position, Move: cur.move})
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return Solution{Steps: steps}
}
