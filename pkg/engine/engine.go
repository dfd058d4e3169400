// Package engine orchestrates a deal recognizer, the search package, and
// an optional playback collaborator behind a single mutex-guarded type.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/patiencelab/shenzhen/pkg/search"
	"github.com/patiencelab/shenzhen/pkg/solitaire"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Recognizer is the boundary to whatever observes the live game and
// produces a dealt Position -- screen capture, OCR, or a human typing
// in a layout. This package defines only the interface; no concrete
// implementation ships here.
type Recognizer interface {
	Recognize(ctx context.Context) (*solitaire.Position, error)
}

// Player is the boundary to whatever plays a found Solution back into
// the live game -- mouse/keyboard automation, or a human following
// along. Interface-only, same as Recognizer.
type Player interface {
	Play(ctx context.Context, step search.Step) error
}

// Engine holds the current deal, guarding all access to it with a
// mutex. It does not keep the Solutions it computes.
type Engine struct {
	recognizer Recognizer
	player     Player

	pos *solitaire.Position
	mu  sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithPlayer configures the engine with a playback collaborator. If
// none is set, Playback is a no-op returning an error.
func WithPlayer(p Player) Option {
	return func(e *Engine) {
		e.player = p
	}
}

// New constructs an Engine around the given Recognizer.
func New(ctx context.Context, recognizer Recognizer, opts ...Option) *Engine {
	e := &Engine{recognizer: recognizer}
	for _, fn := range opts {
		fn(e)
	}
	logw.Infof(ctx, "Initialized engine %v", version)
	return e
}

// Name returns the engine name and version.
func Name() string {
	return fmt.Sprintf("shenzhensolve %v", version)
}

// Position returns the currently dealt position, if any.
func (e *Engine) Position() (*solitaire.Position, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos, e.pos != nil
}

// Deal asks the configured Recognizer to observe the live game and
// stores the resulting Position.
func (e *Engine) Deal(ctx context.Context) error {
	pos, err := e.recognizer.Recognize(ctx)
	if err != nil {
		return fmt.Errorf("deal failed: %w", err)
	}

	e.mu.Lock()
	e.pos = pos
	e.mu.Unlock()

	logw.Infof(ctx, "Dealt position: %v", pos)
	return nil
}

// SetPosition installs pos directly, bypassing the Recognizer -- used
// by the console driver and CLI, which read a layout from stdin rather
// than observing a live game.
func (e *Engine) SetPosition(pos *solitaire.Position) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pos = pos
}

// Solve runs search.Solve against the currently dealt position.
func (e *Engine) Solve(ctx context.Context, opts search.Options) (search.Solution, error) {
	e.mu.Lock()
	pos := e.pos
	e.mu.Unlock()

	if pos == nil {
		return search.Solution{}, fmt.Errorf("no position dealt")
	}

	logw.Infof(ctx, "Solve %v, opts=%v", pos, opts)
	return search.Solve(ctx, pos, opts)
}

// Playback replays solution's steps through the configured Player, in
// order. It returns an error if no Player was configured; this package
// ships no automation backend itself.
func (e *Engine) Playback(ctx context.Context, solution search.Solution) error {
	if e.player == nil {
		return fmt.Errorf("no player configured")
	}

	for _, step := range solution.Steps {
		if step.Move.Kind == solitaire.NoMove {
			continue
		}
		if err := e.player.Play(ctx, step); err != nil {
			return fmt.Errorf("playback failed at move %v: %w", step.Move, err)
		}
	}
	logw.Infof(ctx, "Playback complete: %v moves", len(solution.Steps)-1)
	return nil
}
