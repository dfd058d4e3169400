// Package console implements a line-oriented debug driver for the
// solitaire engine: stdin/stdout channels and a command-line switch
// driving Shenzhen Solitaire position printing.
package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/patiencelab/shenzhen/pkg/engine"
	"github.com/patiencelab/shenzhen/pkg/search"
	"github.com/patiencelab/shenzhen/pkg/solitaire"
	"github.com/patiencelab/shenzhen/pkg/solitaire/layout"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

const ProtocolName = "console"

// Driver implements a console driver for debugging: "deal <layout
// text|->", "solve", "show".
type Driver struct {
	iox.AsyncCloser

	e   *engine.Engine
	out chan<- string
}

func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		out:         out,
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized")
	d.out <- fmt.Sprintf("engine %v", engine.Name())

	var pending []string // accumulates a multi-line "deal -" layout

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			if pending != nil {
				if strings.TrimSpace(line) == "." {
					d.deal(ctx, strings.Join(pending, "\n"))
					pending = nil
				} else {
					pending = append(pending, line)
				}
				break
			}

			parts := strings.Fields(line)
			if len(parts) == 0 {
				break
			}
			cmd, args := strings.ToLower(parts[0]), parts[1:]

			switch cmd {
			case "deal":
				if len(args) == 1 && args[0] == "-" {
					pending = []string{}
					d.out <- "... paste layout text, end with a line containing just '.'"
					break
				}
				d.deal(ctx, strings.Join(args, "\n"))

			case "solve", "s":
				d.solve(ctx)

			case "show", "p":
				d.show(ctx)

			case "quit", "exit", "q":
				return

			default:
				d.out <- fmt.Sprintf("unrecognized command: %v", cmd)
			}

		case <-d.Closed():
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

func (d *Driver) deal(ctx context.Context, text string) {
	pos, err := layout.Decode(text)
	if err != nil {
		logw.Errorf(ctx, "Invalid layout: %v", err)
		d.out <- fmt.Sprintf("invalid layout: %v", err)
		return
	}
	d.e.SetPosition(pos)
	d.show(ctx)
}

func (d *Driver) solve(ctx context.Context) {
	solution, err := d.e.Solve(ctx, search.Options{})
	if err != nil {
		d.out <- fmt.Sprintf("no solution: %v", err)
		return
	}

	d.out <- fmt.Sprintf("solved in %v moves", len(solution.Steps)-1)
	for _, step := range solution.Steps {
		if step.Move.Kind != solitaire.NoMove {
			d.out <- step.Move.String()
		}
	}
}

func (d *Driver) show(ctx context.Context) {
	pos, ok := d.e.Position()
	if !ok {
		d.out <- "no position dealt"
		return
	}
	for _, line := range strings.Split(layout.Render(pos), "\n") {
		d.out <- line
	}
}
