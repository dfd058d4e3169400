// Command shenzhensolve reads a Shenzhen Solitaire deal from stdin and
// writes a winning sequence of moves to stdout, if one is found.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/patiencelab/shenzhen/pkg/engine"
	"github.com/patiencelab/shenzhen/pkg/engine/console"
	"github.com/patiencelab/shenzhen/pkg/search"
	"github.com/patiencelab/shenzhen/pkg/solitaire"
	"github.com/patiencelab/shenzhen/pkg/solitaire/layout"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var (
	yamlInput = flag.Bool("yaml", false, "Read the deal from stdin as a YAML save file instead of plain text notation")
	format    = flag.String("format", "text", "Output format: text, yaml, or json")

	expansionCap = flag.Int("expansioncap", 0, "Maximum positions to expand before giving up (zero: unlimited)")
	frontierCap  = flag.Int("frontiercap", 0, "Maximum distinct positions to track before giving up (zero: unlimited)")

	interactive = flag.Bool("console", false, "Run an interactive console driver (deal/solve/show/quit) over stdin/stdout instead of the one-shot stdin-deal mode")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: shenzhensolve [options] < deal

shenzhensolve finds a winning sequence of moves for a Shenzhen Solitaire
deal read from stdin.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	logw.Infof(ctx, "Starting %v", engine.Name())

	if *interactive {
		runConsole(ctx)
		return
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		logw.Exitf(ctx, "Failed to read stdin: %v", err)
	}

	pos, err := decodeDeal(raw)
	if err != nil {
		logw.Exitf(ctx, "Invalid deal: %v", err)
	}

	var opts search.Options
	if *expansionCap > 0 {
		opts.ExpansionCap = lang.Some(*expansionCap)
	}
	if *frontierCap > 0 {
		opts.FrontierCap = lang.Some(*frontierCap)
	}

	solution, err := search.Solve(ctx, pos, opts)
	if err != nil {
		logw.Exitf(ctx, "No solution: %v", err)
	}

	if err := writeSolution(os.Stdout, solution); err != nil {
		logw.Exitf(ctx, "Failed to write solution: %v", err)
	}
}

// runConsole drives the interactive console.Driver over stdin/stdout,
// piping engine.ReadStdinLines into the driver and the driver's output
// into engine.WriteStdoutLines.
func runConsole(ctx context.Context) {
	e := engine.New(ctx, nil)

	in := engine.ReadStdinLines(ctx)
	driver, out := console.NewDriver(ctx, e, in)
	go engine.WriteStdoutLines(ctx, out)

	<-driver.Closed()
}

func decodeDeal(raw []byte) (*solitaire.Position, error) {
	if *yamlInput {
		return layout.DecodeYAML(raw)
	}
	return layout.Decode(string(raw))
}

// jsonStep is the JSON wire shape for one Solution step, for scripted
// callers piping solver output into another process.
type jsonStep struct {
	Deal string `json:"deal"`
	Move string `json:"move,omitempty"`
}

func writeSolution(w io.Writer, solution search.Solution) error {
	switch *format {
	case "json":
		steps := make([]jsonStep, len(solution.Steps))
		for i, s := range solution.Steps {
			js := jsonStep{Deal: layout.Encode(s.Position)}
			if s.Move.Kind != solitaire.NoMove {
				js.Move = s.Move.String()
			}
			steps[i] = js
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(steps)

	case "yaml":
		for _, s := range solution.Steps {
			data, err := layout.EncodeYAML(s.Position)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "---\n%smove: %v\n", data, s.Move); err != nil {
				return err
			}
		}
		return nil

	default:
		for _, s := range solution.Steps {
			if s.Move.Kind == solitaire.NoMove {
				continue
			}
			if _, err := fmt.Fprintln(w, s.Move.String()); err != nil {
				return err
			}
		}
		return nil
	}
}
