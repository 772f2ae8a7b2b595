//go:build !lambda

package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

// SolveOutput is the JSON-serializable result of one solve.
type SolveOutput struct {
	MaxEV    float64  `json:"maxEV"`
	BestMove string   `json:"bestMove,omitempty"`
	Path     []string `json:"path,omitempty"`
	Plots    int      `json:"plots"`
	TimeMs   int64    `json:"timeMs"`
}

func runOnce(g *Garden, jsonOut bool) {
	sess := NewSession(g)
	start := time.Now()
	res := sess.Suggest()
	elapsed := time.Since(start)

	if Verbose {
		fmt.Fprintf(os.Stderr, "[solve] plots=%d states=%d elapsed=%v\n",
			len(g.Plots), sess.solver.CachedStates(), elapsed)
	}

	if jsonOut {
		out := SolveOutput{
			MaxEV:  res.MaxEV,
			Path:   res.Path,
			Plots:  len(g.Plots),
			TimeMs: elapsed.Milliseconds(),
		}
		if res.HasMove {
			out.BestMove = res.BestMove.String()
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(out)
	} else {
		fmt.Print(FormatResult(g, res))
	}
}

func runInteractive(g *Garden) {
	sess := NewSession(g)
	sc := bufio.NewScanner(os.Stdin)

	for {
		plots := sess.Plots()
		if len(plots) == 0 {
			fmt.Println("菜地已收完。")
			return
		}

		res := sess.Suggest()
		fmt.Print(FormatResult(&Garden{Params: sess.Params(), Plots: plots}, res))
		if Verbose {
			fmt.Fprintf(os.Stderr, "[solve] plots=%d states=%d\n",
				len(plots), sess.solver.CachedStates())
		}

		neighbor := false
		for i := range plots {
			if plots[i].PlotID != res.BestMove && plots[i].Field == res.BestMove.Field {
				neighbor = true
				break
			}
		}

		var survived bool
		if neighbor {
			fmt.Printf("摘取 %s 后，邻格是否存活？[y/n/q] ", res.BestMove)
		} else {
			fmt.Printf("摘取 %s 后按回车继续 [q 退出] ", res.BestMove)
		}
		if !sc.Scan() {
			return
		}
		ans := strings.ToLower(strings.TrimSpace(sc.Text()))
		if ans == "q" {
			return
		}
		survived = neighbor && ans == "y"

		if err := sess.Harvest(res.BestMove, survived); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
	}
}

const usage = `Usage: garden-optimizer <garden.json>

Positional arguments:
  garden.json   Path to garden layout and parameters

Flags:
`

func main() {
	jsonOut := flag.Bool("json", false, "Output result as JSON")
	verbose := flag.Bool("verbose", false, "Print solve progress to stderr")
	interactive := flag.Bool("interactive", false, "Replay harvests interactively on stdin")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	Verbose = *verbose

	g, err := LoadGarden(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Loaded %d plots in %d fields\n", len(g.Plots), fieldCount(g.Plots))

	if *interactive {
		runInteractive(g)
	} else {
		runOnce(g, *jsonOut)
	}
}
