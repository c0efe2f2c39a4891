// Command perft counts legal move paths from the initial position, optionally
// after a sequence of UCI moves, to check the move generator.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/benbeisheim/chessrules-backend/internal/engine"
	"golang.org/x/exp/maps"
)

func main() {
	depth := flag.Int("depth", 4, "search depth in plies")
	moves := flag.String("moves", "", "UCI moves to play first, space separated")
	divide := flag.Bool("divide", false, "print the count below each root move")
	flag.Parse()

	if err := run(os.Stdout, *depth, *moves, *divide); err != nil {
		fmt.Fprintln(os.Stderr, "perft:", err)
		os.Exit(1)
	}
}

func run(w io.Writer, depth int, moves string, divide bool) error {
	if depth < 0 {
		return fmt.Errorf("negative depth %d", depth)
	}
	g := engine.NewGameState()
	for _, uci := range strings.Fields(moves) {
		m, err := g.MoveFromUCI(uci)
		if err != nil {
			return err
		}
		if err := g.MakeMove(m); err != nil {
			return fmt.Errorf("%s: %w", uci, err)
		}
	}

	start := time.Now()
	var nodes uint64
	if divide && depth > 0 {
		counts := engine.PerftDivide(g, depth)
		keys := maps.Keys(counts)
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "%s: %d\n", k, counts[k])
			nodes += counts[k]
		}
		fmt.Fprintln(w)
	} else {
		nodes = engine.Perft(g, depth)
	}
	elapsed := time.Since(start)

	fmt.Fprintf(w, "depth %d: %d nodes in %s", depth, nodes, elapsed.Round(time.Millisecond))
	if s := elapsed.Seconds(); s > 0 {
		fmt.Fprintf(w, " (%.0f nps)", float64(nodes)/s)
	}
	fmt.Fprintln(w)
	return nil
}
