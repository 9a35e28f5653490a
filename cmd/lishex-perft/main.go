// Command lishex-perft runs a perft suite described by an epd.Suite
// YAML file, checking each case's node counts concurrently.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mkjm2/lishex/internal/board"
	"github.com/mkjm2/lishex/internal/epd"
)

var suitePath = flag.String("suite", "", "path to a perft suite YAML file")

func main() {
	flag.Parse()
	if *suitePath == "" {
		log.Fatal("lishex-perft: -suite is required")
	}

	suite, err := epd.LoadSuite(*suitePath)
	if err != nil {
		log.Fatalf("lishex-perft: %v", err)
	}

	results := make([]string, len(suite.PerftCases))
	var g errgroup.Group

	for i, tc := range suite.PerftCases {
		i, tc := i, tc
		g.Go(func() error {
			pos, err := board.ParseFEN(tc.FEN, nil)
			if err != nil {
				return fmt.Errorf("%s: invalid fen: %w", tc.Name, err)
			}

			for _, depth := range tc.Depths() {
				got := board.Perft(pos, depth)
				want := tc.Nodes[depth]
				if got != want {
					results[i] += fmt.Sprintf("  depth %d: got %d want %d MISMATCH\n", depth, got, want)
				} else {
					results[i] += fmt.Sprintf("  depth %d: %d OK\n", depth, got)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("lishex-perft: %v", err)
	}

	exitCode := 0
	for i, tc := range suite.PerftCases {
		fmt.Printf("%s (%s):\n%s", tc.Name, tc.FEN, results[i])
		if strings.Contains(results[i], "MISMATCH") {
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}
