// Package epd reads perft/EPD test-suite fixtures from YAML files: the
// concrete stand-in for the "EPD/test-file reader" external
// collaborator, kept deliberately small since the engine only needs
// enough of EPD to drive perft regression and best-move checks, not a
// general opcode parser.
package epd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PerftCase is one position plus its expected node counts at a set of
// depths, keyed by depth.
type PerftCase struct {
	Name  string         `yaml:"name"`
	FEN   string         `yaml:"fen"`
	Nodes map[int]int64  `yaml:"nodes"`
}

// BestMoveCase is one position plus the move (in UCI long algebraic
// form, e.g. "e2e4") a correct engine is expected to find, the `bm`
// EPD opcode's YAML equivalent.
type BestMoveCase struct {
	Name     string `yaml:"name"`
	FEN      string `yaml:"fen"`
	BestMove string `yaml:"best_move"`
	Depth    int    `yaml:"depth"`
}

// Suite is a named collection of fixtures loaded from one YAML file.
type Suite struct {
	Name       string         `yaml:"name"`
	PerftCases []PerftCase    `yaml:"perft,omitempty"`
	BestMoves  []BestMoveCase `yaml:"best_moves,omitempty"`
}

// LoadSuite reads and parses a suite file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("epd: reading suite %s: %w", path, err)
	}

	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("epd: parsing suite %s: %w", path, err)
	}
	return &s, nil
}

// Depths returns the sorted set of depths exercised by a PerftCase,
// for callers that want to report progress depth by depth.
func (c PerftCase) Depths() []int {
	depths := make([]int, 0, len(c.Nodes))
	for d := range c.Nodes {
		depths = append(depths, d)
	}
	for i := 1; i < len(depths); i++ {
		for j := i; j > 0 && depths[j-1] > depths[j]; j-- {
			depths[j-1], depths[j] = depths[j], depths[j-1]
		}
	}
	return depths
}
