package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/elektrokombinacija/mapf-lp-gen/internal/core"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/gen"
)

// Group is one block of a sweep: a fixed grid and mode crossed with agent
// counts, obstacle percentages and repetitions.
type Group struct {
	Mode                core.Mode `json:"mode"`
	Width               int       `json:"width"`
	Height              int       `json:"height"`
	Horizon             int       `json:"horizon"`
	Agents              []int     `json:"agents"`
	ObstaclePercentages []float64 `json:"obstacle_percentages,omitempty"` // Random mode only
	Repetitions         int       `json:"repetitions"`
}

// Suite is an ordered list of groups written into one directory.
type Suite struct {
	OutputDir string  `json:"output_dir"`
	Groups    []Group `json:"groups"`
}

// Run is one instance of a suite, in generation order.
type Run struct {
	Index      int // Position in the whole suite, also the seed
	Repetition int // Repetition within its parameter combination
	Params     gen.Params
}

// Runs expands the suite into its instances. Seeds are the global index, so
// each file is reproducible on its own.
func (s Suite) Runs() []Run {
	var runs []Run
	for _, g := range s.Groups {
		percentages := g.ObstaclePercentages
		if g.Mode == core.ModeWarehouse || len(percentages) == 0 {
			percentages = []float64{0}
		}
		for _, n := range g.Agents {
			for _, p := range percentages {
				for rep := 0; rep < g.Repetitions; rep++ {
					idx := len(runs)
					runs = append(runs, Run{
						Index:      idx,
						Repetition: rep,
						Params: gen.Params{
							Width:              g.Width,
							Height:             g.Height,
							NumAgents:          n,
							ObstaclePercentage: p,
							Horizon:            g.Horizon,
							Mode:               g.Mode,
							Seed:               int64(idx),
						},
					})
				}
			}
		}
	}
	return runs
}

// Validate checks every run of the suite.
func (s Suite) Validate() error {
	if s.OutputDir == "" {
		return &ParamError{Field: "output_dir", Reason: "empty"}
	}
	for i, g := range s.Groups {
		if g.Repetitions < 1 {
			return fmt.Errorf("group %d: %w", i, &ParamError{Field: "repetitions", Reason: fmt.Sprintf("%d is not positive", g.Repetitions)})
		}
		if len(g.Agents) == 0 {
			return fmt.Errorf("group %d: %w", i, &ParamError{Field: "agents", Reason: "empty list"})
		}
	}
	for _, r := range s.Runs() {
		if err := Validate(r.Params); err != nil {
			return fmt.Errorf("run %d: %w", r.Index, err)
		}
	}
	return nil
}

// DefaultSuite is the standard benchmark sweep: random 8x8 and 20x20 grids
// at 0, 10 and 25 percent obstacles, then 15x15 and 21x18 warehouses.
func DefaultSuite() Suite {
	percentages := []float64{0, 10, 25}
	return Suite{
		OutputDir: "mapf_instances",
		Groups: []Group{
			{Mode: core.ModeRandom, Width: 8, Height: 8, Horizon: 100, Agents: stepRange(10, 20, 2), ObstaclePercentages: percentages, Repetitions: 3},
			{Mode: core.ModeRandom, Width: 20, Height: 20, Horizon: 120, Agents: stepRange(16, 28, 2), ObstaclePercentages: percentages, Repetitions: 3},
			{Mode: core.ModeWarehouse, Width: 15, Height: 15, Horizon: 120, Agents: stepRange(16, 28, 2), Repetitions: 3},
			{Mode: core.ModeWarehouse, Width: 21, Height: 18, Horizon: 120, Agents: stepRange(16, 28, 2), Repetitions: 3},
		},
	}
}

// LoadSuite reads a JSON suite file.
func LoadSuite(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, err
	}

	var s Suite
	if err := json.Unmarshal(data, &s); err != nil {
		return Suite{}, fmt.Errorf("parse suite %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Suite{}, fmt.Errorf("suite %s: %w", path, err)
	}
	return s, nil
}

func stepRange(from, to, step int) []int {
	var out []int
	for n := from; n <= to; n += step {
		out = append(out, n)
	}
	return out
}
