package gen

import (
	"math/rand"

	"github.com/elektrokombinacija/mapf-lp-gen/internal/core"
)

// Params fully determines a generated instance.
type Params struct {
	Width              int       `json:"width"`
	Height             int       `json:"height"`
	NumAgents          int       `json:"num_agents"`
	ObstaclePercentage float64   `json:"obstacle_percentage"` // Ignored in warehouse mode
	Horizon            int       `json:"horizon"`
	Mode               core.Mode `json:"mode"`
	Seed               int64     `json:"seed"`
}

// Generate creates the instance described by p. Every call seeds its own
// source, so results do not depend on what was generated before.
func Generate(p Params) (*core.Instance, error) {
	rng := rand.New(rand.NewSource(p.Seed))
	return GenerateWith(p, rng)
}

// GenerateWith is Generate with a caller-supplied random source; p.Seed is
// only recorded on the instance.
func GenerateWith(p Params, rng Rand) (*core.Instance, error) {
	g := core.Grid{Width: p.Width, Height: p.Height}

	layout, err := GenerateLayout(g, p.Mode, p.ObstaclePercentage, rng)
	if err != nil {
		return nil, err
	}

	starts, goals, err := PlaceAgents(layout.StartPool, layout.GoalPool, p.NumAgents, layout.Shared, rng)
	if err != nil {
		return nil, err
	}

	inst := core.NewInstance(g, p.Horizon)
	inst.Mode = p.Mode
	inst.Seed = p.Seed
	inst.Obstacles = layout.Obstacles
	for i := range starts {
		inst.AddAgent(starts[i], goals[i])
	}
	return inst, nil
}
