// Package gen generates MAPF instances: obstacle layouts and agent placement.
package gen

import (
	"fmt"
	"math"

	"github.com/elektrokombinacija/mapf-lp-gen/internal/core"
)

// Layout is the obstacle set of a grid plus the pools agents are drawn from.
type Layout struct {
	Obstacles core.CellSet
	StartPool core.CellSet
	GoalPool  core.CellSet
	Shared    bool // StartPool and GoalPool are the same pool
}

// ObstacleCount returns how many obstacles random mode places:
// round(area * p / 100) with ties to even.
func ObstacleCount(g core.Grid, obstaclePercentage float64) int {
	return int(math.RoundToEven(float64(g.Area()) * (obstaclePercentage / 100.0)))
}

// GenerateLayout lays out obstacles and agent pools for the given mode.
// Warehouse layouts ignore obstaclePercentage and never touch rng.
func GenerateLayout(g core.Grid, mode core.Mode, obstaclePercentage float64, rng Rand) (Layout, error) {
	switch mode {
	case core.ModeRandom:
		return randomLayout(g, obstaclePercentage, rng)
	case core.ModeWarehouse:
		return warehouseLayout(g), nil
	default:
		panic(fmt.Sprintf("gen: unknown mode %d", int(mode)))
	}
}

func randomLayout(g core.Grid, obstaclePercentage float64, rng Rand) (Layout, error) {
	n := ObstacleCount(g, obstaclePercentage)
	if n < 0 {
		n = 0
	}
	if n > g.Area() {
		return Layout{}, &core.FeasibilityError{Pool: "grid", Need: n, Have: g.Area()}
	}

	obstacles := core.NewCellSet()
	if n > 0 {
		obstacles = core.NewCellSet(sample(g.Cells(), n, rng)...)
	}
	free := g.Difference(obstacles)

	return Layout{
		Obstacles: obstacles,
		StartPool: free,
		GoalPool:  free,
		Shared:    true,
	}, nil
}

// warehouseLayout models storage racks between aisles. Agents are staged in
// the two leftmost columns and head for the two rightmost columns.
func warehouseLayout(g core.Grid) Layout {
	free := core.NewCellSet()
	for _, c := range g.Cells() {
		if c.X <= 2 || c.X >= g.Width-1 {
			free.Put(c)
		}
	}

	// Cross aisles: rows 2, 5, 8, ...
	for y := 1; y <= g.Height; y++ {
		if (y+1)%3 == 0 {
			for x := 1; x <= g.Width; x++ {
				free.Put(core.Cell{X: x, Y: y})
			}
		}
	}

	// Vertical aisles through the rack block: columns 8, 14, 20, ...
	for x := 3; x <= g.Width-2; x++ {
		if (x-2)%6 == 0 {
			for y := 1; y <= g.Height; y++ {
				free.Put(core.Cell{X: x, Y: y})
			}
		}
	}

	return Layout{
		Obstacles: g.Difference(free),
		StartPool: free.Filter(func(c core.Cell) bool { return c.X <= 2 }),
		GoalPool:  free.Filter(func(c core.Cell) bool { return c.X >= g.Width-1 }),
	}
}
