package gen

import "github.com/elektrokombinacija/mapf-lp-gen/internal/core"

// Rand is the randomness the generator needs. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// PlaceAgents draws start and goal cells for numAgents agents.
//
// With sameDraw the two pools must be the same: 2*numAgents distinct cells
// are drawn at once, the first half become starts and the rest goals.
// Otherwise starts and goals are drawn independently from their own pools.
func PlaceAgents(startPool, goalPool core.CellSet, numAgents int, sameDraw bool, rng Rand) (starts, goals []core.Cell, err error) {
	if numAgents < 0 {
		numAgents = 0
	}
	if sameDraw {
		if startPool.Len() < 2*numAgents {
			return nil, nil, &core.FeasibilityError{Pool: "free", Need: 2 * numAgents, Have: startPool.Len()}
		}
		cells := sample(startPool.Sorted(), 2*numAgents, rng)
		return cells[:numAgents], cells[numAgents:], nil
	}

	if startPool.Len() < numAgents {
		return nil, nil, &core.FeasibilityError{Pool: "start", Need: numAgents, Have: startPool.Len()}
	}
	if goalPool.Len() < numAgents {
		return nil, nil, &core.FeasibilityError{Pool: "goal", Need: numAgents, Have: goalPool.Len()}
	}
	starts = sample(startPool.Sorted(), numAgents, rng)
	goals = sample(goalPool.Sorted(), numAgents, rng)
	return starts, goals, nil
}

// sample draws k distinct cells from pool without replacement, in draw order.
// pool is not modified.
func sample(pool []core.Cell, k int, rng Rand) []core.Cell {
	cells := make([]core.Cell, len(pool))
	copy(cells, pool)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(cells)-i)
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells[:k:k]
}
