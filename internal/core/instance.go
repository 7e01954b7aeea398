package core

import "fmt"

// Agent is a numbered start/goal assignment. IDs run 1..n.
type Agent struct {
	ID    int
	Start Cell
	Goal  Cell
}

// Instance represents a generated MAPF problem.
// I = (G, T, O, A)
type Instance struct {
	Grid      Grid
	Horizon   int // Time steps 1..Horizon
	Mode      Mode
	Seed      int64
	Obstacles CellSet
	Agents    []Agent
}

// NewInstance creates an instance with no obstacles and no agents.
func NewInstance(g Grid, horizon int) *Instance {
	return &Instance{
		Grid:      g,
		Horizon:   horizon,
		Obstacles: NewCellSet(),
	}
}

// AddAgent appends an agent numbered after the existing ones.
func (inst *Instance) AddAgent(start, goal Cell) {
	inst.Agents = append(inst.Agents, Agent{ID: len(inst.Agents) + 1, Start: start, Goal: goal})
}

// Starts returns start cells in agent order.
func (inst *Instance) Starts() []Cell {
	cells := make([]Cell, len(inst.Agents))
	for i, a := range inst.Agents {
		cells[i] = a.Start
	}
	return cells
}

// Goals returns goal cells in agent order.
func (inst *Instance) Goals() []Cell {
	cells := make([]Cell, len(inst.Agents))
	for i, a := range inst.Agents {
		cells[i] = a.Goal
	}
	return cells
}

// AgentByID finds agent by ID.
func (inst *Instance) AgentByID(id int) *Agent {
	if id < 1 || id > len(inst.Agents) {
		return nil
	}
	return &inst.Agents[id-1]
}

// Validate checks instance consistency.
// An agent may start on its own goal: narrow warehouse grids share pool cells.
func (inst *Instance) Validate() error {
	if inst.Grid.Width < 1 || inst.Grid.Height < 1 {
		return fmt.Errorf("grid %dx%d is empty", inst.Grid.Width, inst.Grid.Height)
	}
	if inst.Horizon < 1 {
		return fmt.Errorf("horizon %d is not positive", inst.Horizon)
	}
	for _, c := range inst.Obstacles.Sorted() {
		if !inst.Grid.Contains(c) {
			return fmt.Errorf("obstacle %v outside %dx%d grid", c, inst.Grid.Width, inst.Grid.Height)
		}
	}

	starts := make(map[Cell]int)
	goals := make(map[Cell]int)
	for i, a := range inst.Agents {
		if a.ID != i+1 {
			return fmt.Errorf("agent at position %d has id %d", i+1, a.ID)
		}
		for _, c := range []Cell{a.Start, a.Goal} {
			if !inst.Grid.Contains(c) {
				return fmt.Errorf("agent %d: cell %v outside grid", a.ID, c)
			}
			if inst.Obstacles.Has(c) {
				return fmt.Errorf("agent %d: cell %v is an obstacle", a.ID, c)
			}
		}
		if other, ok := starts[a.Start]; ok {
			return fmt.Errorf("agents %d and %d share start %v", other, a.ID, a.Start)
		}
		if other, ok := goals[a.Goal]; ok {
			return fmt.Errorf("agents %d and %d share goal %v", other, a.ID, a.Goal)
		}
		starts[a.Start] = a.ID
		goals[a.Goal] = a.ID
	}
	return nil
}
