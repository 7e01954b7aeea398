// Package state manages the visualization state.
package state

import (
	"fmt"

	"github.com/elektrokombinacija/mapf-lp-gen/internal/core"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/gen"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/preview"
)

// State holds everything the viewer shows.
type State struct {
	Instance *core.Instance
	Params   *gen.Params // Nil when the instance was loaded from a file
	Source   string      // File path or parameter summary

	ShowAgents bool
	Selected   int // Agent ID, 0 for none
	Hover      core.Cell
	HoverValid bool
	Err        error // Last reseed failure
}

// FromFile wraps an instance read from path.
func FromFile(inst *core.Instance, path string) *State {
	return &State{Instance: inst, Source: path, ShowAgents: true}
}

// FromParams generates an instance and wraps it.
func FromParams(p gen.Params) (*State, error) {
	inst, err := gen.Generate(p)
	if err != nil {
		return nil, err
	}
	s := &State{Instance: inst, ShowAgents: true}
	s.setParams(p)
	return s, nil
}

func (s *State) setParams(p gen.Params) {
	s.Params = &p
	s.Source = fmt.Sprintf("%s %dx%d, %d agents, seed %d", p.Mode, p.Width, p.Height, p.NumAgents, p.Seed)
}

// CanReseed reports whether the instance can be regenerated.
func (s *State) CanReseed() bool {
	return s.Params != nil
}

// Reseed regenerates with the next seed. On failure the current instance is
// kept and the error remembered for the status line.
func (s *State) Reseed() error {
	if s.Params == nil {
		return fmt.Errorf("instance was loaded from %s", s.Source)
	}
	p := *s.Params
	p.Seed++
	inst, err := gen.Generate(p)
	if err != nil {
		s.Err = err
		return err
	}
	s.Instance = inst
	s.Selected = 0
	s.Err = nil
	s.setParams(p)
	return nil
}

// ToggleAgents shows or hides agent markers.
func (s *State) ToggleAgents() {
	s.ShowAgents = !s.ShowAgents
	if !s.ShowAgents {
		s.Selected = 0
	}
}

// View returns what should be drawn.
func (s *State) View() preview.View {
	v := preview.ViewOf(s.Instance)
	if !s.ShowAgents {
		v.Starts, v.Goals = nil, nil
	}
	return v
}

// SelectAt selects the agent whose start or goal is c, or clears the selection.
func (s *State) SelectAt(c core.Cell) {
	s.Selected = 0
	if !s.ShowAgents {
		return
	}
	for _, a := range s.Instance.Agents {
		if a.Start == c || a.Goal == c {
			s.Selected = a.ID
			return
		}
	}
}

// Status describes the view for the status line.
func (s *State) Status() string {
	inst := s.Instance
	text := fmt.Sprintf("%s | %d obstacles | horizon %d", s.Source, inst.Obstacles.Len(), inst.Horizon)
	if s.HoverValid {
		text += fmt.Sprintf(" | cell (%d, %d)", s.Hover.X, s.Hover.Y)
	}
	if a := inst.AgentByID(s.Selected); a != nil {
		text += fmt.Sprintf(" | agent %d: (%d, %d) -> (%d, %d)", a.ID, a.Start.X, a.Start.Y, a.Goal.X, a.Goal.Y)
	}
	if s.Err != nil {
		text += " | " + s.Err.Error()
	}
	return text
}
