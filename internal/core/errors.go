package core

import (
	"errors"
	"fmt"
)

// ErrInfeasible matches any FeasibilityError via errors.Is.
var ErrInfeasible = errors.New("infeasible instance")

// FeasibilityError reports a cell pool too small for the requested agents.
type FeasibilityError struct {
	Pool string // "grid", "free", "start" or "goal"
	Need int
	Have int
}

func (e *FeasibilityError) Error() string {
	return fmt.Sprintf("not enough %s cells: need %d, have %d", e.Pool, e.Need, e.Have)
}

// Is lets errors.Is(err, ErrInfeasible) match.
func (e *FeasibilityError) Is(target error) bool {
	return target == ErrInfeasible
}
