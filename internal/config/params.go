// Package config holds generation defaults, parameter checks and sweep suites.
package config

import (
	"fmt"
	"math"

	"github.com/elektrokombinacija/mapf-lp-gen/internal/gen"
)

// DefaultSeed is the seed used when none is given.
const DefaultSeed = 42

// ParamError reports an out-of-range generation parameter.
type ParamError struct {
	Field  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks that p describes a generatable instance shape.
// Whether enough free cells exist is decided by the generator itself.
func Validate(p gen.Params) error {
	switch {
	case p.Width < 1:
		return &ParamError{Field: "width", Reason: fmt.Sprintf("%d is not positive", p.Width)}
	case p.Height < 1:
		return &ParamError{Field: "height", Reason: fmt.Sprintf("%d is not positive", p.Height)}
	case p.NumAgents < 1:
		return &ParamError{Field: "agents", Reason: fmt.Sprintf("%d is not positive", p.NumAgents)}
	case p.Horizon < 1:
		return &ParamError{Field: "horizon", Reason: fmt.Sprintf("%d is not positive", p.Horizon)}
	case math.IsNaN(p.ObstaclePercentage) || p.ObstaclePercentage < 0 || p.ObstaclePercentage > 100:
		return &ParamError{Field: "obstacle percentage", Reason: fmt.Sprintf("%v is outside [0, 100]", p.ObstaclePercentage)}
	}
	return nil
}
