// Command mapfvis opens an interactive viewer for a MAPF instance.
//
// With -file it shows a previously written .lp instance; otherwise it
// generates one from the generation flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/elektrokombinacija/mapf-lp-gen/internal/config"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/core"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/gen"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/lp"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/vis"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/vis/state"
)

func main() {
	file := flag.String("file", "", "Open an existing .lp instance")
	width := flag.Int("width", 8, "Grid width")
	height := flag.Int("height", 8, "Grid height")
	agents := flag.Int("agents", 4, "Number of agents")
	obstacles := flag.Float64("obstacles", 0, "Obstacle percentage (random mode)")
	horizon := flag.Int("horizon", 100, "Time horizon")
	mode := flag.String("mode", "random", "Generation mode: random or warehouse")
	seed := flag.Int64("seed", config.DefaultSeed, "Random seed")
	flag.Parse()

	st, err := loadState(*file, func() (gen.Params, error) {
		m, err := core.ParseMode(*mode)
		if err != nil {
			return gen.Params{}, err
		}
		return gen.Params{
			Width:              *width,
			Height:             *height,
			NumAgents:          *agents,
			ObstaclePercentage: *obstacles,
			Horizon:            *horizon,
			Mode:               m,
			Seed:               *seed,
		}, nil
	})
	if err != nil {
		var fe *core.FeasibilityError
		if errors.As(err, &fe) {
			fmt.Fprintf(os.Stderr, "Infeasible parameters: %v\n", fe)
			os.Exit(1)
		}
		log.Fatal(err)
	}

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("MAPF Instance Viewer - "+st.Source),
			app.Size(unit.Dp(1000), unit.Dp(800)),
		)

		if err := vis.NewApp(st).Run(window); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loadState(path string, params func() (gen.Params, error)) (*state.State, error) {
	if path != "" {
		inst, err := lp.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return state.FromFile(inst, path), nil
	}
	p, err := params()
	if err != nil {
		return nil, err
	}
	if err := config.Validate(p); err != nil {
		return nil, err
	}
	return state.FromParams(p)
}
