// Command mapfgen generates a single MAPF instance as logic-program facts.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/akamensky/argparse"

	"github.com/elektrokombinacija/mapf-lp-gen/internal/config"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/core"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/gen"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/lp"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/preview"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("mapfgen: ")

	parser := argparse.NewParser("mapfgen", "Generate a MAPF benchmark instance")

	width := parser.Int("W", "width", &argparse.Options{Default: 8, Help: "Grid width"})
	height := parser.Int("H", "height", &argparse.Options{Default: 8, Help: "Grid height"})
	agents := parser.Int("a", "agents", &argparse.Options{Default: 4, Help: "Number of agents"})
	obstacles := parser.Float("p", "obstacles", &argparse.Options{Default: 0.0, Help: "Obstacle percentage (random mode)"})
	horizon := parser.Int("T", "horizon", &argparse.Options{Default: 100, Help: "Time horizon"})
	mode := parser.Selector("m", "mode", []string{"random", "warehouse"}, &argparse.Options{Default: "random", Help: "Layout mode"})
	seed := parser.Int("s", "seed", &argparse.Options{Default: config.DefaultSeed, Help: "Random seed"})
	output := parser.String("o", "output", &argparse.Options{Help: "Output .lp file (stdout when empty)"})
	pngDir := parser.String("g", "png", &argparse.Options{Help: "Directory for a PNG preview"})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Fprint(os.Stderr, parser.Usage(err))
		os.Exit(2)
	}

	m, err := core.ParseMode(*mode)
	if err != nil {
		log.Fatal(err)
	}
	params := gen.Params{
		Width:              *width,
		Height:             *height,
		NumAgents:          *agents,
		ObstaclePercentage: *obstacles,
		Horizon:            *horizon,
		Mode:               m,
		Seed:               int64(*seed),
	}
	if err := config.Validate(params); err != nil {
		log.Fatal(err)
	}

	inst, err := gen.Generate(params)
	if err != nil {
		var fe *core.FeasibilityError
		if errors.As(err, &fe) {
			log.Fatalf("cannot place %d agents on a %dx%d %s grid: %v", params.NumAgents, params.Width, params.Height, params.Mode, err)
		}
		log.Fatal(err)
	}

	if *output == "" {
		if err := lp.Encode(os.Stdout, inst); err != nil {
			log.Fatal(err)
		}
	} else {
		if err := lp.WriteFile(*output, inst); err != nil {
			log.Fatal(err)
		}
		fmt.Fprintln(os.Stderr, *output)
	}

	if *pngDir != "" {
		if err := os.MkdirAll(*pngDir, 0755); err != nil {
			log.Fatal(err)
		}
		plotter := &preview.PNGPlotter{Dir: *pngDir}
		if err := plotter.Plot(previewName(*output, params), preview.ViewOf(inst)); err != nil {
			log.Fatal(err)
		}
	}
}

// previewName reuses the output file stem, or describes the parameters.
func previewName(output string, p gen.Params) string {
	if output != "" {
		return strings.TrimSuffix(filepath.Base(output), filepath.Ext(output))
	}
	return fmt.Sprintf("%s_%dx%d_a%d_s%d", p.Mode, p.Width, p.Height, p.NumAgents, p.Seed)
}
