// Package main sweeps MAPF benchmark parameters and writes one .lp instance
// per combination, plus a manifest.json describing the run.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/elektrokombinacija/mapf-lp-gen/internal/batch"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/config"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/preview"
)

func main() {
	suitePath := flag.String("suite", "", "JSON suite file (default: built-in benchmark suite)")
	outputDir := flag.String("output", "", "Output directory (overrides the suite's output_dir)")
	pngDir := flag.String("png", "", "Also write PNG previews into this directory")
	skip := flag.Bool("skip-infeasible", false, "Log and skip instances that cannot be placed instead of stopping")
	quiet := flag.Bool("quiet", false, "Do not print one line per file")

	flag.Parse()

	suite := config.DefaultSuite()
	if *suitePath != "" {
		s, err := config.LoadSuite(*suitePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading suite: %v\n", err)
			os.Exit(1)
		}
		suite = s
	}
	if *outputDir != "" {
		suite.OutputDir = *outputDir
	}

	runner := batch.NewRunner(suite.OutputDir)
	if *skip {
		runner.Policy = batch.SkipAndLog
	}
	if !*quiet {
		runner.Log = log.New(os.Stdout, "", 0)
	}
	if *pngDir != "" {
		if err := os.MkdirAll(*pngDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating preview directory: %v\n", err)
			os.Exit(1)
		}
		runner.Plotter = &preview.PNGPlotter{Dir: *pngDir}
	}

	m, err := runner.Run(suite)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%d instances in %s (run %s)\n", m.Written(), suite.OutputDir, m.RunID)
}
