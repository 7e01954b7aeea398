package batch

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/elektrokombinacija/mapf-lp-gen/internal/config"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/core"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/gen"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/lp"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/preview"
)

// Policy decides what happens when an instance cannot be placed.
type Policy int

const (
	Halt       Policy = iota // Stop the sweep and return the error
	SkipAndLog               // Log, record as skipped, continue
)

// Runner writes every run of a suite into OutDir.
type Runner struct {
	OutDir  string
	Policy  Policy
	Plotter preview.Plotter // Optional
	Log     *log.Logger     // Optional; receives one line per file
}

// NewRunner creates a runner that halts on the first infeasible instance.
func NewRunner(outDir string) *Runner {
	return &Runner{OutDir: outDir, Policy: Halt}
}

func (r *Runner) logf(format string, args ...any) {
	if r.Log != nil {
		r.Log.Printf(format, args...)
	}
}

// Run generates and writes the whole suite, then the manifest. I/O errors
// always stop the sweep; feasibility errors follow Policy.
func (r *Runner) Run(suite config.Suite) (*Manifest, error) {
	if err := os.MkdirAll(r.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	m := newManifest()
	for _, run := range suite.Runs() {
		entry, err := r.runOne(run)
		if err != nil {
			return m, err
		}
		m.Entries = append(m.Entries, entry)
	}

	if err := WriteManifest(r.OutDir, m); err != nil {
		return m, err
	}
	r.logf("Run %s: %d written, %d skipped", m.RunID, m.Written(), len(m.Entries)-m.Written())
	return m, nil
}

func (r *Runner) runOne(run config.Run) (Entry, error) {
	entry := Entry{Index: run.Index, Params: run.Params}

	inst, err := gen.Generate(run.Params)
	if err != nil {
		if errors.Is(err, core.ErrInfeasible) && r.Policy == SkipAndLog {
			r.logf("Skipped %s: %v", Stem(run), err)
			entry.Status = StatusSkipped
			entry.Error = err.Error()
			return entry, nil
		}
		return entry, fmt.Errorf("instance %s: %w", Stem(run), err)
	}

	name := FileName(run)
	path := filepath.Join(r.OutDir, name)
	if err := lp.WriteFile(path, inst); err != nil {
		return entry, err
	}

	if r.Plotter != nil {
		if err := r.Plotter.Plot(Stem(run), preview.ViewOf(inst)); err != nil {
			return entry, err
		}
	}

	r.logf("Generated: %s (%d agents, %dx%d %s, %d obstacles)",
		path, run.Params.NumAgents, run.Params.Width, run.Params.Height, run.Params.Mode, inst.Obstacles.Len())
	entry.File = name
	entry.Status = StatusWritten
	return entry, nil
}
