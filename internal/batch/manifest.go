package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/elektrokombinacija/mapf-lp-gen/internal/gen"
)

// ManifestName is the file a run's manifest is written to.
const ManifestName = "manifest.json"

// Status of one manifest entry.
type Status string

const (
	StatusWritten Status = "written"
	StatusSkipped Status = "skipped" // Infeasible, skipped by policy
)

// Entry records one run of the sweep.
type Entry struct {
	Index  int        `json:"index"`
	File   string     `json:"file,omitempty"`
	Params gen.Params `json:"params"`
	Status Status     `json:"status"`
	Error  string     `json:"error,omitempty"`
}

// Manifest describes everything a sweep produced.
type Manifest struct {
	RunID     string  `json:"run_id"`
	Generated string  `json:"generated"`
	Entries   []Entry `json:"entries"`
}

func newManifest() *Manifest {
	return &Manifest{
		RunID:     uuid.New().String(),
		Generated: time.Now().UTC().Format(time.RFC3339),
	}
}

// Written counts entries that produced a file.
func (m *Manifest) Written() int {
	n := 0
	for _, e := range m.Entries {
		if e.Status == StatusWritten {
			n++
		}
	}
	return n
}

// WriteManifest stores m as indented JSON in dir.
func WriteManifest(dir string, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// ReadManifest loads the manifest stored in dir.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}
