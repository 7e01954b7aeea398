// Package lp reads and writes MAPF instances as logic-program facts.
//
// The layout is fixed: range facts, a blank line, obstacle facts sorted by
// (x, y), a blank line, at/4 facts in agent order, a blank line, goal/3
// facts. Lines are joined with "\n" and there is no trailing newline.
package lp

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/elektrokombinacija/mapf-lp-gen/internal/core"
)

// Lines renders an instance as fact lines.
func Lines(inst *core.Instance) []string {
	obstacles := inst.Obstacles.Sorted()
	lines := make([]string, 0, 7+len(obstacles)+2*len(inst.Agents))

	lines = append(lines,
		fmt.Sprintf("agent(1..%d).", len(inst.Agents)),
		fmt.Sprintf("rangeX(1..%d).", inst.Grid.Width),
		fmt.Sprintf("rangeY(1..%d).", inst.Grid.Height),
		fmt.Sprintf("time(1..%d).", inst.Horizon),
		"",
	)
	for _, c := range obstacles {
		lines = append(lines, fmt.Sprintf("obstacle(%d, %d).", c.X, c.Y))
	}
	lines = append(lines, "")
	for _, a := range inst.Agents {
		lines = append(lines, fmt.Sprintf("at(%d, %d, %d, 0).", a.ID, a.Start.X, a.Start.Y))
	}
	lines = append(lines, "")
	for _, a := range inst.Agents {
		lines = append(lines, fmt.Sprintf("goal(%d, %d, %d).", a.ID, a.Goal.X, a.Goal.Y))
	}
	return lines
}

// Marshal returns the fact text of an instance.
func Marshal(inst *core.Instance) []byte {
	return []byte(strings.Join(Lines(inst), "\n"))
}

// Encode writes the fact text of an instance to w.
func Encode(w io.Writer, inst *core.Instance) error {
	_, err := w.Write(Marshal(inst))
	return err
}

// WriteFile writes an instance to path, replacing any existing file.
func WriteFile(path string, inst *core.Instance) error {
	if err := os.WriteFile(path, Marshal(inst), 0644); err != nil {
		return fmt.Errorf("write instance: %w", err)
	}
	return nil
}
