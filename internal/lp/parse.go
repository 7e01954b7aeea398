package lp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/elektrokombinacija/mapf-lp-gen/internal/core"
)

// SyntaxError reports a line that is not a recognised fact.
type SyntaxError struct {
	Line int
	Text string
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Msg, e.Text)
}

var (
	rangeFact = regexp.MustCompile(`^(agent|rangeX|rangeY|time)\(\s*1\s*\.\.\s*(\d+)\s*\)\.$`)
	cellFact  = regexp.MustCompile(`^(obstacle|at|goal)\(\s*(\d+(?:\s*,\s*\d+)*)\s*\)\.$`)
)

// Parse reads instance facts. Fact order does not matter; blank lines and
// lines starting with '%' are skipped. The mode is not part of the format, so
// parsed instances report ModeRandom and seed 0.
func Parse(r io.Reader) (*core.Instance, error) {
	var (
		numAgents, width, height, horizon int
		seen                              = make(map[string]bool)
		obstacles                         = core.NewCellSet()
		starts                            = make(map[int]core.Cell)
		goals                             = make(map[int]core.Cell)
	)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		if m := rangeFact.FindStringSubmatch(line); m != nil {
			n, err := strconv.Atoi(m[2])
			if err != nil {
				return nil, &SyntaxError{Line: lineNo, Text: line, Msg: err.Error()}
			}
			if seen[m[1]] {
				return nil, &SyntaxError{Line: lineNo, Text: line, Msg: "duplicate " + m[1] + " fact"}
			}
			seen[m[1]] = true
			switch m[1] {
			case "agent":
				numAgents = n
			case "rangeX":
				width = n
			case "rangeY":
				height = n
			case "time":
				horizon = n
			}
			continue
		}

		m := cellFact.FindStringSubmatch(line)
		if m == nil {
			return nil, &SyntaxError{Line: lineNo, Text: line, Msg: "unrecognised fact"}
		}
		args, err := atoiList(m[2])
		if err != nil {
			return nil, &SyntaxError{Line: lineNo, Text: line, Msg: err.Error()}
		}

		switch m[1] {
		case "obstacle":
			if len(args) != 2 {
				return nil, &SyntaxError{Line: lineNo, Text: line, Msg: "obstacle takes 2 arguments"}
			}
			obstacles.Put(core.Cell{X: args[0], Y: args[1]})
		case "at":
			if len(args) != 4 {
				return nil, &SyntaxError{Line: lineNo, Text: line, Msg: "at takes 4 arguments"}
			}
			if args[3] != 0 {
				return nil, &SyntaxError{Line: lineNo, Text: line, Msg: "start position must be at time 0"}
			}
			if _, dup := starts[args[0]]; dup {
				return nil, &SyntaxError{Line: lineNo, Text: line, Msg: "duplicate start"}
			}
			starts[args[0]] = core.Cell{X: args[1], Y: args[2]}
		case "goal":
			if len(args) != 3 {
				return nil, &SyntaxError{Line: lineNo, Text: line, Msg: "goal takes 3 arguments"}
			}
			if _, dup := goals[args[0]]; dup {
				return nil, &SyntaxError{Line: lineNo, Text: line, Msg: "duplicate goal"}
			}
			goals[args[0]] = core.Cell{X: args[1], Y: args[2]}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	for _, name := range []string{"agent", "rangeX", "rangeY", "time"} {
		if !seen[name] {
			return nil, fmt.Errorf("missing %s fact", name)
		}
	}

	inst := core.NewInstance(core.Grid{Width: width, Height: height}, horizon)
	inst.Obstacles = obstacles
	for id := 1; id <= numAgents; id++ {
		start, ok := starts[id]
		if !ok {
			return nil, fmt.Errorf("agent %d has no start", id)
		}
		goal, ok := goals[id]
		if !ok {
			return nil, fmt.Errorf("agent %d has no goal", id)
		}
		inst.AddAgent(start, goal)
	}
	if len(starts) != numAgents || len(goals) != numAgents {
		return nil, fmt.Errorf("positions given for agents outside 1..%d", numAgents)
	}
	return inst, nil
}

// ReadFile parses the instance stored at path.
func ReadFile(path string) (*core.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	inst, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return inst, nil
}

func atoiList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
