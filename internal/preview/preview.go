// Package preview renders generated grids for visual inspection.
//
// Generation never depends on this package; callers hand a View to any
// Plotter they like.
package preview

import (
	"image/color"

	"github.com/elektrokombinacija/mapf-lp-gen/internal/core"
)

// View is what a plotter needs to draw: the grid, its obstacles and,
// optionally, agent starts and goals (matched by index).
type View struct {
	Grid      core.Grid
	Obstacles core.CellSet
	Starts    []core.Cell
	Goals     []core.Cell
}

// ViewOf builds the view of a generated instance.
func ViewOf(inst *core.Instance) View {
	return View{
		Grid:      inst.Grid,
		Obstacles: inst.Obstacles,
		Starts:    inst.Starts(),
		Goals:     inst.Goals(),
	}
}

// HasAgents reports whether agent markers should be drawn.
func (v View) HasAgents() bool {
	return len(v.Starts) > 0 && len(v.Goals) > 0
}

// Plotter draws a view. name identifies the instance, e.g. its file stem.
type Plotter interface {
	Plot(name string, v View) error
}

// tab20 is the 20-color qualitative palette used for agent markers.
var tab20 = []color.NRGBA{
	{31, 119, 180, 255}, {174, 199, 232, 255}, {255, 127, 14, 255}, {255, 187, 120, 255},
	{44, 160, 44, 255}, {152, 223, 138, 255}, {214, 39, 40, 255}, {255, 152, 150, 255},
	{148, 103, 189, 255}, {197, 176, 213, 255}, {140, 86, 75, 255}, {196, 156, 148, 255},
	{227, 119, 194, 255}, {247, 182, 210, 255}, {127, 127, 127, 255}, {199, 199, 199, 255},
	{188, 189, 34, 255}, {219, 219, 141, 255}, {23, 190, 207, 255}, {158, 218, 229, 255},
}

// Palette returns n agent colors spread over the palette.
// Beyond 20 agents colors repeat.
func Palette(n int) []color.NRGBA {
	colors := make([]color.NRGBA, n)
	for i := range colors {
		if n <= len(tab20) {
			colors[i] = tab20[i*len(tab20)/n]
		} else {
			colors[i] = tab20[i%len(tab20)]
		}
	}
	return colors
}
