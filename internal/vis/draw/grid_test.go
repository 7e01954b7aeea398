package draw

import (
	"testing"

	"github.com/elektrokombinacija/mapf-lp-gen/internal/core"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/vis/interact"
)

func TestCellRectAndCellAt(t *testing.T) {
	g := core.Grid{Width: 5, Height: 4}
	cam := &interact.Camera{OffsetX: 10, OffsetY: 20, Zoom: 10}

	// (1, 1) is the bottom-left cell.
	x0, y0, x1, y1 := CellRect(g, cam, core.Cell{X: 1, Y: 1})
	if x0 != 10 || y0 != 50 || x1 != 20 || y1 != 60 {
		t.Errorf("CellRect(1,1) = %v %v %v %v", x0, y0, x1, y1)
	}

	for _, c := range g.Cells() {
		x0, y0, x1, y1 := CellRect(g, cam, c)
		got, ok := CellAt(g, cam, (x0+x1)/2, (y0+y1)/2)
		if !ok || got != c {
			t.Errorf("CellAt(center of %v) = %v, %v", c, got, ok)
		}
	}

	if _, ok := CellAt(g, cam, 5, 5); ok {
		t.Error("point left of grid should be outside")
	}
	if _, ok := CellAt(g, cam, 30, 65); ok {
		t.Error("point below grid should be outside")
	}
}
