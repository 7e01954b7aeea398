package core

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Cell is a grid coordinate, 1-indexed in both axes.
type Cell struct {
	X, Y int
}

// Less orders cells by x, then y.
func (c Cell) Less(o Cell) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// Grid is a Width x Height rectangle of cells.
type Grid struct {
	Width, Height int
}

// Area returns the number of cells.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Contains reports whether c lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 1 && c.X <= g.Width && c.Y >= 1 && c.Y <= g.Height
}

// Cells enumerates every cell in (x, y) order.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Area())
	for x := 1; x <= g.Width; x++ {
		for y := 1; y <= g.Height; y++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}

// CellSet is an unordered set of cells. The zero value is an empty set.
// Anything that must be reproducible iterates over Sorted().
type CellSet struct {
	s     mapset.Set[Cell]
	ready bool
}

// NewCellSet creates a set holding the given cells.
func NewCellSet(cells ...Cell) CellSet {
	cs := CellSet{s: mapset.New[Cell](), ready: true}
	for _, c := range cells {
		cs.s.Put(c)
	}
	return cs
}

// Put adds c to the set.
func (cs *CellSet) Put(c Cell) {
	if !cs.ready {
		*cs = NewCellSet()
	}
	cs.s.Put(c)
}

// Remove deletes c from the set.
func (cs CellSet) Remove(c Cell) {
	cs.s.Remove(c)
}

// Has reports membership.
func (cs CellSet) Has(c Cell) bool {
	return cs.s.Has(c)
}

// Len returns the number of cells.
func (cs CellSet) Len() int {
	return cs.s.Size()
}

// Sorted returns the cells in ascending (x, y) order.
func (cs CellSet) Sorted() []Cell {
	cells := make([]Cell, 0, cs.Len())
	cs.s.Each(func(c Cell) {
		cells = append(cells, c)
	})
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
	return cells
}

// Filter returns the subset of cells satisfying keep.
func (cs CellSet) Filter(keep func(Cell) bool) CellSet {
	out := NewCellSet()
	for _, c := range cs.Sorted() {
		if keep(c) {
			out.Put(c)
		}
	}
	return out
}

// Difference returns the cells of the grid not in cs.
func (g Grid) Difference(cs CellSet) CellSet {
	out := NewCellSet()
	for _, c := range g.Cells() {
		if !cs.Has(c) {
			out.Put(c)
		}
	}
	return out
}
