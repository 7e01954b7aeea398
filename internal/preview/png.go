package preview

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/elektrokombinacija/mapf-lp-gen/internal/core"
)

// Preview colors
var (
	ColorFree     = color.White
	ColorObstacle = color.Black
	ColorGridLine = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	ColorOutline  = color.Black
)

// DefaultCellSize is the pixel size of one cell.
const DefaultCellSize = 32

// PNGPlotter writes one PNG per view into Dir.
type PNGPlotter struct {
	Dir      string
	CellSize int // Pixels per cell; DefaultCellSize when zero
}

// Plot renders v to Dir/name.png.
func (p *PNGPlotter) Plot(name string, v View) error {
	path := filepath.Join(p.Dir, name+".png")
	dc := draw(v, p.cellSize())
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save preview %s: %w", path, err)
	}
	return nil
}

func (p *PNGPlotter) cellSize() int {
	if p.CellSize <= 0 {
		return DefaultCellSize
	}
	return p.CellSize
}

// Render draws v into an image with the given cell size.
func Render(v View, cellSize int) image.Image {
	return draw(v, cellSize).Image()
}

// draw lays the grid out with y pointing up: cell (1, 1) is bottom left.
func draw(v View, cs int) *gg.Context {
	w, h := v.Grid.Width, v.Grid.Height
	dc := gg.NewContext(w*cs, h*cs)
	size := float64(cs)

	dc.SetColor(ColorFree)
	dc.Clear()

	for _, c := range v.Grid.Cells() {
		x, y := cellOrigin(v.Grid, c, size)
		if v.Obstacles.Has(c) {
			dc.SetColor(ColorObstacle)
			dc.DrawRectangle(x, y, size, size)
			dc.Fill()
		}
		dc.SetColor(ColorGridLine)
		dc.SetLineWidth(1)
		dc.DrawRectangle(x+0.5, y+0.5, size-1, size-1)
		dc.Stroke()
	}

	if !v.HasAgents() {
		return dc
	}

	// Smaller markers once the grid gets wide.
	circleR, starR := size*0.35, size*0.48
	if w >= 10 {
		circleR, starR = size*0.25, size*0.36
	}

	colors := Palette(len(v.Starts))
	for i := range v.Starts {
		if i >= len(v.Goals) {
			break
		}
		col := colors[i]

		sx, sy := cellCenter(v.Grid, v.Starts[i], size)
		dc.DrawCircle(sx, sy, circleR)
		fillOutlined(dc, col)

		gx, gy := cellCenter(v.Grid, v.Goals[i], size)
		drawStar(dc, gx, gy, starR)
		fillOutlined(dc, col)
	}
	return dc
}

func cellOrigin(g core.Grid, c core.Cell, size float64) (x, y float64) {
	return float64(c.X-1) * size, float64(g.Height-c.Y) * size
}

func cellCenter(g core.Grid, c core.Cell, size float64) (x, y float64) {
	x, y = cellOrigin(g, c, size)
	return x + size/2, y + size/2
}

func fillOutlined(dc *gg.Context, col color.Color) {
	dc.SetColor(col)
	dc.FillPreserve()
	dc.SetColor(ColorOutline)
	dc.SetLineWidth(1)
	dc.Stroke()
}

// drawStar adds a five-pointed star path.
func drawStar(dc *gg.Context, cx, cy, r float64) {
	inner := r * 0.45
	for i := 0; i < 10; i++ {
		radius := r
		if i%2 == 1 {
			radius = inner
		}
		angle := -math.Pi/2 + float64(i)*math.Pi/5
		x := cx + radius*math.Cos(angle)
		y := cy + radius*math.Sin(angle)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
}
