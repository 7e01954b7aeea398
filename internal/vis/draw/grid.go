// Package draw provides rendering functions for the grid viewer.
package draw

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/elektrokombinacija/mapf-lp-gen/internal/core"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/preview"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/vis/interact"
)

// Colors for grid cells
var (
	ColorCellFree     = color.NRGBA{R: 235, G: 235, B: 235, A: 255}
	ColorCellObstacle = color.NRGBA{R: 20, G: 20, B: 24, A: 255}
	ColorGridLine     = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	ColorMarkerEdge   = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	ColorSelected     = color.NRGBA{R: 255, G: 200, B: 80, A: 255}
)

// CellRect returns the screen rectangle of c. Cell (1, 1) is bottom left.
func CellRect(g core.Grid, camera *interact.Camera, c core.Cell) (minX, minY, maxX, maxY float32) {
	minX, minY = camera.WorldToScreen(float64(c.X-1), float64(g.Height-c.Y))
	maxX, maxY = camera.WorldToScreen(float64(c.X), float64(g.Height-c.Y+1))
	return
}

// CellAt finds the cell under a screen point.
func CellAt(g core.Grid, camera *interact.Camera, screenX, screenY float32) (core.Cell, bool) {
	wx, wy := camera.ScreenToWorld(screenX, screenY)
	c := core.Cell{
		X: int(math.Floor(wx)) + 1,
		Y: g.Height - int(math.Floor(wy)),
	}
	return c, g.Contains(c)
}

// DrawView renders cells, grid lines and agent markers.
func DrawView(gtx layout.Context, v preview.View, camera *interact.Camera, selected int) {
	for _, c := range v.Grid.Cells() {
		col := ColorCellFree
		if v.Obstacles.Has(c) {
			col = ColorCellObstacle
		}
		x0, y0, x1, y1 := CellRect(v.Grid, camera, c)
		fillRect(gtx, x0, y0, x1, y1, col)
	}
	drawGridLines(gtx, v.Grid, camera)

	if !v.HasAgents() {
		return
	}
	colors := preview.Palette(len(v.Starts))
	for i := range v.Starts {
		if i >= len(v.Goals) {
			break
		}
		DrawAgent(gtx, v.Grid, camera, v.Starts[i], v.Goals[i], colors[i], selected == i+1)
	}
}

// DrawAgent draws a circle on the start cell and a star on the goal cell.
func DrawAgent(gtx layout.Context, g core.Grid, camera *interact.Camera, start, goal core.Cell, col color.NRGBA, selected bool) {
	size := camera.Zoom
	circleR, starR := size*0.35, size*0.48
	if g.Width >= 10 {
		circleR, starR = size*0.25, size*0.36
	}

	edge := ColorMarkerEdge
	if selected {
		edge = ColorSelected
		circleR *= 1.15
		starR *= 1.15
	}

	sx, sy := cellCenter(g, camera, start)
	drawFilledCircle(gtx, sx, sy, circleR+1, edge)
	drawFilledCircle(gtx, sx, sy, circleR, col)

	gx, gy := cellCenter(g, camera, goal)
	drawStar(gtx, gx, gy, starR+1.5, edge)
	drawStar(gtx, gx, gy, starR, col)
}

func cellCenter(g core.Grid, camera *interact.Camera, c core.Cell) (x, y float32) {
	x0, y0, x1, y1 := CellRect(g, camera, c)
	return (x0 + x1) / 2, (y0 + y1) / 2
}

func drawGridLines(gtx layout.Context, g core.Grid, camera *interact.Camera) {
	left, top := camera.WorldToScreen(0, 0)
	right, bottom := camera.WorldToScreen(float64(g.Width), float64(g.Height))

	for x := 0; x <= g.Width; x++ {
		sx, _ := camera.WorldToScreen(float64(x), 0)
		rect := image.Rect(int(sx), int(top), int(sx)+1, int(bottom))
		paint.FillShape(gtx.Ops, ColorGridLine, clip.Rect(rect).Op())
	}
	for y := 0; y <= g.Height; y++ {
		_, sy := camera.WorldToScreen(0, float64(y))
		rect := image.Rect(int(left), int(sy), int(right), int(sy)+1)
		paint.FillShape(gtx.Ops, ColorGridLine, clip.Rect(rect).Op())
	}
}

func fillRect(gtx layout.Context, x0, y0, x1, y1 float32, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(x0, y0))
	path.LineTo(f32.Pt(x1, y0))
	path.LineTo(f32.Pt(x1, y1))
	path.LineTo(f32.Pt(x0, y1))
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

func drawFilledCircle(gtx layout.Context, cx, cy, radius float32, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(cx+radius, cy))

	segments := 20
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / float64(segments)
		path.LineTo(f32.Pt(cx+radius*float32(math.Cos(angle)), cy+radius*float32(math.Sin(angle))))
	}
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

func drawStar(gtx layout.Context, cx, cy, radius float32, col color.NRGBA) {
	inner := radius * 0.45

	var path clip.Path
	path.Begin(gtx.Ops)
	for i := 0; i < 10; i++ {
		r := radius
		if i%2 == 1 {
			r = inner
		}
		angle := -math.Pi/2 + float64(i)*math.Pi/5
		pt := f32.Pt(cx+r*float32(math.Cos(angle)), cy+r*float32(math.Sin(angle)))
		if i == 0 {
			path.MoveTo(pt)
		} else {
			path.LineTo(pt)
		}
	}
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}
