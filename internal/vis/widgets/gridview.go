// Package widgets provides Gio UI widgets for the viewer.
package widgets

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/elektrokombinacija/mapf-lp-gen/internal/vis/draw"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/vis/interact"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/vis/state"
)

// GridView shows the instance grid with pan, zoom and agent selection.
type GridView struct {
	state  *state.State
	camera *interact.Camera
}

// NewGridView creates a grid view widget.
func NewGridView(st *state.State, camera *interact.Camera) *GridView {
	return &GridView{state: st, camera: camera}
}

// Layout renders the grid view.
func (w *GridView) Layout(gtx layout.Context) layout.Dimensions {
	bounds := gtx.Constraints.Max
	defer clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops).Pop()

	paint.Fill(gtx.Ops, color.NRGBA{R: 25, G: 28, B: 32, A: 255})

	g := w.state.Instance.Grid
	if !w.camera.Fitted {
		w.camera.FitBounds(float64(g.Width), float64(g.Height), float32(bounds.X), float32(bounds.Y), 24)
	}

	w.handlePointerEvents(gtx)

	draw.DrawView(gtx, w.state.View(), w.camera, w.state.Selected)

	return layout.Dimensions{Size: bounds}
}

func (w *GridView) handlePointerEvents(gtx layout.Context) {
	area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Push(gtx.Ops)
	event.Op(gtx.Ops, w)
	area.Pop()

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  w,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll | pointer.Move,
			ScrollY: pointer.ScrollRange{Min: -100, Max: 100},
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			w.handlePointerEvent(gtx, pe)
		}
	}
}

func (w *GridView) handlePointerEvent(gtx layout.Context, ev pointer.Event) {
	w.camera.HandleEvent(gtx, ev)

	g := w.state.Instance.Grid
	switch ev.Kind {
	case pointer.Move, pointer.Drag:
		w.state.Hover, w.state.HoverValid = draw.CellAt(g, w.camera, ev.Position.X, ev.Position.Y)

	case pointer.Press:
		if !ev.Buttons.Contain(pointer.ButtonPrimary) {
			return
		}
		if c, ok := draw.CellAt(g, w.camera, ev.Position.X, ev.Position.Y); ok {
			w.state.SelectAt(c)
		} else {
			w.state.Selected = 0
		}
	}
}
