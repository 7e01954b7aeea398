// Package vis implements a Gio-based viewer for generated MAPF instances.
package vis

import (
	"image/color"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/mapf-lp-gen/internal/vis/interact"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/vis/state"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/vis/widgets"
)

// App is the main viewer application.
type App struct {
	state    *state.State
	theme    *material.Theme
	gridView *widgets.GridView
	toolbar  *widgets.Toolbar
	camera   *interact.Camera
}

// NewApp creates a viewer for st.
func NewApp(st *state.State) *App {
	camera := interact.NewCamera()
	return &App{
		state:    st,
		theme:    material.NewTheme(),
		gridView: widgets.NewGridView(st, camera),
		toolbar:  widgets.NewToolbar(st, camera),
		camera:   camera,
	}
}

// Run starts the application event loop.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops
	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag, Optional: key.ModCtrl | key.ModShift})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKeyEvent(ke)
				}
			}

			event.Op(gtx.Ops, tag)
			gtx.Execute(key.FocusCmd{Tag: tag})

			a.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (a *App) handleKeyEvent(e key.Event) {
	switch e.Name {
	case "R":
		a.camera.Reset()
	case "A":
		a.state.ToggleAgents()
	case "N":
		if a.state.Reseed() == nil {
			a.camera.Reset()
		}
	case key.NameEscape:
		a.state.Selected = 0
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.Fill(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 35, A: 255})

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.toolbar.Layout(gtx, a.theme)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return a.gridView.Layout(gtx)
		}),
	)
}
