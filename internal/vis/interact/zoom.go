// Package interact handles pan and zoom of the grid view.
package interact

import (
	"gioui.org/io/pointer"
	"gioui.org/layout"
)

// Zoom limits, in screen pixels per grid cell.
const (
	MinZoom = 2
	MaxZoom = 200
)

// Camera maps world coordinates (one unit per cell) to screen pixels.
type Camera struct {
	OffsetX float32 // Screen position of world origin
	OffsetY float32
	Zoom    float32 // Pixels per cell

	// Set once the view has been fitted to a grid
	Fitted bool

	panning bool
	lastX   float32
	lastY   float32
}

// NewCamera creates a camera that still needs fitting.
func NewCamera() *Camera {
	return &Camera{Zoom: 32}
}

// Reset asks for the view to be fitted again on the next frame.
func (c *Camera) Reset() {
	c.Fitted = false
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(worldX, worldY float64) (screenX, screenY float32) {
	screenX = float32(worldX)*c.Zoom + c.OffsetX
	screenY = float32(worldY)*c.Zoom + c.OffsetY
	return
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(screenX, screenY float32) (worldX, worldY float64) {
	worldX = float64((screenX - c.OffsetX) / c.Zoom)
	worldY = float64((screenY - c.OffsetY) / c.Zoom)
	return
}

// HandleEvent pans on secondary/tertiary drag and zooms on scroll.
// It reports whether the event changed the view.
func (c *Camera) HandleEvent(gtx layout.Context, ev pointer.Event) bool {
	switch ev.Kind {
	case pointer.Press:
		c.panning = ev.Buttons.Contain(pointer.ButtonSecondary) || ev.Buttons.Contain(pointer.ButtonTertiary)
		c.lastX, c.lastY = ev.Position.X, ev.Position.Y

	case pointer.Drag:
		if !c.panning {
			return false
		}
		c.Pan(ev.Position.X-c.lastX, ev.Position.Y-c.lastY)
		c.lastX, c.lastY = ev.Position.X, ev.Position.Y
		return true

	case pointer.Release:
		c.panning = false

	case pointer.Scroll:
		if ev.Scroll.Y == 0 {
			return false
		}
		factor := float32(1.1)
		if ev.Scroll.Y > 0 {
			factor = 1 / factor
		}
		c.ZoomBy(factor, ev.Position.X, ev.Position.Y)
		return true
	}
	return false
}

// Pan moves the view by a screen delta.
func (c *Camera) Pan(dx, dy float32) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// ZoomBy zooms by factor, keeping the world point under (centerX, centerY) fixed.
func (c *Camera) ZoomBy(factor float32, centerX, centerY float32) {
	worldX, worldY := c.ScreenToWorld(centerX, centerY)
	c.Zoom = clampZoom(c.Zoom * factor)

	newScreenX, newScreenY := c.WorldToScreen(worldX, worldY)
	c.OffsetX += centerX - newScreenX
	c.OffsetY += centerY - newScreenY
}

// FitBounds zooms and centers so the world rectangle [0,w]x[0,h] fills the
// screen minus margin on each side.
func (c *Camera) FitBounds(w, h float64, screenWidth, screenHeight, margin float32) {
	if w <= 0 || h <= 0 {
		return
	}
	zoomX := (screenWidth - 2*margin) / float32(w)
	zoomY := (screenHeight - 2*margin) / float32(h)
	c.Zoom = zoomX
	if zoomY < zoomX {
		c.Zoom = zoomY
	}
	c.Zoom = clampZoom(c.Zoom)

	c.OffsetX = screenWidth/2 - float32(w/2)*c.Zoom
	c.OffsetY = screenHeight/2 - float32(h/2)*c.Zoom
	c.Fitted = true
}

func clampZoom(z float32) float32 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}
