// Package camera maps the toroidal simulation world onto the window.
package camera

import "math"

// Camera controls the viewport into the simulation world.
// Supports pan and zoom with toroidal world wrapping.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float64

	// Zoom is screen pixels per world unit
	Zoom float64

	// Viewport rectangle on screen
	OffsetX, OffsetY     float64
	ViewportW, ViewportH float64

	// World dimensions (for toroidal wrapping)
	WorldW, WorldH float64

	// Zoom constraints
	MinZoom, MaxZoom float64
}

// MaxZoomFactor bounds zoom relative to the fit zoom.
const MaxZoomFactor = 8

// New creates a camera showing the whole world inside the viewport.
func New(viewportW, viewportH, worldW, worldH float64) *Camera {
	c := &Camera{
		WorldW: worldW,
		WorldH: worldH,
	}
	c.Resize(0, 0, viewportW, viewportH)
	c.Reset()
	return c
}

// fitZoom is the zoom at which the whole world just fits.
func (c *Camera) fitZoom() float64 {
	return math.Min(c.ViewportW/c.WorldW, c.ViewportH/c.WorldH)
}

// WorldToScreen converts world coordinates to screen coordinates, taking the
// shortest toroidal path from the camera center.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	dx := toroidalDelta(wx, c.X, c.WorldW)
	dy := toroidalDelta(wy, c.Y, c.WorldH)

	sx = c.OffsetX + c.ViewportW/2 + dx*c.Zoom
	sy = c.OffsetY + c.ViewportH/2 + dy*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	dx := (sx - c.OffsetX - c.ViewportW/2) / c.Zoom
	dy := (sy - c.OffsetY - c.ViewportH/2) / c.Zoom

	wx = mod(c.X+dx, c.WorldW)
	wy = mod(c.Y+dy, c.WorldH)
	return wx, wy
}

// Scale converts a world length to screen pixels.
func (c *Camera) Scale(length float64) float64 {
	return length * c.Zoom
}

// IsVisible returns true if a circle at (wx, wy) with given radius
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float64) bool {
	dx := toroidalDelta(wx, c.X, c.WorldW)
	dy := toroidalDelta(wy, c.Y, c.WorldH)

	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius

	return math.Abs(dx) <= halfW && math.Abs(dy) <= halfH
}

// Resize places the viewport on screen and recalculates zoom constraints,
// keeping the current zoom relative to the fit zoom.
func (c *Camera) Resize(offsetX, offsetY, viewportW, viewportH float64) {
	rel := 1.0
	if c.MinZoom > 0 {
		rel = c.Zoom / c.MinZoom
	}

	c.OffsetX, c.OffsetY = offsetX, offsetY
	c.ViewportW, c.ViewportH = viewportW, viewportH
	c.MinZoom = c.fitZoom()
	c.MaxZoom = c.MinZoom * MaxZoomFactor
	c.SetZoom(c.MinZoom * rel)
}

// Pan moves the camera by the given delta in screen pixels.
// Automatically wraps around world boundaries.
func (c *Camera) Pan(dx, dy float64) {
	c.X = mod(c.X+dx/c.Zoom, c.WorldW)
	c.Y = mod(c.Y+dy/c.Zoom, c.WorldH)
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float64) {
	c.SetZoom(c.Zoom * factor)
}

// Reset centers the camera and fits the world to the viewport.
func (c *Camera) Reset() {
	c.X = c.WorldW / 2
	c.Y = c.WorldH / 2
	c.Zoom = c.MinZoom
}

// toroidalDelta computes the shortest signed distance from 'from' to 'to'
// in a toroidal space of the given size.
func toroidalDelta(to, from, size float64) float64 {
	d := to - from
	if d > size/2 {
		d -= size
	} else if d < -size/2 {
		d += size
	}
	return d
}

// mod computes the positive modulo (Go's % can return negative).
func mod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

// clamp restricts a value to a range.
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
