package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFitsUnitWorld(t *testing.T) {
	cam := New(800, 600, 1, 1)

	assert.Equal(t, 0.5, cam.X)
	assert.Equal(t, 0.5, cam.Y)
	// The limiting dimension is height: 600px per world unit
	assert.Equal(t, 600.0, cam.Zoom)
	assert.Equal(t, 600.0, cam.MinZoom)
	assert.Equal(t, 600.0*MaxZoomFactor, cam.MaxZoom)
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(800, 600, 1, 1)

	sx, sy := cam.WorldToScreen(0.5, 0.5)
	assert.InDelta(t, 400, sx, 1e-9)
	assert.InDelta(t, 300, sy, 1e-9)

	// Corners of the world land on the edges of the fitted square
	sx, sy = cam.WorldToScreen(0.25, 0.25)
	assert.InDelta(t, 250, sx, 1e-9)
	assert.InDelta(t, 150, sy, 1e-9)
}

func TestWorldToScreenOffset(t *testing.T) {
	cam := New(800, 600, 1, 1)
	cam.Resize(100, 20, 800, 600)

	sx, sy := cam.WorldToScreen(0.5, 0.5)
	assert.InDelta(t, 500, sx, 1e-9)
	assert.InDelta(t, 320, sy, 1e-9)
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(800, 600, 1, 1)
	cam.ZoomBy(2)

	for _, tc := range []struct{ sx, sy float64 }{
		{400, 300},
		{100, 100},
		{700, 550},
	} {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		assert.InDelta(t, tc.sx, sx, 1e-6)
		assert.InDelta(t, tc.sy, sy, 1e-6)
	}
}

func TestToroidalWrap(t *testing.T) {
	cam := New(800, 600, 1, 1)
	cam.X = 0.05 // near left edge

	// A point at the right edge is closer through the wrap
	sx, _ := cam.WorldToScreen(0.98, 0.5)
	assert.Less(t, sx, 400.0)
}

func TestPanWraps(t *testing.T) {
	cam := New(800, 600, 1, 1)
	cam.X = 0.1

	cam.Pan(-120, 0) // 0.2 world units at 600px/unit

	assert.InDelta(t, 0.9, cam.X, 1e-9)
}

func TestZoomClamp(t *testing.T) {
	cam := New(800, 600, 1, 1)

	cam.SetZoom(1)
	assert.Equal(t, cam.MinZoom, cam.Zoom)

	cam.SetZoom(1e9)
	assert.Equal(t, cam.MaxZoom, cam.Zoom)
}

func TestResizeKeepsRelativeZoom(t *testing.T) {
	cam := New(800, 600, 1, 1)
	cam.ZoomBy(2)

	cam.Resize(0, 0, 400, 400)

	assert.Equal(t, 400.0, cam.MinZoom)
	assert.Equal(t, 800.0, cam.Zoom)
}

func TestScale(t *testing.T) {
	cam := New(800, 600, 1, 1)
	assert.InDelta(t, 6, cam.Scale(0.01), 1e-9)
}

func TestIsVisible(t *testing.T) {
	cam := New(800, 600, 1, 1)
	cam.ZoomBy(4) // visible area is 1/3 x 1/4 of the world

	assert.True(t, cam.IsVisible(0.5, 0.5, 0.01))
	assert.False(t, cam.IsVisible(0.05, 0.5, 0.01))
	assert.True(t, cam.IsVisible(0.3, 0.5, 0.1))
}

func TestReset(t *testing.T) {
	cam := New(800, 600, 1, 1)
	cam.X = 0.1
	cam.Y = 0.9
	cam.ZoomBy(3)

	cam.Reset()

	assert.Equal(t, 0.5, cam.X)
	assert.Equal(t, 0.5, cam.Y)
	assert.Equal(t, cam.MinZoom, cam.Zoom)
}
