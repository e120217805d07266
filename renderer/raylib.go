package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/shorelark/camera"
)

// RaylibCanvas draws onto the current raylib frame through a camera.
// Calls must happen between rl.BeginDrawing and rl.EndDrawing.
type RaylibCanvas struct {
	Camera     *camera.Camera
	Background rl.Color
}

// NewRaylibCanvas creates a canvas for the given camera.
func NewRaylibCanvas(cam *camera.Camera) *RaylibCanvas {
	return &RaylibCanvas{
		Camera:     cam,
		Background: rl.Color{R: 8, G: 12, B: 20, A: 255},
	}
}

// ToRaylib converts a color, mapping alpha to [0, 255].
func ToRaylib(c Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(clamp01(c.A) * 255))}
}

func (r *RaylibCanvas) Clear() {
	rl.ClearBackground(r.Background)
}

func (r *RaylibCanvas) DrawCircle(x, y, radius float64, c Color) {
	if !r.Camera.IsVisible(x, y, radius) {
		return
	}
	sx, sy := r.Camera.WorldToScreen(x, y)
	rl.DrawCircleV(vec(sx, sy), float32(r.Camera.Scale(radius)), ToRaylib(c))
}

// DrawTriangle draws an isosceles triangle pointing along rotation.
func (r *RaylibCanvas) DrawTriangle(x, y, size, rotation float64, c Color) {
	if !r.Camera.IsVisible(x, y, size*1.5) {
		return
	}
	sx, sy := r.Camera.WorldToScreen(x, y)
	s := r.Camera.Scale(size)

	tip := vec(sx+math.Cos(rotation)*s*1.5, sy+math.Sin(rotation)*s*1.5)
	left := vec(sx+math.Cos(rotation+2*math.Pi/3)*s, sy+math.Sin(rotation+2*math.Pi/3)*s)
	right := vec(sx+math.Cos(rotation-2*math.Pi/3)*s, sy+math.Sin(rotation-2*math.Pi/3)*s)

	// raylib only fills counter-clockwise triangles
	if cross(tip, left, right) > 0 {
		left, right = right, left
	}
	rl.DrawTriangle(tip, left, right, ToRaylib(c))
}

// DrawArc draws a thin ring segment between two angles.
func (r *RaylibCanvas) DrawArc(x, y, radius, angleFrom, angleTo float64, c Color) {
	if c.A <= 0 || !r.Camera.IsVisible(x, y, radius) {
		return
	}
	sx, sy := r.Camera.WorldToScreen(x, y)
	outer := r.Camera.Scale(radius)
	inner := outer - math.Max(1.5, outer*0.12)

	rl.DrawRing(vec(sx, sy), float32(inner), float32(outer),
		float32(angleFrom*180/math.Pi), float32(angleTo*180/math.Pi), 8, ToRaylib(c))
}

func vec(x, y float64) rl.Vector2 {
	return rl.Vector2{X: float32(x), Y: float32(y)}
}

// cross returns the z component of (b-a) x (c-a) in screen space.
func cross(a, b, c rl.Vector2) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
