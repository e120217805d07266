package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes window-level keyboard and mouse input. Keys that
// could be typed into the console are only honoured while it is unfocused.
func (d *WindowDriver) handleInput() {
	d.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		d.showPerf = !d.showPerf
	}

	d.handleCameraInput()
}

// handleResize checks for window resize and propagates new dimensions.
func (d *WindowDriver) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	if w == d.screenWidth && h == d.screenHeight {
		return
	}
	d.screenWidth = w
	d.screenHeight = h

	consoleW := min(int32(ConsoleWidth), w/2)
	d.camera.Resize(0, 0, float64(w-consoleW), float64(h))
	d.console.SetBounds(w-consoleW, 0, consoleW, h)
	d.perf.SetPosition(10, h-110)
}

// handleCameraInput processes camera pan/zoom controls.
func (d *WindowDriver) handleCameraInput() {
	mouse := rl.GetMousePosition()
	overWorld := float64(mouse.X) < d.camera.OffsetX+d.camera.ViewportW

	if overWorld {
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			d.camera.ZoomBy(1 + float64(wheel)*0.1)
		}
		if rl.IsMouseButtonDown(rl.MouseButtonRight) {
			delta := rl.GetMouseDelta()
			d.camera.Pan(-float64(delta.X), -float64(delta.Y))
		}
	}

	if d.console.Editing() {
		return
	}

	// screen pixels per frame
	const panSpeed = 8.0

	if rl.IsKeyDown(rl.KeyRight) {
		d.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		d.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		d.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		d.camera.Pan(0, -panSpeed)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		d.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		d.camera.ZoomBy(0.8)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		d.camera.Reset()
	}
}
