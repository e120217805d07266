package game

import (
	"context"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/shorelark/camera"
	"github.com/pthm-cable/shorelark/renderer"
	"github.com/pthm-cable/shorelark/terminal"
	"github.com/pthm-cable/shorelark/ui"
)

const controlsLegend = "Wheel/+/-: zoom | Right drag: pan | Home: reset view | F11: fullscreen"

// WindowDriver presents frames in a raylib window with the console docked on
// the right. It must be used from the goroutine that opened the window.
type WindowDriver struct {
	title      string
	transcript *terminal.Transcript

	camera  *camera.Camera
	canvas  *renderer.RaylibCanvas
	hud     *ui.HUD
	fitness *ui.FitnessPanel
	perf    *ui.PerfPanel
	console *ui.Console

	lines chan string

	screenWidth, screenHeight int32
	showPerf                  bool
}

// NewWindowDriver opens the window. Call Close when done.
func NewWindowDriver(title string, transcript *terminal.Transcript) *WindowDriver {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ScreenWidth, ScreenHeight, title)
	rl.SetTargetFPS(TargetFPS)
	rl.SetExitKey(0)

	w, h := int32(ScreenWidth), int32(ScreenHeight)
	viewW := float64(w - ConsoleWidth)
	cam := camera.New(viewW, float64(h), 1, 1)

	d := &WindowDriver{
		title:        title,
		transcript:   transcript,
		camera:       cam,
		canvas:       renderer.NewRaylibCanvas(cam),
		hud:          ui.NewHUD(),
		fitness:      ui.NewFitnessPanel(10, 80, 260),
		perf:         ui.NewPerfPanel(10, h-110),
		console:      ui.NewConsole(w-ConsoleWidth, 0, ConsoleWidth, h),
		lines:        make(chan string, 64),
		screenWidth:  w,
		screenHeight: h,
	}
	return d
}

// Lines returns the command lines typed into the console.
func (d *WindowDriver) Lines() <-chan string { return d.lines }

// Begin handles window input and starts drawing. It reports false when the
// window has been asked to close.
func (d *WindowDriver) Begin(ctx context.Context) (renderer.Canvas, bool) {
	if ctx.Err() != nil || rl.WindowShouldClose() {
		return nil, false
	}
	d.handleInput()
	rl.BeginDrawing()
	return d.canvas, true
}

// End draws the overlays and the console and presents the frame.
func (d *WindowDriver) End(status Status) {
	d.hud.Draw(status.HUD(d.title))
	if status.HasStats {
		d.fitness.Draw(status.Stats)
	}
	if d.showPerf {
		d.perf.Draw(ui.PerfPanelData{
			Phases: []string{"commands", "step", "draw"},
			Avg:    status.Perf.PhaseAvg,
			Pct:    status.Perf.PhasePct,
			Frame:  status.Perf.AvgFrameDuration,
		})
	}
	d.hud.DrawControls(d.screenHeight, controlsLegend)

	if line, ok := d.console.Draw(d.transcript); ok {
		select {
		case d.lines <- line:
		default:
			slog.Warn("command dropped, input queue full", "input", line)
		}
	}

	rl.EndDrawing()
}

// Close closes the window.
func (d *WindowDriver) Close() {
	rl.CloseWindow()
}
