package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/shorelark/engine"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title      string
	Birds      int
	Eagles     int
	Foods      int
	Generation int
	Age        int
	FPS        float64
	Paused     bool
}

// StatusText is the one-line simulation status.
func (d HUDData) StatusText() string {
	status := "Running"
	if d.Paused {
		status = "PAUSED"
	}
	return fmt.Sprintf("%s | Generation: %d | Step: %d | FPS: %.0f", status, d.Generation, d.Age, d.FPS)
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Birds: %d | Eagles: %d | Foods: %d", data.Birds, data.Eagles, data.Foods),
		10, 35, 16, rl.LightGray,
	)

	color := rl.LightGray
	if data.Paused {
		color = rl.Yellow
	}
	rl.DrawText(data.StatusText(), 10, 55, 16, color)
}

// DrawControls renders the control legend at the bottom of the viewport.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// FitnessPanel shows the statistics of the last finished generation.
type FitnessPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewFitnessPanel creates a panel at the given position.
func NewFitnessPanel(x, y, width int32) *FitnessPanel {
	return &FitnessPanel{renderer: NewRenderer(), x: x, y: y, width: width}
}

// SetPosition updates the panel position.
func (p *FitnessPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders stats; bars are scaled to the best max of both species.
func (p *FitnessPanel) Draw(stats engine.Statistics) {
	r := p.renderer
	pad := r.Theme.Padding
	height := 2*pad + 3*r.Theme.LineHeight + 8*(r.Theme.LineHeight+2)
	r.DrawPanel(p.x, p.y, p.width, height)

	x, y := p.x+pad, p.y+pad
	y = r.DrawSectionHeader(x, y, fmt.Sprintf("Generation %d", stats.Generation))

	scale := max(stats.Birds.Max, stats.Eagles.Max)
	for _, s := range []struct {
		name string
		f    engine.Fitness
	}{{"Birds", stats.Birds}, {"Eagles", stats.Eagles}} {
		rl.DrawText(s.name, x, y, r.Theme.FontSize, r.Theme.SectionHeader)
		y += r.Theme.LineHeight
		y = r.DrawBar(x, y, "min", s.f.Min, scale, p.width-2*pad)
		y = r.DrawBar(x, y, "max", s.f.Max, scale, p.width-2*pad)
		y = r.DrawBar(x, y, "avg", s.f.Avg, scale, p.width-2*pad)
		y = r.DrawBar(x, y, "median", s.f.Median, scale, p.width-2*pad)
	}
}

// PerfPanelData holds frame timings for display.
type PerfPanelData struct {
	Phases []string
	Avg    map[string]time.Duration
	Pct    map[string]float64
	Frame  time.Duration
}

// PerfPanel renders the frame-phase timing panel.
type PerfPanel struct {
	x, y int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{x: x, y: y}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(data PerfPanelData) {
	x, y := p.x, p.y

	rl.DrawText(fmt.Sprintf("Frame: %s", data.Frame.Round(time.Microsecond)), x, y, 14, rl.Yellow)
	y += 16

	for _, name := range data.Phases {
		pct := data.Pct[name]
		color := rl.LightGray
		if pct > 50 {
			color = rl.Orange
		}
		rl.DrawText(
			fmt.Sprintf("%-10s %8s %5.1f%%", name, data.Avg[name].Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
