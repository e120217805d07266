package game

import (
	"log/slog"

	"github.com/pthm-cable/shorelark/engine"
	"github.com/pthm-cable/shorelark/telemetry"
	"github.com/pthm-cable/shorelark/ui"
)

// progress is implemented by engines that expose their generation clock.
type progress interface {
	Generation() int
	Age() int
}

// Status is what front ends show about the session after each frame.
type Status struct {
	Active     bool
	Generation int
	Age        int
	Birds      int
	Eagles     int
	Foods      int
	FPS        float64

	Stats    engine.Statistics
	HasStats bool
	Perf     telemetry.PerfStats
}

// Status reports the current session state.
func (g *Game) Status() Status {
	sim := g.controller.Simulation()
	cfg := sim.Config()
	perf := g.perf.Stats()

	s := Status{
		Active: g.controller.Active(),
		Birds:  cfg.WorldAnimals,
		Eagles: cfg.WorldEagles,
		Foods:  cfg.WorldFoods,
		FPS:    perf.FPS,
		Perf:   perf,
	}
	if p, ok := sim.(progress); ok {
		s.Generation = p.Generation()
		s.Age = p.Age()
	}
	if r, ok := sim.(engine.StatisticsReporter); ok {
		s.Stats, s.HasStats = r.LastStatistics()
	}
	return s
}

// HUD converts the status to HUD data.
func (s Status) HUD(title string) ui.HUDData {
	return ui.HUDData{
		Title:      title,
		Birds:      s.Birds,
		Eagles:     s.Eagles,
		Foods:      s.Foods,
		Generation: s.Generation,
		Age:        s.Age,
		FPS:        s.FPS,
		Paused:     !s.Active,
	}
}

// String is the one-line status.
func (s Status) String() string {
	return s.HUD("").StatusText()
}

// flushPerf writes a perf.csv row once per perf window.
func (g *Game) flushPerf() {
	frames := g.perf.Frames()
	if g.opts.PerfWindow < 1 || frames%uint64(g.opts.PerfWindow) != 0 {
		return
	}

	stats := g.perf.Stats()
	slog.Debug("perf", "frame", frames, "stats", stats)
	if err := g.output.WritePerf(stats, frames); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
