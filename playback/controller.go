// Package playback owns the running simulation and decides when it advances.
package playback

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pthm-cable/shorelark/config"
	"github.com/pthm-cable/shorelark/engine"
)

// Printer receives operator-facing transcript lines.
type Printer interface {
	Println(line string)
}

// GenerationFunc is called after every completed generation.
type GenerationFunc func(sim engine.Simulation, summary string)

// ResetFunc is called after a new simulation has been installed.
type ResetFunc func(sim engine.Simulation)

// Controller holds the single simulation handle and the active flag.
// It is not safe for concurrent use; callers drive it from one goroutine.
type Controller struct {
	engine engine.Engine
	sim    engine.Simulation
	active bool
	out    Printer

	onGeneration GenerationFunc
	onReset      ResetFunc
}

// New creates a controller running a simulation built from the engine
// defaults. The controller starts active.
func New(eng engine.Engine, out Printer) (*Controller, error) {
	sim, err := eng.New(eng.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("creating initial simulation: %w", err)
	}
	return &Controller{
		engine: eng,
		sim:    sim,
		active: true,
		out:    out,
	}, nil
}

// OnGeneration registers a callback for completed generations.
func (c *Controller) OnGeneration(fn GenerationFunc) {
	c.onGeneration = fn
}

// OnReset registers a callback for successful resets.
func (c *Controller) OnReset(fn ResetFunc) {
	c.onReset = fn
}

// Engine returns the engine used to build simulations.
func (c *Controller) Engine() engine.Engine {
	return c.engine
}

// Simulation returns the current simulation handle.
func (c *Controller) Simulation() engine.Simulation {
	return c.sim
}

// Active reports whether frames advance the simulation.
func (c *Controller) Active() bool {
	return c.active
}

// Toggle flips between active and paused and returns the new state.
func (c *Controller) Toggle() bool {
	c.active = !c.active
	slog.Debug("playback toggled", "active", c.active)
	return c.active
}

// Reset replaces the simulation with a new one built from cfg. On error the
// current simulation is kept.
func (c *Controller) Reset(cfg config.Config) error {
	sim, err := c.engine.New(cfg)
	if err != nil {
		return err
	}
	c.sim = sim
	slog.Info("simulation reset",
		"animals", cfg.WorldAnimals,
		"foods", cfg.WorldFoods,
		"neurons", cfg.BrainNeurons,
		"eye_cells", cfg.EyeCells,
		"extra", len(cfg.Extra),
	)
	if c.onReset != nil {
		c.onReset(sim)
	}
	return nil
}

// Step advances the simulation by one tick when active.
func (c *Controller) Step() {
	if !c.active {
		return
	}
	summary, ok := c.sim.Step()
	if !ok || summary == "" {
		return
	}
	c.out.Println(summary)
	c.generationDone(summary)
}

// Train runs n full generations back to back, regardless of the active flag.
// Summaries are separated by a blank line.
func (c *Controller) Train(n int) error {
	if n < 1 {
		return fmt.Errorf("generation count must be at least 1, got %d", n)
	}

	start := time.Now()
	for i := 0; i < n; i++ {
		if i > 0 {
			c.out.Println("")
		}
		summary := c.sim.Train()
		c.out.Println(summary)
		c.generationDone(summary)
	}
	slog.Info("training finished", "generations", n, "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

func (c *Controller) generationDone(summary string) {
	if c.onGeneration != nil {
		c.onGeneration(c.sim, summary)
	}
}
