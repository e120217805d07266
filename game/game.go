// Package game runs the shorelark main loop: it feeds operator commands to
// the interpreter, advances the simulation and draws one frame at a time
// through a front end driver.
package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pthm-cable/shorelark/command"
	"github.com/pthm-cable/shorelark/engine"
	"github.com/pthm-cable/shorelark/playback"
	"github.com/pthm-cable/shorelark/renderer"
	"github.com/pthm-cable/shorelark/telemetry"
	"github.com/pthm-cable/shorelark/terminal"
)

// Game holds the complete session state. All methods must be called from the
// goroutine running the loop.
type Game struct {
	opts Options

	controller *playback.Controller
	interp     *command.Interpreter
	pipeline   *renderer.Pipeline
	transcript *terminal.Transcript

	output   *telemetry.OutputManager
	recorder *telemetry.Recorder
	perf     *telemetry.PerfCollector

	pending []string
}

// New creates a game running a simulation built from the engine defaults.
// The transcript starts with the banner and command reference.
func New(eng engine.Engine, opts Options) (*Game, error) {
	if opts.Palette == (renderer.Palette{}) {
		opts.Palette = renderer.DefaultPalette()
	}

	transcript := terminal.NewTranscript(opts.Scrollback)

	controller, err := playback.New(eng, transcript)
	if err != nil {
		return nil, err
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}

	g := &Game{
		opts:       opts,
		controller: controller,
		transcript: transcript,
		output:     output,
		recorder:   telemetry.NewRecorder(output),
		perf:       telemetry.NewPerfCollector(opts.PerfWindow),
	}
	g.interp = command.NewInterpreter(controller, eng.DefaultConfig, transcript)
	g.pipeline = renderer.NewPipeline(timedSource{Controller: controller, perf: g.perf}, opts.Palette)

	controller.OnGeneration(g.recorder.Generation)
	controller.OnReset(func(sim engine.Simulation) { g.recorder.Reset(sim.Config()) })
	g.recorder.Reset(controller.Simulation().Config())

	command.PrintHelp(transcript, eng.DefaultConfig())
	transcript.ScrollToTop()

	return g, nil
}

// timedSource attributes the simulation step and the drawing that follows it
// to separate perf phases.
type timedSource struct {
	*playback.Controller
	perf *telemetry.PerfCollector
}

func (s timedSource) Step() {
	s.perf.StartPhase(telemetry.PhaseStep)
	s.Controller.Step()
	s.perf.StartPhase(telemetry.PhaseDraw)
}

// Transcript returns the operator transcript.
func (g *Game) Transcript() *terminal.Transcript { return g.transcript }

// Controller returns the playback controller.
func (g *Game) Controller() *playback.Controller { return g.controller }

// Submit queues a command line for the next frame.
func (g *Game) Submit(line string) {
	g.pending = append(g.pending, line)
}

// Exec runs one command line immediately. Failures are reported to the
// transcript.
func (g *Game) Exec(line string) {
	_ = g.interp.Exec(line)
}

// Frame draws one frame on c, advancing the simulation when active.
func (g *Game) Frame(c renderer.Canvas) {
	g.pipeline.Frame(c)
}

// Run is the main loop. Each iteration checks ctx, waits for the driver,
// executes queued command lines in submission order, then renders one frame.
// It returns when ctx is done or the driver closes.
func (g *Game) Run(ctx context.Context, d Driver, input <-chan string) error {
	slog.Info("loop started", "title", g.opts.Title)

	for {
		if err := ctx.Err(); err != nil {
			g.stopped(err.Error())
			return nil
		}

		canvas, ok := d.Begin(ctx)
		if !ok {
			g.stopped("driver closed")
			return nil
		}

		g.perf.StartFrame()
		g.perf.StartPhase(telemetry.PhaseCommands)
		input = g.drain(input)
		g.Frame(canvas)
		g.perf.EndFrame()
		g.flushPerf()

		d.End(g.Status())
	}
}

// drain executes submitted lines, then every line already waiting on input.
// A closed input is replaced by nil so later drains skip it.
func (g *Game) drain(input <-chan string) <-chan string {
	for len(g.pending) > 0 {
		line := g.pending[0]
		g.pending = g.pending[1:]
		g.Exec(line)
	}

	for input != nil {
		select {
		case line, ok := <-input:
			if !ok {
				return nil
			}
			g.Exec(line)
		default:
			return input
		}
	}
	return nil
}

func (g *Game) stopped(reason string) {
	slog.Info("loop stopped",
		"reason", reason,
		"frames", g.perf.Frames(),
		"generations", g.recorder.Generations(),
	)
}

// Close flushes and closes telemetry output.
func (g *Game) Close() error {
	return g.output.Close()
}
