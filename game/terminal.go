package game

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pthm-cable/shorelark/renderer"
	"github.com/pthm-cable/shorelark/terminal"
)

// TerminalDriver presents frames as an ASCII map in a bubbletea program.
// The program runs on its own goroutine; frames cross over as messages.
type TerminalDriver struct {
	program *tea.Program
	canvas  *renderer.TextCanvas
	lines   chan string
	closed  chan struct{}
	ticker  *time.Ticker

	cols, rows atomic.Int32
}

// NewTerminalDriver creates a driver rendering at fps frames per second.
func NewTerminalDriver(transcript *terminal.Transcript, fps int, opts ...tea.ProgramOption) *TerminalDriver {
	if fps < 1 {
		fps = 20
	}
	d := &TerminalDriver{
		canvas: renderer.NewTextCanvas(40, 20),
		lines:  make(chan string, 64),
		closed: make(chan struct{}),
		ticker: time.NewTicker(time.Second / time.Duration(fps)),
	}
	d.cols.Store(40)
	d.rows.Store(20)

	model := terminal.NewModel(transcript, terminal.Hooks{
		Submit: d.submit,
		Resize: d.resize,
	})
	d.program = tea.NewProgram(model, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
	return d
}

func (d *TerminalDriver) submit(line string) {
	select {
	case d.lines <- line:
	default:
		slog.Warn("command dropped, input queue full", "input", line)
	}
}

func (d *TerminalDriver) resize(cols, rows int) {
	d.cols.Store(int32(cols))
	d.rows.Store(int32(rows))
}

// Lines returns the command lines entered in the terminal.
func (d *TerminalDriver) Lines() <-chan string { return d.lines }

// Begin waits for the next tick.
func (d *TerminalDriver) Begin(ctx context.Context) (renderer.Canvas, bool) {
	select {
	case <-ctx.Done():
		return nil, false
	case <-d.closed:
		return nil, false
	case <-d.ticker.C:
	}

	cols, rows := int(d.cols.Load()), int(d.rows.Load())
	if c, r := d.canvas.Size(); c != cols || r != rows {
		d.canvas.Resize(cols, rows)
	}
	return d.canvas, true
}

// End sends the rendered frame to the program.
func (d *TerminalDriver) End(status Status) {
	d.program.Send(terminal.FrameMsg{
		Map:    d.canvas.Render(),
		Status: status.String(),
		Paused: !status.Active,
	})
}

// Run runs g under the terminal front end until the operator quits or ctx
// is done.
func (d *TerminalDriver) Run(ctx context.Context, g *Game) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer d.ticker.Stop()

	loopErr := make(chan error, 1)
	go func() {
		loopErr <- g.Run(ctx, d, d.lines)
		d.program.Quit()
	}()

	_, err := d.program.Run()
	close(d.closed)
	cancel()

	if lerr := <-loopErr; lerr != nil {
		return lerr
	}
	if err != nil {
		return fmt.Errorf("running terminal: %w", err)
	}
	return nil
}
