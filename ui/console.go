package ui

import (
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Log is the transcript shown by the console.
type Log interface {
	Lines() []string
	Version() uint64
	AtTop() bool
}

const (
	consoleInputHeight = 28
	consoleMaxInput    = 256
)

// Console is the in-window operator terminal: scrollable transcript above a
// one-line command box.
type Console struct {
	renderer *Renderer
	x, y     int32
	width    int32
	height   int32

	text    string
	editing bool

	// lines scrolled back from the tail
	offset  int
	version uint64
}

// NewConsole creates a console occupying the given rectangle.
func NewConsole(x, y, width, height int32) *Console {
	return &Console{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		height:   height,
		editing:  true,
	}
}

// SetBounds moves and resizes the console.
func (c *Console) SetBounds(x, y, width, height int32) {
	c.x, c.y, c.width, c.height = x, y, width, height
}

// Editing reports whether the command box has keyboard focus.
func (c *Console) Editing() bool { return c.editing }

// Rows is the number of transcript lines that fit above the command box.
func (c *Console) Rows() int {
	t := c.renderer.Theme
	return max(int((c.height-consoleInputHeight-3*t.Padding)/t.LineHeight), 1)
}

// Draw renders the console and returns a submitted command line, if any.
// It must be called between BeginDrawing and EndDrawing.
func (c *Console) Draw(log Log) (string, bool) {
	r := c.renderer
	t := r.Theme
	rows := c.Rows()
	lines := log.Lines()

	if v := log.Version(); v != c.version {
		c.version = v
		c.offset = 0
		if log.AtTop() {
			c.offset = len(lines) - rows
		}
	}
	c.handleScroll(len(lines), rows)

	r.DrawPanel(c.x, c.y, c.width, c.height)
	y := c.y + t.Padding
	for _, line := range ConsoleWindow(lines, rows, c.offset) {
		color := t.ValueColor
		if strings.HasPrefix(line, "  ^ err:") {
			color = t.ErrorColor
		}
		rl.DrawText(line, c.x+t.Padding, y, t.FontSize, color)
		y += t.LineHeight
	}

	submitted := c.editing && rl.IsKeyPressed(rl.KeyEnter)
	box := rl.Rectangle{
		X:      float32(c.x + t.Padding),
		Y:      float32(c.y + c.height - consoleInputHeight - t.Padding),
		Width:  float32(c.width - 2*t.Padding),
		Height: consoleInputHeight,
	}
	if gui.TextBox(box, &c.text, consoleMaxInput, c.editing) {
		c.editing = !c.editing
	}

	if !submitted {
		return "", false
	}
	line := c.text
	c.text = ""
	c.editing = true
	return line, true
}

func (c *Console) handleScroll(total, rows int) {
	step := 0
	if rl.IsKeyPressed(rl.KeyPageUp) {
		step = rows
	}
	if rl.IsKeyPressed(rl.KeyPageDown) {
		step = -rows
	}
	mouse := rl.GetMousePosition()
	inside := mouse.X >= float32(c.x) && mouse.X < float32(c.x+c.width) &&
		mouse.Y >= float32(c.y) && mouse.Y < float32(c.y+c.height)
	if inside {
		step += int(rl.GetMouseWheelMove() * 3)
	}
	c.offset = clampOffset(c.offset+step, total, rows)
}

// ConsoleWindow returns the rows lines that end offset lines before the tail.
func ConsoleWindow(lines []string, rows, offset int) []string {
	if rows <= 0 {
		return nil
	}
	offset = clampOffset(offset, len(lines), rows)
	end := len(lines) - offset
	start := max(end-rows, 0)
	return lines[start:end]
}

func clampOffset(offset, total, rows int) int {
	return max(0, min(offset, total-rows))
}
