package renderer

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TextCanvas rasterizes the unit world onto a character grid, for terminal
// front ends. Sensor arcs are reduced to one mark per arc at its midpoint.
type TextCanvas struct {
	cols, rows int
	cells      []textCell
}

type textCell struct {
	r     rune
	color Color
}

// ArcThreshold is the minimum alpha at which an arc leaves a mark.
const ArcThreshold = 0.5

// NewTextCanvas creates a cols x rows grid.
func NewTextCanvas(cols, rows int) *TextCanvas {
	t := &TextCanvas{}
	t.Resize(cols, rows)
	return t
}

// Resize changes the grid size and clears it.
func (t *TextCanvas) Resize(cols, rows int) {
	t.cols, t.rows = max(cols, 1), max(rows, 1)
	t.cells = make([]textCell, t.cols*t.rows)
	t.Clear()
}

// Size returns the grid dimensions.
func (t *TextCanvas) Size() (cols, rows int) {
	return t.cols, t.rows
}

func (t *TextCanvas) Clear() {
	for i := range t.cells {
		t.cells[i] = textCell{r: ' '}
	}
}

func (t *TextCanvas) DrawCircle(x, y, _ float64, c Color) {
	t.set(x, y, 'o', c, false)
}

func (t *TextCanvas) DrawTriangle(x, y, _, rotation float64, c Color) {
	t.set(x, y, arrow(rotation), c, false)
}

func (t *TextCanvas) DrawArc(x, y, radius, angleFrom, angleTo float64, c Color) {
	if c.A < ArcThreshold {
		return
	}
	mid := (angleFrom + angleTo) / 2
	t.set(x+math.Cos(mid)*radius, y+math.Sin(mid)*radius, '·', c, true)
}

// At returns the rune at a grid cell.
func (t *TextCanvas) At(col, row int) rune {
	return t.cells[row*t.cols+col].r
}

// String returns the grid as plain text, one line per row.
func (t *TextCanvas) String() string {
	var b strings.Builder
	for row := 0; row < t.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < t.cols; col++ {
			b.WriteRune(t.At(col, row))
		}
	}
	return b.String()
}

// Render returns the grid with each mark colored.
func (t *TextCanvas) Render() string {
	var b strings.Builder
	for row := 0; row < t.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < t.cols; col++ {
			cell := t.cells[row*t.cols+col]
			if cell.r == ' ' {
				b.WriteByte(' ')
				continue
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(cell.color.Hex()))
			b.WriteString(style.Render(string(cell.r)))
		}
	}
	return b.String()
}

// set writes a mark at the world position, wrapping around the edges.
// Weak marks never overwrite an existing mark.
func (t *TextCanvas) set(x, y float64, r rune, c Color, weak bool) {
	col := wrapIndex(x, t.cols)
	row := wrapIndex(y, t.rows)
	cell := &t.cells[row*t.cols+col]
	if weak && cell.r != ' ' {
		return
	}
	cell.r = r
	cell.color = c
}

func wrapIndex(v float64, n int) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	i := int(math.Floor(v * float64(n)))
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// arrow picks a glyph for a heading, with y growing downwards.
func arrow(rotation float64) rune {
	a := math.Mod(rotation, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	switch sector := int(math.Floor(a/(math.Pi/2) + 0.5)); sector % 4 {
	case 0:
		return '>'
	case 1:
		return 'v'
	case 2:
		return '<'
	default:
		return '^'
	}
}
