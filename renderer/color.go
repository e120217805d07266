package renderer

import "fmt"

// Color is an RGB color with a [0, 1] alpha.
type Color struct {
	R, G, B uint8
	A       float64
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Hex returns the color as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette holds the per-kind colors used by Draw.
type Palette struct {
	Food        Color
	Bird        Color
	Eagle       Color
	BirdSensor  Color
	EagleSensor Color
}

// DefaultPalette returns the standard colors. Both species share the sensor
// color; set EagleSensor to tell them apart.
func DefaultPalette() Palette {
	return Palette{
		Food:        RGB(0, 255, 128),
		Bird:        RGB(255, 255, 255),
		Eagle:       RGB(0, 255, 255),
		BirdSensor:  RGB(0, 255, 128),
		EagleSensor: RGB(0, 255, 128),
	}
}
