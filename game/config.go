package game

import (
	"github.com/pthm-cable/shorelark/renderer"
	"github.com/pthm-cable/shorelark/terminal"
)

// Screen dimensions
const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	TargetFPS    = 60
)

// ConsoleWidth is the width of the operator console on the right.
const ConsoleWidth = 480

// Options configure a Game.
type Options struct {
	Title string

	// OutputDir receives generations.csv, perf.csv and config.yaml.
	// Empty disables file output.
	OutputDir string

	// Scrollback bounds the transcript length.
	Scrollback int

	// PerfWindow is the number of frames averaged per perf.csv row.
	PerfWindow int

	Palette renderer.Palette
}

// DefaultOptions returns the default game options.
func DefaultOptions() Options {
	return Options{
		Title:      "Shorelark",
		Scrollback: terminal.DefaultScrollback,
		PerfWindow: TargetFPS,
		Palette:    renderer.DefaultPalette(),
	}
}
