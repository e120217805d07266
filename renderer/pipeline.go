// Package renderer projects world snapshots onto a drawing surface.
package renderer

import (
	"math"

	"github.com/pthm-cable/shorelark/config"
	"github.com/pthm-cable/shorelark/engine"
)

// Canvas is a 2D drawing surface in world coordinates. Angles are radians.
type Canvas interface {
	Clear()
	DrawCircle(x, y, radius float64, c Color)
	DrawTriangle(x, y, size, rotation float64, c Color)
	DrawArc(x, y, radius, angleFrom, angleTo float64, c Color)
}

// Source supplies the simulation to draw and advances it once per frame.
type Source interface {
	Step()
	Simulation() engine.Simulation
}

// Pipeline draws one frame per call to Frame.
type Pipeline struct {
	source  Source
	palette Palette
	frames  uint64
}

// NewPipeline creates a pipeline reading from source.
func NewPipeline(source Source, palette Palette) *Pipeline {
	return &Pipeline{source: source, palette: palette}
}

// Frames returns how many frames have been drawn.
func (p *Pipeline) Frames() uint64 {
	return p.frames
}

// Frame advances the source (which decides whether to step) and draws the
// resulting world.
func (p *Pipeline) Frame(c Canvas) {
	p.source.Step()

	sim := p.source.Simulation()
	cfg := sim.Config()
	world := sim.World()

	Draw(c, cfg, world, p.palette)
	p.frames++
}

// Draw paints foods, then birds, then eagles, each animal followed by its
// sensor arcs.
func Draw(c Canvas, cfg config.Config, world engine.World, palette Palette) {
	c.Clear()

	for _, food := range world.Foods {
		c.DrawCircle(food.X, food.Y, cfg.FoodSize/2, palette.Food)
	}

	for _, animal := range world.Birds {
		c.DrawTriangle(animal.X, animal.Y, cfg.FoodSize, animal.Rotation, palette.Bird)
		drawSensors(c, cfg, animal, palette.BirdSensor)
	}

	for _, animal := range world.Eagles {
		c.DrawTriangle(animal.X, animal.Y, cfg.FoodSize*2, animal.Rotation, palette.Eagle)
		drawSensors(c, cfg, animal, palette.EagleSensor)
	}
}

// SensorRadiusFactor scales food_size to the sensor arc radius.
const SensorRadiusFactor = 2.5

func drawSensors(c Canvas, cfg config.Config, animal engine.Animal, color Color) {
	radius := cfg.FoodSize * SensorRadiusFactor
	for _, arc := range SensorArcs(animal.Rotation, cfg.EyeFovAngle, animal.Vision, cfg.EyeCells) {
		c.DrawArc(animal.X, animal.Y, radius, arc.From, arc.To, color.WithAlpha(arc.Alpha))
	}
}

// Arc is one eye cell's angular span and its reading.
type Arc struct {
	From, To float64
	Alpha    float64
}

// SensorArcs splits the field of view centered on rotation into cells equal
// arcs, left to right. Consecutive arcs share their boundary exactly. Cells
// without a vision reading are fully transparent.
func SensorArcs(rotation, fovAngle float64, vision []float64, cells int) []Arc {
	if cells <= 0 {
		return nil
	}

	start := rotation - fovAngle/2
	perCell := fovAngle / float64(cells)

	arcs := make([]Arc, cells)
	from := start
	for i := range arcs {
		to := start + float64(i+1)*perCell
		var energy float64
		if i < len(vision) {
			energy = vision[i]
		}
		arcs[i] = Arc{From: from, To: to, Alpha: clamp01(energy)}
		from = to
	}
	return arcs
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
