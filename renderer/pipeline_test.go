package renderer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/shorelark/config"
	"github.com/pthm-cable/shorelark/engine"
)

type call struct {
	kind     string
	x, y     float64
	size     float64 // radius for circles and arcs
	rotation float64
	from, to float64
	color    Color
}

type recorder struct {
	calls []call
}

func (r *recorder) Clear() { r.calls = append(r.calls, call{kind: "clear"}) }

func (r *recorder) DrawCircle(x, y, radius float64, c Color) {
	r.calls = append(r.calls, call{kind: "circle", x: x, y: y, size: radius, color: c})
}

func (r *recorder) DrawTriangle(x, y, size, rotation float64, c Color) {
	r.calls = append(r.calls, call{kind: "triangle", x: x, y: y, size: size, rotation: rotation, color: c})
}

func (r *recorder) DrawArc(x, y, radius, from, to float64, c Color) {
	r.calls = append(r.calls, call{kind: "arc", x: x, y: y, size: radius, from: from, to: to, color: c})
}

func (r *recorder) kinds() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.kind
	}
	return out
}

func testConfig(cells int) config.Config {
	cfg := config.Default()
	cfg.EyeCells = cells
	cfg.EyeFovAngle = math.Pi
	cfg.FoodSize = 0.02
	return cfg
}

func TestDrawOrder(t *testing.T) {
	cfg := testConfig(2)
	world := engine.World{
		Foods:  []engine.Food{{X: 0.1, Y: 0.2}, {X: 0.3, Y: 0.4}},
		Birds:  []engine.Animal{{X: 0.5, Y: 0.5, Vision: []float64{0, 1}}},
		Eagles: []engine.Animal{{X: 0.7, Y: 0.7, Vision: []float64{1, 0}}},
	}

	rec := &recorder{}
	Draw(rec, cfg, world, DefaultPalette())

	assert.Equal(t, []string{
		"clear",
		"circle", "circle",
		"triangle", "arc", "arc",
		"triangle", "arc", "arc",
	}, rec.kinds())
}

func TestDrawSizesAndColors(t *testing.T) {
	cfg := testConfig(1)
	palette := DefaultPalette()
	world := engine.World{
		Foods:  []engine.Food{{X: 0.1, Y: 0.2}},
		Birds:  []engine.Animal{{X: 0.5, Y: 0.6, Rotation: 1, Vision: []float64{0.25}}},
		Eagles: []engine.Animal{{X: 0.7, Y: 0.8, Rotation: 2, Vision: []float64{0.75}}},
	}

	rec := &recorder{}
	Draw(rec, cfg, world, palette)
	require.Len(t, rec.calls, 6)

	food := rec.calls[1]
	assert.Equal(t, 0.01, food.size, "food radius is half the food size")
	assert.Equal(t, palette.Food, food.color)

	bird := rec.calls[2]
	assert.Equal(t, 0.02, bird.size)
	assert.Equal(t, 1.0, bird.rotation)
	assert.Equal(t, palette.Bird, bird.color)

	birdArc := rec.calls[3]
	assert.InDelta(t, 0.05, birdArc.size, 1e-12, "sensor radius is 2.5x food size")
	assert.Equal(t, 0.5, birdArc.x)
	assert.Equal(t, 0.6, birdArc.y)
	assert.Equal(t, palette.BirdSensor.WithAlpha(0.25), birdArc.color)

	eagle := rec.calls[4]
	assert.Equal(t, 0.04, eagle.size, "eagles are drawn twice as large")
	assert.Equal(t, palette.Eagle, eagle.color)

	eagleArc := rec.calls[5]
	assert.Equal(t, palette.EagleSensor.WithAlpha(0.75), eagleArc.color)
}

func TestDrawEagleSensorColor(t *testing.T) {
	palette := DefaultPalette()
	palette.EagleSensor = RGB(255, 0, 0)
	world := engine.World{
		Eagles: []engine.Animal{{Vision: []float64{1}}},
	}

	rec := &recorder{}
	Draw(rec, testConfig(1), world, palette)

	assert.Equal(t, RGB(255, 0, 0), rec.calls[2].color)
}

func TestSensorArcsPartitionFieldOfView(t *testing.T) {
	for _, cells := range []int{1, 2, 3, 7, 9, 64} {
		for _, rotation := range []float64{0, 1.3, -2.2, 10} {
			fov := math.Pi + math.Pi/4
			arcs := SensorArcs(rotation, fov, make([]float64, cells), cells)
			require.Len(t, arcs, cells)

			assert.Equal(t, rotation-fov/2, arcs[0].From)
			assert.InDelta(t, rotation+fov/2, arcs[cells-1].To, 1e-12)
			for i := range arcs {
				assert.Greater(t, arcs[i].To, arcs[i].From)
				assert.InDelta(t, fov/float64(cells), arcs[i].To-arcs[i].From, 1e-12)
				if i > 0 {
					assert.Equal(t, arcs[i-1].To, arcs[i].From, "no gap or overlap")
				}
			}
		}
	}
}

func TestSensorArcsFormula(t *testing.T) {
	arcs := SensorArcs(1, 2, []float64{0.1, 0.2, 0.3, 0.4}, 4)

	// angleFrom = rotation - fov/2 + i*fov/cells
	want := []Arc{
		{From: 0, To: 0.5, Alpha: 0.1},
		{From: 0.5, To: 1, Alpha: 0.2},
		{From: 1, To: 1.5, Alpha: 0.3},
		{From: 1.5, To: 2, Alpha: 0.4},
	}
	assert.Equal(t, want, arcs)
}

func TestSensorArcsAlpha(t *testing.T) {
	arcs := SensorArcs(0, 1, []float64{-1, 0, 0.5, 1, 2, math.NaN()}, 7)

	got := make([]float64, len(arcs))
	for i, a := range arcs {
		got[i] = a.Alpha
	}
	assert.Equal(t, []float64{0, 0, 0.5, 1, 1, 0, 0}, got, "clamped, NaN and missing readings are transparent")
}

func TestSensorArcsNoCells(t *testing.T) {
	assert.Empty(t, SensorArcs(0, 1, []float64{1}, 0))
	assert.Empty(t, SensorArcs(0, 1, nil, -3))
}

func TestDrawArcCountMatchesEyeCells(t *testing.T) {
	cfg := testConfig(5)
	world := engine.World{
		Birds: []engine.Animal{
			{Vision: make([]float64, 5)},
			{Vision: make([]float64, 5)},
		},
	}

	rec := &recorder{}
	Draw(rec, cfg, world, DefaultPalette())

	arcs := 0
	for _, c := range rec.calls {
		if c.kind == "arc" {
			arcs++
		}
	}
	assert.Equal(t, 10, arcs)
}

type fakeSource struct {
	steps int
	sim   engine.Simulation
}

func (f *fakeSource) Step() { f.steps++ }

func (f *fakeSource) Simulation() engine.Simulation { return f.sim }

type staticSim struct {
	cfg   config.Config
	world engine.World
}

func (s *staticSim) Config() config.Config { return s.cfg }

func (s *staticSim) World() engine.World { return s.world }

func (s *staticSim) Step() (string, bool) { return "", false }

func (s *staticSim) Train() string { return "" }

func TestPipelineFrame(t *testing.T) {
	src := &fakeSource{sim: &staticSim{
		cfg:   testConfig(1),
		world: engine.World{Foods: []engine.Food{{X: 0.5, Y: 0.5}}},
	}}
	p := NewPipeline(src, DefaultPalette())

	rec := &recorder{}
	p.Frame(rec)
	p.Frame(rec)

	assert.Equal(t, 2, src.steps)
	assert.Equal(t, uint64(2), p.Frames())
	assert.Equal(t, []string{"clear", "circle", "clear", "circle"}, rec.kinds())
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#00ff80", RGB(0, 255, 128).Hex())
}
