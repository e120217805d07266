// Package simulation is a self-contained engine for the shorelark viewer.
// Birds fly around the unit square, steered by small neural brains fed from
// their eyes, and eat food on contact. Eagles fly the same way but watch the
// birds. At the end of each generation fitness is reported, brains are bred
// from the fittest animals and the world is reseeded.
package simulation

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"slices"
	"strings"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/shorelark/config"
	"github.com/pthm-cable/shorelark/engine"
	"github.com/pthm-cable/shorelark/neural"
)

// steerDamping scales the configured rotation acceleration to a per-step turn.
const steerDamping = 0.1

// brainOutputs are thrust, turn left and turn right.
const brainOutputs = 3

// ErrInvalidConfig is returned for configurations the simulation cannot run.
var ErrInvalidConfig = errors.New("invalid configuration")

// Engine builds simulations. Each New call draws from its own seeded stream,
// so a fixed Seed makes a whole session reproducible.
type Engine struct {
	Defaults config.Config
	Seed     int64

	built int64
}

// NewEngine creates an engine with the given defaults and seed.
func NewEngine(defaults config.Config, seed int64) *Engine {
	return &Engine{Defaults: defaults.Clone(), Seed: seed}
}

// DefaultConfig returns a copy of the engine defaults.
func (e *Engine) DefaultConfig() config.Config {
	return e.Defaults.Clone()
}

// New validates cfg and builds a fresh simulation.
func (e *Engine) New(cfg config.Config) (engine.Simulation, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(e.Seed + e.built))
	e.built++
	return New(cfg, rng), nil
}

// Validate reports whether cfg can drive a simulation.
func Validate(cfg config.Config) error {
	if len(cfg.Extra) > 0 {
		names := make([]string, 0, len(cfg.Extra))
		for name := range cfg.Extra {
			names = append(names, name)
		}
		slices.Sort(names)
		return fmt.Errorf("%w: unknown field(s) %s", ErrInvalidConfig, strings.Join(names, ", "))
	}

	var problems []string
	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"eye_fov_angle", cfg.EyeFovAngle},
		{"eye_fov_range", cfg.EyeFovRange},
		{"food_size", cfg.FoodSize},
		{"sim_speed_min", cfg.SimSpeedMin},
		{"sim_speed_max", cfg.SimSpeedMax},
		{"sim_speed_accel", cfg.SimSpeedAccel},
		{"sim_rotation_accel", cfg.SimRotationAccel},
		{"ga_mut_chance", cfg.GaMutChance},
		{"ga_mut_coeff", cfg.GaMutCoeff},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			problems = append(problems, f.name+" must be finite")
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	check(cfg.WorldAnimals >= 0, "world_animals must not be negative")
	check(cfg.WorldEagles >= 0, "world_eagles must not be negative")
	check(cfg.WorldFoods >= 0, "world_foods must not be negative")
	check(cfg.BrainNeurons >= 1, "brain_neurons must be at least 1")
	check(cfg.EyeCells >= 1, "eye_cells must be at least 1")
	check(cfg.EyeFovAngle > 0, "eye_fov_angle must be positive")
	check(cfg.EyeFovRange > 0, "eye_fov_range must be positive")
	check(cfg.FoodSize > 0, "food_size must be positive")
	check(cfg.SimSpeedMin >= 0 && cfg.SimSpeedMin <= cfg.SimSpeedMax, "sim_speed_min must be within [0, sim_speed_max]")
	check(cfg.SimGenerationLen >= 1, "sim_generation_length must be at least 1")
	check(cfg.GaReverse == 0 || cfg.GaReverse == 1, "ga_reverse must be 0 or 1")
	check(cfg.GaMutChance >= 0 && cfg.GaMutChance <= 1, "ga_mut_chance must be within [0, 1]")

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Simulation is one running world. It is not safe for concurrent use.
type Simulation struct {
	cfg config.Config
	rng *rand.Rand

	world  *ecs.World
	mapper *ecs.Map6[Position, Motion, Eye, Species, Satiation, Brain]
	filter *ecs.Filter6[Position, Motion, Eye, Species, Satiation, Brain]

	foods []Point

	age        int
	generation int

	last    engine.Statistics
	hasLast bool

	// scratch target lists reused across steps
	birdTargets []Point
}

// New builds a simulation for an already validated cfg.
func New(cfg config.Config, rng *rand.Rand) *Simulation {
	world := ecs.NewWorld()
	s := &Simulation{
		cfg:    cfg.Clone(),
		rng:    rng,
		world:  world,
		mapper: ecs.NewMap6[Position, Motion, Eye, Species, Satiation, Brain](world),
		filter: ecs.NewFilter6[Position, Motion, Eye, Species, Satiation, Brain](world),
		foods:  make([]Point, cfg.WorldFoods),
	}

	for i := range s.foods {
		s.foods[i] = s.randomPoint()
	}
	s.spawn(RolePrey, cfg.WorldAnimals)
	s.spawn(RolePredator, cfg.WorldEagles)

	return s
}

func (s *Simulation) spawn(role Role, n int) {
	for range n {
		pos := Position{X: s.rng.Float64(), Y: s.rng.Float64()}
		motion := s.randomMotion()
		eye := Eye{Vision: make([]float64, s.cfg.EyeCells)}
		species := Species{Role: role}
		sat := Satiation{}
		brain := Brain{Net: neural.NewFFNN(s.rng, s.topology())}
		s.mapper.NewEntity(&pos, &motion, &eye, &species, &sat, &brain)
	}
}

// topology is eye cells in, brain_neurons hidden, brainOutputs out.
func (s *Simulation) topology() []int {
	return []int{s.cfg.EyeCells, s.cfg.BrainNeurons, brainOutputs}
}

func (s *Simulation) randomPoint() Point {
	return Point{X: s.rng.Float64(), Y: s.rng.Float64()}
}

func (s *Simulation) randomMotion() Motion {
	return Motion{
		Rotation: s.rng.Float64() * 2 * math.Pi,
		Speed:    (s.cfg.SimSpeedMin + s.cfg.SimSpeedMax) / 2,
	}
}

// Config returns a copy of the configuration the simulation was built with.
func (s *Simulation) Config() config.Config {
	return s.cfg.Clone()
}

// Generation is the number of completed generations.
func (s *Simulation) Generation() int { return s.generation }

// Age is the number of steps taken in the current generation.
func (s *Simulation) Age() int { return s.age }

// LastStatistics returns the statistics of the most recent generation.
func (s *Simulation) LastStatistics() (engine.Statistics, bool) {
	return s.last, s.hasLast
}

// World returns a snapshot of every entity. Birds and eagles keep their
// creation order across steps.
func (s *Simulation) World() engine.World {
	w := engine.World{
		Foods: make([]engine.Food, len(s.foods)),
	}
	for i, f := range s.foods {
		w.Foods[i] = engine.Food{X: f.X, Y: f.Y}
	}

	query := s.filter.Query()
	for query.Next() {
		pos, motion, eye, species, _, _ := query.Get()
		a := engine.Animal{
			X:        pos.X,
			Y:        pos.Y,
			Rotation: motion.Rotation,
			Vision:   slices.Clone(eye.Vision),
		}
		if species.Role == RolePredator {
			w.Eagles = append(w.Eagles, a)
		} else {
			w.Birds = append(w.Birds, a)
		}
	}
	return w
}

// Step advances the world by one tick. When the tick ends a generation the
// world is reseeded and the generation summary is returned.
func (s *Simulation) Step() (string, bool) {
	s.processCollisions()
	s.processVision()
	s.processMovement()

	s.age++
	if s.age > s.cfg.SimGenerationLen {
		return s.evolve(), true
	}
	return "", false
}

// Train steps until the current generation ends and returns its summary.
func (s *Simulation) Train() string {
	for {
		if summary, ok := s.Step(); ok {
			return summary
		}
	}
}

func (s *Simulation) processCollisions() {
	query := s.filter.Query()
	for query.Next() {
		pos, _, _, species, sat, _ := query.Get()
		if species.Role != RolePrey {
			continue
		}
		for i := range s.foods {
			if math.Hypot(s.foods[i].X-pos.X, s.foods[i].Y-pos.Y) <= s.cfg.FoodSize {
				sat.Value++
				s.foods[i] = s.randomPoint()
			}
		}
	}
}

func (s *Simulation) processVision() {
	s.birdTargets = s.birdTargets[:0]
	query := s.filter.Query()
	for query.Next() {
		pos, _, _, species, _, _ := query.Get()
		if species.Role == RolePrey {
			s.birdTargets = append(s.birdTargets, Point{X: pos.X, Y: pos.Y})
		}
	}

	query = s.filter.Query()
	for query.Next() {
		pos, motion, eye, species, _, _ := query.Get()
		targets := s.foods
		if species.Role == RolePredator {
			targets = s.birdTargets
		}
		ProcessVision(eye.Vision, *pos, motion.Rotation, s.cfg.EyeFovAngle, s.cfg.EyeFovRange, targets)
	}
}

func (s *Simulation) processMovement() {
	query := s.filter.Query()
	for query.Next() {
		pos, motion, eye, _, _, brain := query.Get()

		turn, urge := steer(brain.Net.Forward(eye.Vision))
		motion.Rotation = math.Mod(motion.Rotation+turn*s.cfg.SimRotationAccel*steerDamping, 2*math.Pi)
		motion.Speed = clamp(motion.Speed+urge*s.cfg.SimSpeedAccel*s.cfg.SimSpeedMax, s.cfg.SimSpeedMin, s.cfg.SimSpeedMax)

		pos.X = wrap(pos.X + math.Cos(motion.Rotation)*motion.Speed)
		pos.Y = wrap(pos.Y + math.Sin(motion.Rotation)*motion.Speed)
	}
}

// steer maps brain outputs to a turn and a speed change, both in [-1, 1].
func steer(out []float64) (turn, urge float64) {
	urge = clamp(out[0]-0.5, -1, 1)
	turn = clamp(out[1]-out[2], -1, 1)
	return turn, urge
}

func (s *Simulation) evolve() string {
	maxSat := map[Role]int{}
	query := s.filter.Query()
	for query.Next() {
		_, _, _, species, sat, _ := query.Get()
		maxSat[species.Role] = max(maxSat[species.Role], sat.Value)
	}

	pops := map[Role][]neural.Individual{}
	query = s.filter.Query()
	for query.Next() {
		_, _, _, species, sat, brain := query.Get()
		fitness := float64(sat.Value)
		if s.cfg.GaReverse == 1 {
			fitness = float64(maxSat[species.Role] - sat.Value)
		}
		pops[species.Role] = append(pops[species.Role], neural.Individual{
			Chromosome: brain.Net.Weights(),
			Fitness:    fitness,
		})
	}

	mutation := neural.Mutation{Chance: s.cfg.GaMutChance, Coeff: s.cfg.GaMutCoeff}
	next := map[Role][][]float64{
		RolePrey:     neural.Evolve(s.rng, pops[RolePrey], mutation),
		RolePredator: neural.Evolve(s.rng, pops[RolePredator], mutation),
	}

	bred := map[Role]int{}
	query = s.filter.Query()
	for query.Next() {
		pos, motion, eye, species, sat, brain := query.Get()

		chromosome := next[species.Role][bred[species.Role]]
		bred[species.Role]++
		net, err := neural.FromWeights(s.topology(), chromosome)
		if err != nil {
			panic(fmt.Sprintf("simulation: bred brain does not fit topology: %v", err))
		}
		brain.Net = net

		*pos = Position{X: s.rng.Float64(), Y: s.rng.Float64()}
		*motion = s.randomMotion()
		clear(eye.Vision)
		sat.Value = 0
	}

	for i := range s.foods {
		s.foods[i] = s.randomPoint()
	}

	s.last = engine.Statistics{
		Generation: s.generation,
		Birds:      FitnessOf(fitnesses(pops[RolePrey])),
		Eagles:     FitnessOf(fitnesses(pops[RolePredator])),
	}
	s.hasLast = true
	s.generation++
	s.age = 0

	slog.Debug("generation evolved",
		"generation", s.last.Generation,
		"birds_avg", s.last.Birds.Avg,
		"eagles_avg", s.last.Eagles.Avg,
	)

	return Summary(s.last)
}

func fitnesses(pop []neural.Individual) []float64 {
	out := make([]float64, len(pop))
	for i, ind := range pop {
		out[i] = ind.Fitness
	}
	return out
}

func wrap(v float64) float64 {
	v = math.Mod(v, 1)
	if v < 0 {
		v++
	}
	if v >= 1 {
		return 0
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
