// Package engine defines the contract between the front end and a simulation
// engine. The front end never looks inside a Simulation; it only steps it,
// trains it and reads snapshots.
package engine

import "github.com/pthm-cable/shorelark/config"

// Engine builds simulations.
type Engine interface {
	// DefaultConfig returns a fresh copy of the engine defaults.
	DefaultConfig() config.Config
	// New constructs a simulation. It is the single place that validates
	// generic keys left in config.Config.Extra.
	New(cfg config.Config) (Simulation, error)
}

// Simulation is an opaque running simulation.
type Simulation interface {
	// Config returns the effective configuration.
	Config() config.Config
	// World returns the current world snapshot.
	World() World
	// Step advances one tick. The summary is reported only when a
	// generation boundary was crossed during this tick.
	Step() (summary string, ok bool)
	// Train advances to the end of the current generation.
	Train() string
}

// StatisticsReporter is implemented by simulations that expose the
// statistics behind their generation summaries.
type StatisticsReporter interface {
	LastStatistics() (Statistics, bool)
}

// World is a snapshot of everything drawable.
type World struct {
	Foods  []Food
	Birds  []Animal // prey
	Eagles []Animal // predators
}

// Food is a food pellet position.
type Food struct {
	X, Y float64
}

// Animal is one agent. Vision has one reading per eye cell, ordered left to
// right across the field of view, each in [0, 1].
type Animal struct {
	X, Y     float64
	Rotation float64
	Vision   []float64
}

// Statistics summarizes one completed generation.
type Statistics struct {
	Generation int
	Birds      Fitness
	Eagles     Fitness
}

// Fitness holds the fitness distribution of one species.
type Fitness struct {
	Min    float64
	Max    float64
	Avg    float64
	Median float64
}
