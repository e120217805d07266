package simulation

import "github.com/pthm-cable/shorelark/neural"

// Role distinguishes prey from predators.
type Role uint8

const (
	RolePrey Role = iota
	RolePredator
)

// Position is a location in the unit square.
type Position struct {
	X, Y float64
}

// Motion is heading (radians) and speed (world units per step).
type Motion struct {
	Rotation float64
	Speed    float64
}

// Eye holds the latest photoreceptor readings, one per cell.
type Eye struct {
	Vision []float64
}

// Species marks an animal's role.
type Species struct {
	Role Role
}

// Satiation counts foods eaten during the current generation.
type Satiation struct {
	Value int
}

// Brain steers an animal from its eye readings.
type Brain struct {
	Net *neural.FFNN
}
