package simulation

import "math"

// Point is a visible object for the eye.
type Point struct {
	X, Y float64
}

// ProcessVision fills vision (one entry per cell) with the energy of targets
// inside the field of view. A target at distance d contributes
// (fovRange-d)/fovRange to the cell its bearing falls in; cells are ordered
// from rotation-fovAngle/2 to rotation+fovAngle/2 and saturate at 1.
func ProcessVision(vision []float64, pos Position, rotation, fovAngle, fovRange float64, targets []Point) {
	for i := range vision {
		vision[i] = 0
	}
	cells := len(vision)
	if cells == 0 || !(fovAngle > 0) || !(fovRange > 0) || math.IsInf(fovAngle, 0) || math.IsNaN(rotation) {
		return
	}

	for _, t := range targets {
		dx, dy := t.X-pos.X, t.Y-pos.Y
		dist := math.Hypot(dx, dy)
		if !(dist < fovRange) {
			continue
		}

		angle := normalizeAngle(math.Atan2(dy, dx) - rotation)
		if !(angle >= -fovAngle/2 && angle <= fovAngle/2) {
			continue
		}

		cell := int((angle + fovAngle/2) / fovAngle * float64(cells))
		cell = min(cell, cells-1)
		if cell < 0 {
			continue
		}

		vision[cell] += (fovRange - dist) / fovRange
	}

	for i, v := range vision {
		vision[i] = math.Min(v, 1)
	}
}

// normalizeAngle wraps angle to [-pi, pi].
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
