package neural

import "math/rand"

// Individual is one member of a population: a chromosome and its fitness.
type Individual struct {
	Chromosome []float64
	Fitness    float64
}

// Mutation perturbs genes in place.
type Mutation struct {
	// Chance is the probability each gene mutates, in [0, 1].
	Chance float64

	// Coeff scales the perturbation, which is uniform in [-Coeff, Coeff].
	Coeff float64
}

// Mutate perturbs each gene with probability Chance.
func (m Mutation) Mutate(rng *rand.Rand, chromosome []float64) {
	for i := range chromosome {
		if rng.Float64() < m.Chance {
			sign := 1.0
			if rng.Intn(2) == 0 {
				sign = -1
			}
			chromosome[i] += sign * m.Coeff * rng.Float64()
		}
	}
}

// SelectRoulette picks an index with probability proportional to fitness.
// Negative fitness counts as zero; when every fitness is zero the pick is
// uniform.
func SelectRoulette(rng *rand.Rand, population []Individual) int {
	total := 0.0
	for _, ind := range population {
		total += max(ind.Fitness, 0)
	}
	if total == 0 {
		return rng.Intn(len(population))
	}

	r := rng.Float64() * total
	for i, ind := range population {
		r -= max(ind.Fitness, 0)
		if r < 0 {
			return i
		}
	}
	return len(population) - 1
}

// CrossoverUniform takes each gene from either parent with equal probability.
// The parents must have the same length.
func CrossoverUniform(rng *rand.Rand, a, b []float64) []float64 {
	child := make([]float64, len(a))
	for i := range child {
		if rng.Intn(2) == 0 {
			child[i] = a[i]
		} else {
			child[i] = b[i]
		}
	}
	return child
}

// Evolve breeds a new population of the same size: two roulette-selected
// parents per child, uniform crossover, then mutation.
func Evolve(rng *rand.Rand, population []Individual, m Mutation) [][]float64 {
	if len(population) == 0 {
		return nil
	}
	next := make([][]float64, len(population))
	for i := range next {
		a := population[SelectRoulette(rng, population)].Chromosome
		b := population[SelectRoulette(rng, population)].Chromosome
		child := CrossoverUniform(rng, a, b)
		m.Mutate(rng, child)
		next[i] = child
	}
	return next
}
