package neural

import (
	"math/rand"
	"testing"
)

func TestSelectRouletteProportional(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pop := []Individual{{Fitness: 2}, {Fitness: 1}, {Fitness: 4}, {Fitness: 3}}

	counts := make([]int, len(pop))
	for range 10000 {
		counts[SelectRoulette(rng, pop)]++
	}

	// expected shares 0.2, 0.1, 0.4, 0.3
	want := []int{2000, 1000, 4000, 3000}
	for i := range counts {
		if d := counts[i] - want[i]; d < -300 || d > 300 {
			t.Errorf("individual %d picked %d times, want about %d", i, counts[i], want[i])
		}
	}
}

func TestSelectRouletteAllZero(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pop := []Individual{{}, {}, {}}

	seen := map[int]bool{}
	for range 100 {
		seen[SelectRoulette(rng, pop)] = true
	}
	if len(seen) != 3 {
		t.Errorf("uniform fallback reached %d of 3 individuals", len(seen))
	}
}

func TestCrossoverUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := make([]float64, 100)
	b := make([]float64, 100)
	for i := range b {
		b[i] = 1
	}

	child := CrossoverUniform(rng, a, b)

	fromB := 0
	for _, g := range child {
		if g != 0 && g != 1 {
			t.Fatalf("gene %f from neither parent", g)
		}
		fromB += int(g)
	}
	if fromB < 30 || fromB > 70 {
		t.Errorf("%d of 100 genes from b", fromB)
	}
}

func TestMutation(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	genes := []float64{1, 2, 3}
	Mutation{Chance: 0, Coeff: 10}.Mutate(rng, genes)
	if genes[0] != 1 || genes[1] != 2 || genes[2] != 3 {
		t.Errorf("zero chance mutated genes: %v", genes)
	}

	Mutation{Chance: 1, Coeff: 0.5}.Mutate(rng, genes)
	for i, g := range genes {
		base := float64(i + 1)
		if g == base || g < base-0.5 || g > base+0.5 {
			t.Errorf("gene %d = %f, want within 0.5 of %f", i, g, base)
		}
	}
}

func TestEvolveKeepsShape(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	pop := []Individual{
		{Chromosome: []float64{1, 1}, Fitness: 1},
		{Chromosome: []float64{2, 2}, Fitness: 0},
	}

	next := Evolve(rng, pop, Mutation{})

	if len(next) != 2 {
		t.Fatalf("got %d children, want 2", len(next))
	}
	for _, c := range next {
		if c[0] != 1 || c[1] != 1 {
			t.Errorf("child %v does not come from the only fit parent", c)
		}
	}
	if Evolve(rng, nil, Mutation{}) != nil {
		t.Error("empty population bred children")
	}
}
