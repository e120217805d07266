package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pthm-cable/shorelark/engine"
)

func TestFitnessOf(t *testing.T) {
	assert.Equal(t, engine.Fitness{Min: 1, Max: 9, Avg: 4, Median: 2}, FitnessOf([]float64{9, 1, 2}))
	assert.Equal(t, engine.Fitness{Min: 1, Max: 4, Avg: 2.5, Median: 2.5}, FitnessOf([]float64{4, 1, 2, 3}))
	assert.Equal(t, engine.Fitness{}, FitnessOf(nil))
}

func TestFitnessOfKeepsInput(t *testing.T) {
	values := []float64{3, 1, 2}
	FitnessOf(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestSummary(t *testing.T) {
	got := Summary(engine.Statistics{
		Generation: 4,
		Birds:      engine.Fitness{Min: 1, Max: 10, Avg: 4.333, Median: 4},
		Eagles:     engine.Fitness{},
	})

	want := "generation 4:\n" +
		"Birds: min[1.00] max[10.00] avg[4.33] median[4.00]\n" +
		"Eagles: min[0.00] max[0.00] avg[0.00] median[0.00]"
	assert.Equal(t, want, got)
}
