package simulation

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/shorelark/engine"
	"github.com/pthm-cable/shorelark/telemetry"
)

// FitnessOf summarizes a population's fitness values. An empty population
// yields zeros.
func FitnessOf(values []float64) engine.Fitness {
	if len(values) == 0 {
		return engine.Fitness{}
	}
	return engine.Fitness{
		Min:    floats.Min(values),
		Max:    floats.Max(values),
		Avg:    stat.Mean(values, nil),
		Median: median(values),
	}
}

func median(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return telemetry.Percentile(sorted, 0.5)
}

// Summary formats statistics as the operator-facing generation report.
func Summary(s engine.Statistics) string {
	return fmt.Sprintf("generation %d:\n%s\n%s",
		s.Generation,
		formatFitness("Birds", s.Birds),
		formatFitness("Eagles", s.Eagles),
	)
}

func formatFitness(name string, f engine.Fitness) string {
	return fmt.Sprintf("%s: min[%.2f] max[%.2f] avg[%.2f] median[%.2f]", name, f.Min, f.Max, f.Avg, f.Median)
}
