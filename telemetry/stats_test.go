package telemetry

import (
	"math"
	"testing"
	"time"

	"github.com/pthm-cable/shorelark/engine"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"p10", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.1, 1.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestNewGenerationRecord(t *testing.T) {
	rec := NewGenerationRecord(engine.Statistics{
		Generation: 3,
		Birds:      engine.Fitness{Min: 1, Max: 2, Avg: 1.5, Median: 1.5},
		Eagles:     engine.Fitness{Max: 4},
	}, 1500*time.Millisecond)

	if rec.Generation != 3 || rec.ElapsedSec != 1.5 {
		t.Errorf("unexpected header fields: %+v", rec)
	}
	if rec.BirdMin != 1 || rec.BirdMax != 2 || rec.BirdAvg != 1.5 || rec.BirdMedian != 1.5 {
		t.Errorf("unexpected bird fields: %+v", rec)
	}
	if rec.EagleMax != 4 {
		t.Errorf("EagleMax = %v, want 4", rec.EagleMax)
	}
}
