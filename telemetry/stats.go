package telemetry

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/shorelark/engine"
)

// GenerationRecord is one row of generations.csv.
type GenerationRecord struct {
	Generation int     `csv:"generation"`
	ElapsedSec float64 `csv:"elapsed_sec"`

	BirdMin    float64 `csv:"bird_min"`
	BirdMax    float64 `csv:"bird_max"`
	BirdAvg    float64 `csv:"bird_avg"`
	BirdMedian float64 `csv:"bird_median"`

	EagleMin    float64 `csv:"eagle_min"`
	EagleMax    float64 `csv:"eagle_max"`
	EagleAvg    float64 `csv:"eagle_avg"`
	EagleMedian float64 `csv:"eagle_median"`
}

// NewGenerationRecord flattens engine statistics. elapsed is the wall time
// since the simulation was installed.
func NewGenerationRecord(s engine.Statistics, elapsed time.Duration) GenerationRecord {
	return GenerationRecord{
		Generation:  s.Generation,
		ElapsedSec:  elapsed.Seconds(),
		BirdMin:     s.Birds.Min,
		BirdMax:     s.Birds.Max,
		BirdAvg:     s.Birds.Avg,
		BirdMedian:  s.Birds.Median,
		EagleMin:    s.Eagles.Min,
		EagleMax:    s.Eagles.Max,
		EagleAvg:    s.Eagles.Avg,
		EagleMedian: s.Eagles.Median,
	}
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	idx := p * float64(n-1)
	lo := int(idx)
	if lo+1 >= n {
		return sorted[n-1]
	}
	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[lo+1]*frac
}

// LogValue implements slog.LogValuer for structured logging.
func (r GenerationRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generation", r.Generation),
		slog.Float64("elapsed_sec", r.ElapsedSec),
		slog.Float64("bird_avg", r.BirdAvg),
		slog.Float64("bird_max", r.BirdMax),
		slog.Float64("eagle_avg", r.EagleAvg),
		slog.Float64("eagle_max", r.EagleMax),
	)
}
