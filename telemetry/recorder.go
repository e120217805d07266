package telemetry

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/shorelark/config"
	"github.com/pthm-cable/shorelark/engine"
)

// Recorder turns completed generations into telemetry rows and log lines.
type Recorder struct {
	out     *OutputManager
	started time.Time
	now     func() time.Time

	generations int
}

// NewRecorder creates a recorder writing to out, which may be nil.
func NewRecorder(out *OutputManager) *Recorder {
	r := &Recorder{out: out, now: time.Now}
	r.started = r.now()
	return r
}

// Reset restarts the generation clock and snapshots the new configuration.
func (r *Recorder) Reset(cfg config.Config) {
	r.started = r.now()
	if err := r.out.WriteConfig(cfg); err != nil {
		slog.Warn("failed to write config snapshot", "error", err)
	}
}

// Generation records one completed generation of sim. Engines without
// statistics are logged by summary only.
func (r *Recorder) Generation(sim engine.Simulation, summary string) {
	r.generations++

	reporter, ok := sim.(engine.StatisticsReporter)
	if !ok {
		slog.Info("generation", "summary", summary)
		return
	}
	stats, ok := reporter.LastStatistics()
	if !ok {
		return
	}

	rec := NewGenerationRecord(stats, r.now().Sub(r.started))
	slog.Info("generation", "stats", rec)
	if err := r.out.WriteGeneration(rec); err != nil {
		slog.Warn("failed to write generation", "error", err)
	}
}

// Generations is the number of generations recorded so far.
func (r *Recorder) Generations() int { return r.generations }
