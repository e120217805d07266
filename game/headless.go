package game

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pthm-cable/shorelark/command"
	"github.com/pthm-cable/shorelark/engine"
	"github.com/pthm-cable/shorelark/playback"
	"github.com/pthm-cable/shorelark/telemetry"
)

// writerPrinter prints transcript lines to an io.Writer.
type writerPrinter struct {
	w io.Writer
}

func (p writerPrinter) Println(line string) {
	fmt.Fprintln(p.w, line)
}

// TrainOptions configure a headless training run.
type TrainOptions struct {
	Generations int

	// Overrides are reset-style name=value tokens applied to the defaults.
	Overrides []string

	OutputDir string
}

// Train runs generations without a front end, printing each summary to out
// with a blank line between them. ctx is checked between generations.
func Train(ctx context.Context, eng engine.Engine, opts TrainOptions, out io.Writer) error {
	if opts.Generations < 1 {
		return fmt.Errorf("generations must be at least 1, got %d", opts.Generations)
	}

	cfg, err := command.ParseOverrides(eng.DefaultConfig(), opts.Overrides)
	if err != nil {
		return err
	}

	printer := writerPrinter{w: out}
	controller, err := playback.New(eng, printer)
	if err != nil {
		return err
	}
	if err := controller.Reset(cfg); err != nil {
		return err
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer output.Close()

	recorder := telemetry.NewRecorder(output)
	recorder.Reset(cfg)
	controller.OnGeneration(recorder.Generation)

	for i := 0; i < opts.Generations; i++ {
		if err := ctx.Err(); err != nil {
			slog.Info("training interrupted", "completed", i, "requested", opts.Generations)
			return err
		}
		if i > 0 {
			printer.Println("")
		}
		if err := controller.Train(1); err != nil {
			return err
		}
	}
	return nil
}
