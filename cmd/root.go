package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pthm-cable/shorelark/config"
	"github.com/pthm-cable/shorelark/game"
	"github.com/pthm-cable/shorelark/simulation"
)

var (
	configPath string   // Path to a YAML file of default parameters
	seed       int64    // RNG seed, 0 means time-based
	outputDir  string   // Directory for CSV logs and config snapshots
	logLevel   string   // Log verbosity level
	logFormat  string   // json or text
	logFile    string   // Log destination, empty means stderr
	execLines  []string // Commands run before the first frame
	scrollback int      // Transcript length limit

	tuiFPS int // Terminal frames per second

	generations int // Generations to train headlessly
)

// logCloser closes the log file opened by setupLogging, if any.
var logCloser func() error

// rootCmd opens the simulation window.
var rootCmd = &cobra.Command{
	Use:          "shorelark",
	Short:        "Evolution simulation of birds, food and eagles",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signalContext()
		defer stop()

		g, err := newGame()
		if err != nil {
			return err
		}
		defer g.Close()

		d := game.NewWindowDriver(game.DefaultOptions().Title, g.Transcript())
		defer d.Close()

		return g.Run(ctx, d, d.Lines())
	},
}

// tuiCmd runs the simulation in the terminal.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the simulation with an ASCII map in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signalContext()
		defer stop()

		g, err := newGame()
		if err != nil {
			return err
		}
		defer g.Close()

		return game.NewTerminalDriver(g.Transcript(), tuiFPS).Run(ctx, g)
	},
}

// trainCmd trains without any front end and prints generation summaries.
var trainCmd = &cobra.Command{
	Use:   "train [name=value ...]",
	Short: "Train generations headlessly and print their statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signalContext()
		defer stop()

		eng, err := newEngine()
		if err != nil {
			return err
		}
		return game.Train(ctx, eng, game.TrainOptions{
			Generations: generations,
			Overrides:   args,
			OutputDir:   outputDir,
		}, cmd.OutOrStdout())
	},
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func newEngine() (*simulation.Engine, error) {
	defaults := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		defaults = loaded
	}
	if err := simulation.Validate(defaults); err != nil {
		return nil, err
	}

	rngSeed := seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	slog.Info("engine ready", "seed", rngSeed, "config", configPath)
	return simulation.NewEngine(defaults, rngSeed), nil
}

func newGame() (*game.Game, error) {
	eng, err := newEngine()
	if err != nil {
		return nil, err
	}

	opts := game.DefaultOptions()
	opts.OutputDir = outputDir
	if scrollback > 0 {
		opts.Scrollback = scrollback
	}

	g, err := game.New(eng, opts)
	if err != nil {
		return nil, err
	}
	for _, line := range execLines {
		g.Submit(line)
	}
	return g, nil
}

// Execute runs the CLI.
func Execute() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}

// execute runs the selected command and closes the log file whether or not
// the command failed.
func execute() error {
	defer closeLog()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML file of default parameters (empty = built-in defaults)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "RNG seed (0 = time-based)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "Output directory for CSV logs and config snapshot")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "json", "Log format (json, text)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().IntVar(&scrollback, "scrollback", 0, "Transcript line limit (0 = default)")
	rootCmd.PersistentFlags().StringArrayVar(&execLines, "exec", nil, "Command to run before the first frame, repeatable")

	tuiCmd.Flags().IntVar(&tuiFPS, "fps", 20, "Terminal frames per second")

	trainCmd.Flags().IntVarP(&generations, "generations", "n", 1, "Number of generations to train")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(trainCmd)
}
