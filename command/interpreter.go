// Package command interprets operator input lines.
package command

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pthm-cable/shorelark/config"
	"github.com/pthm-cable/shorelark/playback"
)

// Playback is the part of the playback controller the commands drive.
type Playback interface {
	Toggle() bool
	Reset(cfg config.Config) error
	Train(n int) error
}

// Interpreter executes one command line at a time and writes the
// transcript: the echoed input, command output, and any error.
type Interpreter struct {
	playback Playback
	defaults func() config.Config
	out      playback.Printer
}

// NewInterpreter creates an interpreter. defaults supplies the engine
// default config that reset overrides are applied to.
func NewInterpreter(pb Playback, defaults func() config.Config, out playback.Printer) *Interpreter {
	return &Interpreter{
		playback: pb,
		defaults: defaults,
		out:      out,
	}
}

// Exec echoes line, runs it, and reports failure to the transcript.
// The returned error is the one that was reported, for callers that log.
func (in *Interpreter) Exec(line string) error {
	in.out.Println("")
	in.out.Println("$ " + line)

	err := in.run(line)
	if err != nil {
		in.out.Println("  ^ err: " + err.Error())
		slog.Debug("command failed", "input", line, "error", err)
	}
	return err
}

func (in *Interpreter) run(line string) (err error) {
	// Engines may panic on bad input; surface that as a command failure.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	if strings.ContainsAny(line, "[]") {
		return ErrSyntax
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ErrUnknownCommand
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "p", "pause":
		return in.pause(args)
	case "r", "reset":
		return in.reset(args)
	case "t", "train":
		return in.train(args)
	default:
		return ErrUnknownCommand
	}
}

func (in *Interpreter) pause(args []string) error {
	if len(args) > 0 {
		return errNoParameters
	}
	in.playback.Toggle()
	return nil
}

func (in *Interpreter) reset(args []string) error {
	cfg, err := ParseOverrides(in.defaults(), args)
	if err != nil {
		return err
	}
	return in.playback.Reset(cfg)
}

func (in *Interpreter) train(args []string) error {
	if len(args) > 1 {
		return errAtMostOneParameter
	}

	generations := 1
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: %q is not a generation count", ErrInvalidValue, args[0])
		}
		if n < 1 {
			return fmt.Errorf("%w: generation count must be at least 1", ErrInvalidValue)
		}
		generations = n
	}

	return in.playback.Train(generations)
}
