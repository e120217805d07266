package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

func newHandler(w io.Writer, format string, level slog.Level) (slog.Handler, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(format) {
	case "", "json":
		return slog.NewJSONHandler(w, opts), nil
	case "text":
		return slog.NewTextHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

// setupLogging installs the default slog logger from the log flags. The
// window and terminal front ends own stdout, so logs go to stderr or a file.
func setupLogging() error {
	level, err := parseLevel(logLevel)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stderr
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		w = f
		logCloser = f.Close
	}

	h, err := newHandler(w, logFormat, level)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(h))
	return nil
}

// closeLog closes the log file opened by setupLogging, if any.
func closeLog() {
	if logCloser == nil {
		return
	}
	if err := logCloser(); err != nil {
		fmt.Fprintf(os.Stderr, "closing log file: %v\n", err)
	}
	logCloser = nil
}
