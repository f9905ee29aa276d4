package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/profile"
	"gopkg.in/natefinch/lumberjack.v2"
)

// setupLogging installs the default slog logger. The returned function
// flushes and closes the log file, if any.
func setupLogging(file string, verbose bool) func() {
	var output io.Writer = os.Stderr
	closeLog := func() {}

	if file != "" {
		logger := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10,
			MaxBackups: 3,
		}

		output = logger
		closeLog = func() { _ = logger.Close() }
	}

	handler := slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: logLevel(verbose),
	})

	slog.SetDefault(slog.New(handler))

	return closeLog
}

func logLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

type stopper interface {
	Stop()
}

type noProfile struct{}

func (noProfile) Stop() {}

func startProfile(mode string) (stopper, error) {
	switch mode {
	case "":
		return noProfile{}, nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook), nil
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook), nil
	default:
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}
}
