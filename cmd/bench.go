package main

import (
	"errors"
	"log/slog"
	"os"
	"runtime"

	qoy "github.com/eason9999/qoy-rvv"
	"github.com/eason9999/qoy-rvv/clock"
	"github.com/eason9999/qoy-rvv/report"
	"github.com/eason9999/qoy-rvv/ycbcr"
	"github.com/spf13/cobra"
)

var errNoImages = errors.New("no image was benchmarked")

func runBench(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	verify, _ := cmd.Flags().GetBool("verify")
	config, ok := qoy.ParseArgs(args, verify)
	if !ok {
		report.New(cmd.OutOrStdout()).Usage(os.Args[0])
		return nil
	}

	clk := clock.Default()
	logger.Info("timer",
		"source", clk.Source(),
		"highResolution", clk.HighResolution(),
	)
	if !clk.HighResolution() {
		logger.Warn("no high-resolution timer on this platform, timings have reduced precision")
	}
	logger.Info("host",
		"arch", runtime.GOARCH,
		"vectorFeatures", ycbcr.HostFeatures(),
	)

	engine := qoy.New(config,
		qoy.WithClock(clk),
		qoy.WithOutput(cmd.OutOrStdout()),
		qoy.WithLogger(logger),
	)

	if _, ok := engine.Process(); !ok {
		if strict, _ := cmd.Flags().GetBool("strict-exit"); strict {
			return errNoImages
		}
	}

	return nil
}
