package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func newMainCMD() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qoybench <file_or_directory> <runs>",
		Short: "Benchmark scalar vs accelerated RGBA to YCbCrA conversion",
		Long: "Decodes a PNG file, or every *.png directly inside a directory, and times the scalar (C) " +
			"and accelerated (RVV) RGBA to YCbCrA conversion routines on it. Prints the per-image and " +
			"global average time per call.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runBench,
	}

	cmd.Flags().Bool("verify", true, "Compare the output of both routines after timing and warn when they differ")
	cmd.Flags().Bool("strict-exit", false, "Exit with status 2 when no image was benchmarked")
	cmd.Flags().BoolP("verbose", "v", false, "Log debug information to stderr")
	// Stop at the first positional argument so a run count like -5 is not
	// taken for a flag.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func main() {
	err := newMainCMD().Execute()
	switch {
	case err == nil:
	case errors.Is(err, errNoImages):
		os.Exit(2)
	default:
		slog.Error("qoybench failed", "error", err)
		os.Exit(1)
	}
}
