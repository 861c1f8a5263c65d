package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nativebind/nativebind-go/pkg/logging"
)

var rootCmd = &cobra.Command{
	Use:   "nativebind",
	Short: "Exercise the native Chebyshev binding and byte-buffer utility",
	Long: `nativebind - drive the native bindings from the command line.

Fit a function with a native Chebyshev series and report how well it
approximates the function, or reverse a hex-encoded buffer natively or
inside a WebAssembly sandbox.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log lifecycle events to stderr")
}

// newLogger builds the logger for a command from the --verbose flag.
func newLogger(cmd *cobra.Command) logging.Logger {
	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	return logging.New(slog.New(h))
}
