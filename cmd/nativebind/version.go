package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nativebind/nativebind-go/pkg/cheb"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and native backend",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "nativebind %s (backend: %s)\n", cheb.Version, cheb.Backend())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
