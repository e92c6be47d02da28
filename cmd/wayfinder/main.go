// Command wayfinder computes walking routes inside a building and serves
// them over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "wayfinder",
		Short:         "Indoor wayfinding: routes between rooms, floors and stairwells",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "YAML config file (optional)")

	root.AddCommand(newRouteCmd(&cfgPath))
	root.AddCommand(newLocationsCmd(&cfgPath))
	root.AddCommand(newReachableCmd(&cfgPath))
	root.AddCommand(newStatsCmd(&cfgPath))
	root.AddCommand(newScanCmd(&cfgPath))
	root.AddCommand(newScansCmd(&cfgPath))
	root.AddCommand(newServeCmd(&cfgPath))
	root.AddCommand(newSeedCmd(&cfgPath))
	return root
}
