package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "densarea",
	Short: "delimit density areals over a planar zone graph",
	Long: `densarea partitions a planar subdivision of zones into contiguous
density areals:
	- seed regions from zones whose own density already clears a threshold,
	- grow each region by greedy accretion of its densest neighbour,
	- absorb zones fully enclosed by a region,
	- merge regions that became adjacent through growth,
	- erase regions that end up too small to keep.`,
}

// Execute runs RootCmd; each child command adds itself to RootCmd in its
// own init. Called once by main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
