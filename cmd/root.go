package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags.
var Version = "0.0.0-dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "photoproc",
	Short:         "photoproc - batch photo enhancement with format-aware presets",
	Long:          "photoproc enhances batches of JPEG/PNG/RAW photos with named presets,\nresizes to 2K/4K targets, watermarks, and packages zipped output folders.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}
