package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/venkatsunilm/photo-post-processing/pkg/preset"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the available enhancement presets",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Available presets (pick the base name; *_raw variants are applied automatically):")
		for _, name := range preset.Names() {
			if strings.HasSuffix(name, "_raw") {
				continue
			}
			p, _ := preset.Lookup(name)
			marker := " "
			if preset.Exists(name + "_raw") {
				marker = "*"
			}
			fmt.Printf("  %s %-22s exposure %+.2f  vibrance %+g  clarity %+g\n",
				marker, name, p.Exposure, p.Vibrance, p.Clarity)
		}
		fmt.Println("\n* has a RAW-optimized variant")
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
