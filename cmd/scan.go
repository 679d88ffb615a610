package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/venkatsunilm/photo-post-processing/pkg/pipeline"
	"github.com/venkatsunilm/photo-post-processing/pkg/preset"
)

var scanPreset string

var scanCmd = &cobra.Command{
	Use:   "scan [flags] <directory-or-zip>",
	Short: "Show the format mix of a batch and which preset variant each file would get",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if scanPreset != "" && !preset.Exists(scanPreset) {
			return &preset.UnknownPresetError{Name: scanPreset}
		}

		workDir, isTemp, err := pipeline.ExtractZipIfNeeded(args[0])
		if err != nil {
			return err
		}
		if isTemp {
			defer os.RemoveAll(workDir)
		}

		files, err := pipeline.CollectImages(workDir)
		if err != nil {
			return err
		}

		var raw, jpg, other int
		for _, f := range files {
			format := preset.DetectFormat(f)
			switch format {
			case preset.FormatRAW:
				raw++
			case preset.FormatJPEG:
				jpg++
			default:
				other++
			}
			if scanPreset != "" {
				resolved, rerr := preset.Resolve(scanPreset, format)
				if rerr != nil {
					return rerr
				}
				fmt.Printf("  %-40s %-5s -> %s\n", filepath.Base(f), format, resolved.Name)
			}
		}
		fmt.Printf("%d files: %d RAW, %d JPEG, %d other\n", len(files), raw, jpg, other)
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVarP(&scanPreset, "preset", "p", "", "preview preset resolution per file")
	rootCmd.AddCommand(scanCmd)
}
