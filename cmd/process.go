package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/venkatsunilm/photo-post-processing/pkg/config"
	"github.com/venkatsunilm/photo-post-processing/pkg/logging"
	"github.com/venkatsunilm/photo-post-processing/pkg/pipeline"
)

var (
	processPreset      string
	processOutput      string
	processNoEnhance   bool
	processNoWatermark bool
)

var processCmd = &cobra.Command{
	Use:   "process [flags] <directory-or-zip>",
	Short: "Enhance, resize, watermark, and package a batch of photos",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.FromEnv()
		if err != nil {
			return err
		}
		if processOutput != "" {
			cfg.OutputDir = processOutput
		}

		log := logging.New(cfg.LogFile, verbose)
		defer log.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		runner := pipeline.New(cfg, log)
		results, summary, err := runner.Run(ctx, args[0], pipeline.Options{
			Preset:      processPreset,
			NoEnhance:   processNoEnhance,
			NoWatermark: processNoWatermark,
		})
		if err != nil {
			return err
		}

		for _, r := range results {
			if r.Success {
				continue
			}
			fmt.Fprintf(os.Stderr, "  failed: %s (%s)\n", filepath.Base(r.Source), r.Err)
		}
		fmt.Printf("Processed %d files: %d succeeded, %d failed\n",
			summary.Total, summary.Succeeded, summary.Failed)
		for _, a := range summary.Archives {
			fmt.Printf("  archive: %s\n", a)
		}

		if !summary.AnySucceeded() {
			log.Error("no files succeeded", zap.Int("total", summary.Total))
			// returned instead of exiting here so the log sync and signal
			// teardown defers still run; Execute maps this to exit status 1
			return fmt.Errorf("no files were processed successfully")
		}
		return nil
	},
}

func init() {
	processCmd.Flags().StringVarP(&processPreset, "preset", "p", "portrait_natural", "base preset name (RAW variants chosen automatically)")
	processCmd.Flags().StringVarP(&processOutput, "output", "o", "", "output base directory (default from config)")
	processCmd.Flags().BoolVar(&processNoEnhance, "no-enhance", false, "skip enhancement: resize and watermark only")
	processCmd.Flags().BoolVar(&processNoWatermark, "no-watermark", false, "skip the watermark overlay")
	rootCmd.AddCommand(processCmd)
}
