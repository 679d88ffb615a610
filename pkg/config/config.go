// Package config holds the runtime configuration for the processing
// pipeline. Values come from built-in defaults overridden by environment
// variables, with an optional .env file loaded first.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Resolution pixel-count targets. Keys become the output folder labels.
const (
	Pixels4K = 3840 * 2160
	Pixels2K = 2560 * 1440
)

// Config carries every tunable the pipeline reads. It is built once at
// startup and treated as read-only afterwards.
type Config struct {
	// OutputDir is the base directory for processed batches.
	OutputDir string

	// WatermarkPath points at the logo asset (PNG with alpha).
	WatermarkPath string
	// WatermarkOpacity is the overlay alpha in [0,1].
	WatermarkOpacity float64
	// WatermarkScale is the watermark width relative to image width.
	WatermarkScale float64

	// JPEGQuality for encoded output, 1..100.
	JPEGQuality int

	// Resolutions maps an output label to a total pixel-count target.
	Resolutions map[string]int

	// DcrawPath optionally overrides the dcraw binary for RAW decoding.
	DcrawPath string

	// LogFile, when set, mirrors logs into a rotated file.
	LogFile string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputDir:        "output",
		WatermarkPath:    "assets/photographer_logo.png",
		WatermarkOpacity: 0.9,
		WatermarkScale:   0.15,
		JPEGQuality:      90,
		Resolutions: map[string]int{
			"4k": Pixels4K,
			"2k": Pixels2K,
		},
	}
}

// FromEnv builds a Config from defaults plus PHOTOPROC_* environment
// variables. A .env file in the working directory is loaded first when
// present; a missing file is not an error, mirroring godotenv's usual usage.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if v := os.Getenv("PHOTOPROC_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("PHOTOPROC_WATERMARK"); v != "" {
		cfg.WatermarkPath = v
	}
	if v := os.Getenv("PHOTOPROC_WATERMARK_OPACITY"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > 1 {
			return cfg, fmt.Errorf("PHOTOPROC_WATERMARK_OPACITY: want a value in [0,1], got %q", v)
		}
		cfg.WatermarkOpacity = f
	}
	if v := os.Getenv("PHOTOPROC_WATERMARK_SCALE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 || f > 0.5 {
			return cfg, fmt.Errorf("PHOTOPROC_WATERMARK_SCALE: want a value in (0,0.5], got %q", v)
		}
		cfg.WatermarkScale = f
	}
	if v := os.Getenv("PHOTOPROC_JPEG_QUALITY"); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil || q < 1 || q > 100 {
			return cfg, fmt.Errorf("PHOTOPROC_JPEG_QUALITY: want 1..100, got %q", v)
		}
		cfg.JPEGQuality = q
	}
	if v := os.Getenv("PHOTOPROC_DCRAW"); v != "" {
		cfg.DcrawPath = v
	}
	if v := os.Getenv("PHOTOPROC_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	return cfg, nil
}
