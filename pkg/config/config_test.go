package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, 0.9, cfg.WatermarkOpacity)
	assert.Equal(t, 0.15, cfg.WatermarkScale)
	assert.Equal(t, 90, cfg.JPEGQuality)
	assert.Equal(t, Pixels4K, cfg.Resolutions["4k"])
	assert.Equal(t, Pixels2K, cfg.Resolutions["2k"])
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PHOTOPROC_OUTPUT_DIR", "/tmp/batches")
	t.Setenv("PHOTOPROC_WATERMARK", "/tmp/logo.png")
	t.Setenv("PHOTOPROC_WATERMARK_OPACITY", "0.5")
	t.Setenv("PHOTOPROC_WATERMARK_SCALE", "0.2")
	t.Setenv("PHOTOPROC_JPEG_QUALITY", "85")
	t.Setenv("PHOTOPROC_DCRAW", "/opt/bin/dcraw")
	t.Setenv("PHOTOPROC_LOG_FILE", "/var/log/photoproc.log")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/batches", cfg.OutputDir)
	assert.Equal(t, "/tmp/logo.png", cfg.WatermarkPath)
	assert.Equal(t, 0.5, cfg.WatermarkOpacity)
	assert.Equal(t, 0.2, cfg.WatermarkScale)
	assert.Equal(t, 85, cfg.JPEGQuality)
	assert.Equal(t, "/opt/bin/dcraw", cfg.DcrawPath)
	assert.Equal(t, "/var/log/photoproc.log", cfg.LogFile)
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	cases := []struct {
		key, value string
	}{
		{"PHOTOPROC_WATERMARK_OPACITY", "1.5"},
		{"PHOTOPROC_WATERMARK_OPACITY", "abc"},
		{"PHOTOPROC_WATERMARK_SCALE", "0"},
		{"PHOTOPROC_WATERMARK_SCALE", "0.9"},
		{"PHOTOPROC_JPEG_QUALITY", "0"},
		{"PHOTOPROC_JPEG_QUALITY", "101"},
		{"PHOTOPROC_JPEG_QUALITY", "high"},
	}
	for _, c := range cases {
		t.Run(c.key+"="+c.value, func(t *testing.T) {
			t.Setenv(c.key, c.value)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
