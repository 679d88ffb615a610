package pipeline

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/venkatsunilm/photo-post-processing/pkg/config"
	"github.com/venkatsunilm/photo-post-processing/pkg/preset"
)

// testConfig returns a config pointing at a fresh output dir, with tiny
// resolution targets so tests stay fast. No watermark asset.
func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	cfg.WatermarkPath = ""
	cfg.Resolutions = map[string]int{"web": 10000}
	return cfg
}

func writeTestJPEG(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 64, 48))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = 150
		img.Pix[i+1] = 120
		img.Pix[i+2] = 90
		img.Pix[i+3] = 255
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, img, &jpeg.Options{Quality: 90}))
}

func TestRunIsolatesPerFileFailures(t *testing.T) {
	inDir := t.TempDir()
	for i := 1; i <= 5; i++ {
		path := filepath.Join(inDir, fmt.Sprintf("photo%d.jpg", i))
		if i == 3 {
			require.NoError(t, os.WriteFile(path, []byte("not a jpeg"), 0o644))
		} else {
			writeTestJPEG(t, path)
		}
	}

	r := New(testConfig(t), zap.NewNop())
	results, summary, err := r.Run(context.Background(), inDir, Options{Preset: "portrait_natural"})
	require.NoError(t, err)

	require.Len(t, results, 5)
	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 4, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.True(t, summary.AnySucceeded())

	for _, res := range results {
		if strings.HasSuffix(res.Source, "photo3.jpg") {
			assert.False(t, res.Success)
			assert.NotEmpty(t, res.Err)
			assert.Empty(t, res.Outputs)
			continue
		}
		assert.True(t, res.Success, res.Source)
		assert.Empty(t, res.Err)
		require.Len(t, res.Outputs, 1)
		assert.FileExists(t, res.Outputs[0])
		assert.True(t, strings.HasSuffix(res.Outputs[0], "_portrait_natural.jpg"),
			"output name %s", res.Outputs[0])
	}

	require.Len(t, summary.Archives, 1)
	assert.FileExists(t, summary.Archives[0])
	assert.Equal(t, "processed_photos_web_portrait_natural.zip", filepath.Base(summary.Archives[0]))
}

func TestRunUnknownPresetFailsUpFront(t *testing.T) {
	inDir := t.TempDir()
	writeTestJPEG(t, filepath.Join(inDir, "a.jpg"))

	r := New(testConfig(t), zap.NewNop())
	results, _, err := r.Run(context.Background(), inDir, Options{Preset: "nonsense"})
	require.Error(t, err)
	var upe *preset.UnknownPresetError
	assert.ErrorAs(t, err, &upe)
	assert.Empty(t, results)
}

func TestRunEmptyInput(t *testing.T) {
	r := New(testConfig(t), zap.NewNop())
	_, _, err := r.Run(context.Background(), t.TempDir(), Options{Preset: "landscape"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no image files")
}

func TestRunZipInput(t *testing.T) {
	srcDir := t.TempDir()
	writeTestJPEG(t, filepath.Join(srcDir, "one.jpg"))
	writeTestJPEG(t, filepath.Join(srcDir, "two.jpg"))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "notes.txt"), []byte("skip me"), 0o644))
	zipPath := buildZip(t, srcDir)

	r := New(testConfig(t), zap.NewNop())
	results, summary, err := r.Run(context.Background(), zipPath, Options{Preset: "landscape"})
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, 2, summary.Succeeded)
}

func TestRunNoEnhance(t *testing.T) {
	inDir := t.TempDir()
	writeTestJPEG(t, filepath.Join(inDir, "a.jpg"))

	r := New(testConfig(t), zap.NewNop())
	results, summary, err := r.Run(context.Background(), inDir,
		Options{Preset: "portrait_natural", NoEnhance: true, NoWatermark: true})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, summary.Succeeded)
	assert.FileExists(t, results[0].Outputs[0])
}

func TestRunMultipleResolutions(t *testing.T) {
	inDir := t.TempDir()
	writeTestJPEG(t, filepath.Join(inDir, "a.jpg"))

	cfg := testConfig(t)
	cfg.Resolutions = map[string]int{"big": 40000, "small": 10000}
	r := New(cfg, zap.NewNop())
	results, summary, err := r.Run(context.Background(), inDir, Options{Preset: "landscape"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Len(t, results[0].Outputs, 2)
	assert.Len(t, summary.Archives, 2)
}

func TestRunCancelledContext(t *testing.T) {
	inDir := t.TempDir()
	writeTestJPEG(t, filepath.Join(inDir, "a.jpg"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(testConfig(t), zap.NewNop())
	_, _, err := r.Run(ctx, inDir, Options{Preset: "landscape"})
	require.ErrorIs(t, err, context.Canceled)
}
