// Package pipeline orchestrates a batch: enumerate inputs, resolve the
// preset variant per file, run load → enhance → resize → watermark → save,
// and package the output folders. Files are processed sequentially and fail
// independently; only configuration errors and a dead destination abort the
// whole batch.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/venkatsunilm/photo-post-processing/pkg/config"
	"github.com/venkatsunilm/photo-post-processing/pkg/enhance"
	"github.com/venkatsunilm/photo-post-processing/pkg/loader"
	"github.com/venkatsunilm/photo-post-processing/pkg/preset"
	"github.com/venkatsunilm/photo-post-processing/pkg/resize"
)

// Options selects what the batch does beyond the default full enhancement.
type Options struct {
	// Preset is the base preset name; the RAW variant is substituted per
	// file by the format optimizer.
	Preset string
	// NoEnhance skips the enhancement engine (resize + watermark only).
	NoEnhance bool
	// NoWatermark skips the overlay even when the asset is configured.
	NoWatermark bool
}

// Runner executes batches. Construct with New.
type Runner struct {
	cfg    config.Config
	log    *zap.Logger
	loader *loader.Loader
}

// New returns a Runner over the given configuration.
func New(cfg config.Config, log *zap.Logger) *Runner {
	return &Runner{
		cfg: cfg,
		log: log,
		loader: &loader.Loader{
			Boost:     true,
			DcrawPath: cfg.DcrawPath,
		},
	}
}

// Run processes every image under input (a directory or a .zip) and returns
// the per-file results plus the batch summary. The preset name is validated
// up front: an unknown name fails before any file is touched.
func (r *Runner) Run(ctx context.Context, input string, opts Options) ([]Result, Summary, error) {
	if _, err := preset.Lookup(opts.Preset); err != nil {
		return nil, Summary{}, err
	}
	r.loader.Boost = !opts.NoEnhance

	workDir, isTemp, err := ExtractZipIfNeeded(input)
	if err != nil {
		return nil, Summary{}, err
	}
	if isTemp {
		defer os.RemoveAll(workDir)
	}

	files, err := CollectImages(workDir)
	if err != nil {
		return nil, Summary{}, err
	}
	if len(files) == 0 {
		return nil, Summary{}, fmt.Errorf("no image files found under %s", input)
	}
	r.logFormatMix(files, opts.Preset)

	wm, err := r.loadWatermark(opts)
	if err != nil {
		return nil, Summary{}, err
	}
	if wm != nil {
		wmW, wmH := wm.Size()
		r.log.Debug("watermark asset loaded",
			zap.String("path", r.cfg.WatermarkPath),
			zap.Int("width", wmW), zap.Int("height", wmH))
	}

	projectDir, err := OutputRoot(r.cfg.OutputDir)
	if err != nil {
		return nil, Summary{}, err
	}

	labels := make([]string, 0, len(r.cfg.Resolutions))
	for label := range r.cfg.Resolutions {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	folders := make(map[string]string, len(labels))
	for _, label := range labels {
		folder := filepath.Join(projectDir, fmt.Sprintf("processed_photos_%s_%s", label, opts.Preset))
		if err := os.MkdirAll(folder, 0o755); err != nil {
			return nil, Summary{}, fmt.Errorf("create output folder: %w", err)
		}
		folders[label] = folder
	}

	results := make([]Result, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return results, Summarize(results, nil), err
		}
		res, fatal := r.processFile(ctx, path, opts, labels, folders, wm)
		results = append(results, res)
		if fatal != nil {
			return results, Summarize(results, nil), fatal
		}
	}

	var archives []string
	for _, label := range labels {
		zipPath, err := CreateZipArchive(folders[label], projectDir, fmt.Sprintf("%s_%s", label, opts.Preset))
		if err != nil {
			r.log.Error("packaging failed", zap.String("label", label), zap.Error(err))
			continue
		}
		archives = append(archives, zipPath)
		r.log.Info("archive written", zap.String("path", zipPath))
	}

	return results, Summarize(results, archives), nil
}

// processFile runs the full per-file sequence. The second return value is
// non-nil only for batch-fatal conditions (destination unwritable).
func (r *Runner) processFile(ctx context.Context, path string, opts Options, labels []string, folders map[string]string, wm *resize.Watermark) (Result, error) {
	format := preset.DetectFormat(path)
	resolved, err := preset.Resolve(opts.Preset, format)
	if err != nil {
		// cannot happen after the up-front Lookup, but record it anyway
		return failure(path, format, opts.Preset, err), nil
	}
	res := Result{Source: path, Format: format, Preset: resolved.Name}
	if resolved.Name != opts.Preset {
		r.log.Info("format-optimized preset",
			zap.String("file", filepath.Base(path)),
			zap.Stringer("format", format),
			zap.String("preset", resolved.Name))
	}

	img, err := r.loader.Load(ctx, path)
	if err != nil {
		r.log.Warn("skipping file", zap.String("file", filepath.Base(path)), zap.Error(err))
		return failure(path, format, resolved.Name, err), nil
	}

	if !opts.NoEnhance {
		enhanced, history, err := enhance.Apply(img, resolved)
		if err != nil {
			r.log.Warn("enhancement failed", zap.String("file", filepath.Base(path)), zap.Error(err))
			return failure(path, format, resolved.Name, err), nil
		}
		img = enhanced
		if len(history) > 0 {
			tail := history
			if len(tail) > 3 {
				tail = tail[len(tail)-3:]
			}
			r.log.Debug("adjustments", zap.String("file", filepath.Base(path)), zap.Strings("last", tail))
		}
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for _, label := range labels {
		final := resize.ToTarget(img, r.cfg.Resolutions[label])
		if wm != nil {
			final = wm.Apply(final)
		}
		outPath := filepath.Join(folders[label], fmt.Sprintf("%s_%s.jpg", base, resolved.Name))
		if err := saveJPEG(outPath, final, r.cfg.JPEGQuality); err != nil {
			if !destWritable(folders[label]) {
				return failure(path, format, resolved.Name, err),
					fmt.Errorf("output destination unwritable: %w", err)
			}
			r.log.Warn("write failed", zap.String("file", outPath), zap.Error(err))
			return failure(path, format, resolved.Name, err), nil
		}
		res.Outputs = append(res.Outputs, outPath)
	}

	res.Success = true
	r.log.Info("processed",
		zap.String("file", filepath.Base(path)),
		zap.Stringer("format", format),
		zap.String("preset", resolved.Name),
		zap.Int("outputs", len(res.Outputs)))
	return res, nil
}

// loadWatermark loads the overlay asset once per batch. A missing asset is
// downgraded to a warning and the batch continues unwatermarked.
func (r *Runner) loadWatermark(opts Options) (*resize.Watermark, error) {
	if opts.NoWatermark || r.cfg.WatermarkPath == "" {
		return nil, nil
	}
	wm, err := resize.LoadWatermark(r.cfg.WatermarkPath, r.cfg.WatermarkOpacity, r.cfg.WatermarkScale)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.log.Warn("watermark asset missing, continuing without overlay",
				zap.String("path", r.cfg.WatermarkPath))
			return nil, nil
		}
		return nil, err
	}
	return wm, nil
}

// logFormatMix logs the RAW/JPEG/other composition of the batch and, for
// mixed batches, which preset variant each class will get.
func (r *Runner) logFormatMix(files []string, base string) {
	var raw, jpg, other int
	for _, f := range files {
		switch preset.DetectFormat(f) {
		case preset.FormatRAW:
			raw++
		case preset.FormatJPEG:
			jpg++
		default:
			other++
		}
	}
	r.log.Info("batch composition",
		zap.Int("files", len(files)),
		zap.Int("raw", raw), zap.Int("jpeg", jpg), zap.Int("other", other))
	if raw > 0 && jpg > 0 {
		rawPreset, _ := preset.Resolve(base, preset.FormatRAW)
		r.log.Info("mixed formats detected",
			zap.String("raw_preset", rawPreset.Name),
			zap.String("jpeg_preset", base))
	}
}

func failure(path string, format preset.FormatClass, presetName string, err error) Result {
	return Result{Source: path, Format: format, Preset: presetName, Err: err.Error()}
}

func saveJPEG(path string, img *image.NRGBA, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: quality}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
