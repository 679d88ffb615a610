// Package resize computes output geometry for fixed pixel-count targets and
// overlays the batch watermark.
package resize

import (
	"image"
	"math"

	"github.com/venkatsunilm/photo-post-processing/pkg/enhance"
)

// FitPixelCount returns the output dimensions for an image of srcW x srcH
// resized so that width*height lands close to targetPixels while keeping the
// source aspect ratio. Both dimensions are rounded to even integers, which
// keeps downstream video-friendly encoders happy.
func FitPixelCount(srcW, srcH, targetPixels int) (int, int) {
	if srcW <= 0 || srcH <= 0 || targetPixels <= 0 {
		return 0, 0
	}
	ratio := float64(srcW) / float64(srcH)
	w := roundEven(math.Sqrt(float64(targetPixels) * ratio))
	if w < 2 {
		w = 2
	}
	h := roundEven(float64(targetPixels) / float64(w))
	if h < 2 {
		h = 2
	}
	return w, h
}

// ToTarget resizes src so its pixel count approximates targetPixels,
// preserving aspect ratio, using Lanczos-3 resampling. Pure transform:
// the source buffer is left untouched.
func ToTarget(src *image.NRGBA, targetPixels int) *image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	w, h := FitPixelCount(b.Dx(), b.Dy(), targetPixels)
	if w == b.Dx() && h == b.Dy() {
		return enhance.CloneNRGBA(src)
	}
	return enhance.ResampleLanczos(src, w, h, 3.0)
}

func roundEven(v float64) int {
	n := int(math.Round(v / 2.0))
	return n * 2
}
