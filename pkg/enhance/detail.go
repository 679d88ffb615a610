package enhance

import (
	"image"
	"math"
)

// UnsharpMask sharpens src by adding back amount times the difference
// between the source and a Gaussian blur with the given sigma. Differences
// below threshold (0..255 units) are left untouched so flat areas stay
// noise-free.
func UnsharpMask(src *image.NRGBA, sigma, amount, threshold float64) *image.NRGBA {
	if src == nil {
		return nil
	}
	blurred := GaussianBlur(src, sigma)
	out := image.NewNRGBA(src.Rect)
	for i := 0; i < len(src.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			sv := float64(src.Pix[i+c])
			bv := float64(blurred.Pix[i+c])
			mask := sv - bv
			if threshold > 0 && math.Abs(mask) < threshold {
				out.Pix[i+c] = src.Pix[i+c]
				continue
			}
			out.Pix[i+c] = uint8(clampFloatToUint8(sv + amount*mask))
		}
		out.Pix[i+3] = src.Pix[i+3]
	}
	return out
}

// Clarity adjusts midtone local contrast the Lightroom way: a large-radius
// blur is either contrast-boosted and blended in (positive amount) or
// blended directly for a soft-focus look (negative amount). amount is a
// percentage in [-100, 100].
func Clarity(src *image.NRGBA, amount float64) *image.NRGBA {
	if src == nil || amount == 0 {
		return src
	}
	const sigma = 20.0
	strength := clamp01(math.Abs(amount) / 50.0)
	blurred := GaussianBlur(src, sigma)
	if amount > 0 {
		mask := AdjustContrast(blurred, 1.0+strength)
		return Blend(src, mask, strength)
	}
	return Blend(src, blurred, strength)
}

// Structure is fine-detail sharpening: a small-radius unsharp mask whose
// gain scales with the percentage amount in [0, 100].
func Structure(src *image.NRGBA, amount float64) *image.NRGBA {
	if src == nil || amount <= 0 {
		return src
	}
	const (
		sigma     = 1.0
		threshold = 2.0
	)
	gain := (amount / 100.0) * 2.0
	return UnsharpMask(src, sigma, gain, threshold)
}

// SkinSmoothing applies gentle noise reduction for portraits: a light blur
// blended in at a fraction of the smoothing strength, with a touch of
// sharpening added back at higher strengths so skin keeps its texture.
// strength is a percentage in [0, 100].
func SkinSmoothing(src *image.NRGBA, strength float64) *image.NRGBA {
	if src == nil || strength <= 0 {
		return src
	}
	f := clamp01(strength / 100.0)
	sigma := math.Max(0.5, f*1.5)
	blurred := GaussianBlur(src, sigma)
	out := Blend(src, blurred, f*0.15)
	if f > 0.3 {
		sharpened := AdjustSharpness(out, 1.1)
		out = Blend(out, sharpened, 0.2)
	}
	return out
}

// AdjustContrast pushes pixels away from the image's mean luminance by
// factor (1.0 is a no-op, < 1 flattens, > 1 adds contrast).
func AdjustContrast(src *image.NRGBA, factor float64) *image.NRGBA {
	if src == nil {
		return nil
	}
	mean := meanLuminance(src)
	out := image.NewNRGBA(src.Rect)
	for i := 0; i < len(src.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			v := float64(src.Pix[i+c])
			out.Pix[i+c] = uint8(clampFloatToUint8(mean + (v-mean)*factor))
		}
		out.Pix[i+3] = src.Pix[i+3]
	}
	return out
}

// AdjustBrightness multiplies the color channels by factor (1.0 no-op).
func AdjustBrightness(src *image.NRGBA, factor float64) *image.NRGBA {
	if src == nil {
		return nil
	}
	if factor < 0 {
		factor = 0
	}
	return scaleRGB(src, factor, factor, factor)
}

// AdjustSharpness interpolates between a slightly blurred copy (factor 0)
// and an over-sharpened copy (factor 2), with 1.0 returning the source
// unchanged.
func AdjustSharpness(src *image.NRGBA, factor float64) *image.NRGBA {
	if src == nil {
		return nil
	}
	if factor == 1.0 {
		return CloneNRGBA(src)
	}
	const sigma = 1.0
	if factor < 1.0 {
		blurred := GaussianBlur(src, sigma)
		return Blend(src, blurred, clamp01(1.0-factor))
	}
	return UnsharpMask(src, sigma, factor-1.0, 0)
}
