package enhance

import (
	"image"
	"math"
)

// Exposure applies an exposure shift measured in stops: each full stop
// doubles (or halves) the channel values, the camera way rather than a
// linear brightness slider.
func Exposure(src *image.NRGBA, stops float64) *image.NRGBA {
	if src == nil {
		return nil
	}
	factor := math.Pow(2, stops)
	return scaleRGB(src, factor, factor, factor)
}

// ToneCurve applies a per-channel gamma-style curve through a 256-entry
// lookup table: out = 255 * (in/255)^gamma. gamma < 1 lifts midtones,
// gamma > 1 deepens them. Alpha is untouched.
func ToneCurve(src *image.NRGBA, gamma float64) *image.NRGBA {
	if src == nil {
		return nil
	}
	if gamma <= 0 {
		gamma = 1
	}
	var lut [256]uint8
	for v := 0; v < 256; v++ {
		lut[v] = uint8(clampFloatToUint8(255 * math.Pow(float64(v)/255, gamma)))
	}
	out := CloneNRGBA(src)
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i+0] = lut[out.Pix[i+0]]
		out.Pix[i+1] = lut[out.Pix[i+1]]
		out.Pix[i+2] = lut[out.Pix[i+2]]
	}
	return out
}

// HighlightsShadows selectively compresses highlights and lifts shadows.
// highlights is expected in [-100, 0] (negative darkens the upper range),
// shadows in [0, 100] (positive brightens the lower range). Masks fade in
// smoothly above luma 0.7 and below 0.3 so midtones stay put.
func HighlightsShadows(src *image.NRGBA, highlights, shadows float64) *image.NRGBA {
	if src == nil {
		return nil
	}
	const (
		highlightThreshold = 0.7
		shadowThreshold    = 0.3
	)
	hiFactor := 1.0 + highlights/100.0
	shFactor := 1.0 + shadows/100.0
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := src.PixOffset(x, y)
			lum := luminance601(src.Pix[i+0], src.Pix[i+1], src.Pix[i+2])
			hiMask := clamp01((lum - highlightThreshold) / (1.0 - highlightThreshold))
			shMask := clamp01((shadowThreshold - lum) / shadowThreshold)
			for c := 0; c < 3; c++ {
				v := float64(src.Pix[i+c]) / 255.0
				v = v*(1-hiMask) + v*hiFactor*hiMask
				v = v*(1-shMask) + v*shFactor*shMask
				out.Pix[i+c] = uint8(clampFloatToUint8(clamp01(v) * 255.0))
			}
			out.Pix[i+3] = src.Pix[i+3]
		}
	}
	return out
}

// scaleRGB multiplies the color channels by the given per-channel gains,
// clamping to [0,255]. Alpha passes through.
func scaleRGB(src *image.NRGBA, rGain, gGain, bGain float64) *image.NRGBA {
	out := image.NewNRGBA(src.Rect)
	for i := 0; i < len(src.Pix); i += 4 {
		out.Pix[i+0] = uint8(clampFloatToUint8(float64(src.Pix[i+0]) * rGain))
		out.Pix[i+1] = uint8(clampFloatToUint8(float64(src.Pix[i+1]) * gGain))
		out.Pix[i+2] = uint8(clampFloatToUint8(float64(src.Pix[i+2]) * bGain))
		out.Pix[i+3] = src.Pix[i+3]
	}
	return out
}
