package enhance

import "image"

// Saturation applies a flat saturation adjustment: each pixel is pushed away
// from (or pulled toward) its own BT.601 gray by factor. factor 1.0 is a
// no-op, 0.0 yields grayscale.
func Saturation(src *image.NRGBA, factor float64) *image.NRGBA {
	if src == nil {
		return nil
	}
	if factor < 0 {
		factor = 0
	}
	out := image.NewNRGBA(src.Rect)
	for i := 0; i < len(src.Pix); i += 4 {
		gray := 255.0 * luminance601(src.Pix[i+0], src.Pix[i+1], src.Pix[i+2])
		for c := 0; c < 3; c++ {
			v := float64(src.Pix[i+c])
			out.Pix[i+c] = uint8(clampFloatToUint8(gray + (v-gray)*factor))
		}
		out.Pix[i+3] = src.Pix[i+3]
	}
	return out
}

// Vibrance boosts saturation selectively: the flatter a pixel already is,
// the more it gets pushed, so skin tones and saturated skies are mostly
// left alone. amount is a percentage in [-100, 100].
func Vibrance(src *image.NRGBA, amount float64) *image.NRGBA {
	if src == nil {
		return nil
	}
	out := image.NewNRGBA(src.Rect)
	for i := 0; i < len(src.Pix); i += 4 {
		r := float64(src.Pix[i+0]) / 255.0
		g := float64(src.Pix[i+1]) / 255.0
		b := float64(src.Pix[i+2]) / 255.0
		maxC := max3(r, g, b)
		minC := min3(r, g, b)
		sat := (maxC - minC) / (maxC + 1e-6)
		// low-saturation pixels receive the full boost
		factor := 1.0 + (amount/100.0)*(1.0-sat)
		mean := (r + g + b) / 3.0
		out.Pix[i+0] = uint8(clampFloatToUint8((mean + (r-mean)*factor) * 255.0))
		out.Pix[i+1] = uint8(clampFloatToUint8((mean + (g-mean)*factor) * 255.0))
		out.Pix[i+2] = uint8(clampFloatToUint8((mean + (b-mean)*factor) * 255.0))
		out.Pix[i+3] = src.Pix[i+3]
	}
	return out
}

// WhiteBalance shifts color temperature (blue-yellow axis) and tint
// (green-magenta axis) via channel gains. Both arguments are percentages
// in [-100, 100]; positive temperature warms, positive tint adds magenta.
func WhiteBalance(src *image.NRGBA, temperature, tint float64) *image.NRGBA {
	if src == nil {
		return nil
	}
	rGain, gGain, bGain := 1.0, 1.0, 1.0
	if temperature != 0 {
		t := temperature / 100.0
		rGain *= 1.0 + t*0.1
		bGain *= 1.0 - t*0.1
		if t > 0 {
			gGain *= 1.0 + t*0.05
		}
	}
	if tint != 0 {
		f := tint / 100.0
		if f > 0 {
			rGain *= 1.0 + f*0.05
			bGain *= 1.0 + f*0.05
		}
		gGain *= 1.0 - f*0.1
	}
	return scaleRGB(src, rGain, gGain, bGain)
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
