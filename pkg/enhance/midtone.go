package enhance

import "image"

// ProtectBrightMidtones guards against over-brightened sand, ground, and
// similar bright horizontal surfaces in sports shots. It only engages when a
// meaningful share of the frame sits in the bright-midtone band and the
// image is bright overall; the affected pixels are then darkened slightly
// and blended half-and-half with the original for a smooth transition.
// Returns the (possibly unchanged) image and whether protection was applied.
func ProtectBrightMidtones(src *image.NRGBA) (*image.NRGBA, bool) {
	if src == nil {
		return nil, false
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return src, false
	}

	// brightness here is HSV value: max of the color channels
	brightCount := 0
	sum := 0.0
	total := w * h
	for i := 0; i < len(src.Pix); i += 4 {
		v := maxU8(src.Pix[i+0], src.Pix[i+1], src.Pix[i+2])
		sum += float64(v)
		if v > 140 && v < 200 {
			brightCount++
		}
	}
	brightShare := float64(brightCount) / float64(total)
	overall := sum / float64(total)

	// at least 15% bright midtones in an already-bright frame
	if brightShare <= 0.15 || overall <= 120 {
		return src, false
	}

	// darken the brightest midtones (most likely sand) by 6%, then blend
	// 50/50 with the original, i.e. an effective 3% pull-down.
	const darkening = 0.94
	out := CloneNRGBA(src)
	touched := false
	for i := 0; i < len(out.Pix); i += 4 {
		v := maxU8(out.Pix[i+0], out.Pix[i+1], out.Pix[i+2])
		if v <= 160 || v >= 200 {
			continue
		}
		touched = true
		for c := 0; c < 3; c++ {
			darkened := float64(out.Pix[i+c]) * darkening
			out.Pix[i+c] = uint8(clampFloatToUint8((float64(out.Pix[i+c]) + darkened) / 2))
		}
	}
	if !touched {
		return src, false
	}
	return out, true
}

func maxU8(a, b, c uint8) uint8 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
