package enhance

import (
	"image"
	"math"
	"sync"
)

// gaussianKernel1D builds a normalized 1D Gaussian kernel for sigma and
// returns it together with its radius (3*sigma, at least 1).
func gaussianKernel1D(sigma float64) ([]float64, int) {
	if sigma <= 0 {
		sigma = 0.5
	}
	radius := int(math.Ceil(sigma * 3))
	if radius < 1 {
		radius = 1
	}
	kern := make([]float64, 2*radius+1)
	sum := 0.0
	den := 2 * sigma * sigma
	for k := -radius; k <= radius; k++ {
		v := math.Exp(-float64(k*k) / den)
		kern[k+radius] = v
		sum += v
	}
	for i := range kern {
		kern[i] /= sum
	}
	return kern, radius
}

// GaussianBlur applies a separable Gaussian blur with the given sigma.
// Rows and columns are processed in parallel goroutines; edge pixels clamp.
func GaussianBlur(src *image.NRGBA, sigma float64) *image.NRGBA {
	if src == nil {
		return nil
	}
	kern, radius := gaussianKernel1D(sigma)
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	tmp := image.NewNRGBA(image.Rect(0, 0, w, h))
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))

	var wg sync.WaitGroup
	// horizontal pass
	for y := 0; y < h; y++ {
		wg.Add(1)
		go func(y int) {
			defer wg.Done()
			for x := 0; x < w; x++ {
				sr, sg, sb, sa := 0.0, 0.0, 0.0, 0.0
				for k := -radius; k <= radius; k++ {
					ix := clampInt(x+k, 0, w-1)
					i := src.PixOffset(ix, y)
					wgt := kern[k+radius]
					sr += float64(src.Pix[i+0]) * wgt
					sg += float64(src.Pix[i+1]) * wgt
					sb += float64(src.Pix[i+2]) * wgt
					sa += float64(src.Pix[i+3]) * wgt
				}
				i := tmp.PixOffset(x, y)
				tmp.Pix[i+0] = uint8(clampFloatToUint8(sr))
				tmp.Pix[i+1] = uint8(clampFloatToUint8(sg))
				tmp.Pix[i+2] = uint8(clampFloatToUint8(sb))
				tmp.Pix[i+3] = uint8(clampFloatToUint8(sa))
			}
		}(y)
	}
	wg.Wait()

	// vertical pass
	for x := 0; x < w; x++ {
		wg.Add(1)
		go func(x int) {
			defer wg.Done()
			for y := 0; y < h; y++ {
				sr, sg, sb, sa := 0.0, 0.0, 0.0, 0.0
				for k := -radius; k <= radius; k++ {
					iy := clampInt(y+k, 0, h-1)
					i := tmp.PixOffset(x, iy)
					wgt := kern[k+radius]
					sr += float64(tmp.Pix[i+0]) * wgt
					sg += float64(tmp.Pix[i+1]) * wgt
					sb += float64(tmp.Pix[i+2]) * wgt
					sa += float64(tmp.Pix[i+3]) * wgt
				}
				i := dst.PixOffset(x, y)
				dst.Pix[i+0] = uint8(clampFloatToUint8(sr))
				dst.Pix[i+1] = uint8(clampFloatToUint8(sg))
				dst.Pix[i+2] = uint8(clampFloatToUint8(sb))
				dst.Pix[i+3] = uint8(clampFloatToUint8(sa))
			}
		}(x)
	}
	wg.Wait()
	return dst
}

// Blend linearly interpolates between a and b with weight t in [0,1]
// (t=0 returns a, t=1 returns b). The images must share dimensions.
func Blend(a, b *image.NRGBA, t float64) *image.NRGBA {
	if a == nil || b == nil {
		return a
	}
	t = clamp01(t)
	out := image.NewNRGBA(a.Rect)
	for i := 0; i < len(a.Pix) && i < len(b.Pix); i++ {
		out.Pix[i] = uint8(clampFloatToUint8(float64(a.Pix[i])*(1-t) + float64(b.Pix[i])*t))
	}
	return out
}
