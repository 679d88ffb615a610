package resize

import (
	"fmt"
	"image"
	"os"

	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/venkatsunilm/photo-post-processing/pkg/enhance"
)

// Margin between the watermark and the image edge, in output pixels.
const watermarkMargin = 20

// Watermark is a logo overlay loaded once per batch and stamped on every
// processed image.
type Watermark struct {
	asset   *image.NRGBA
	opacity float64
	scale   float64
}

// LoadWatermark reads the asset (any registered format; PNG with alpha is
// the usual case) and prepares it for repeated application. opacity is the
// overlay alpha in [0,1]; scale is the watermark width as a fraction of the
// target image width.
func LoadWatermark(path string, opacity, scale float64) (*Watermark, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open watermark asset: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode watermark asset %s: %w", path, err)
	}
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	if scale <= 0 {
		scale = 0.15
	}
	return &Watermark{asset: enhance.ToNRGBA(img), opacity: opacity, scale: scale}, nil
}

// Size returns the native dimensions of the loaded asset.
func (w *Watermark) Size() (int, int) {
	b := w.asset.Bounds()
	return b.Dx(), b.Dy()
}

// Apply stamps the watermark onto a copy of src, anchored bottom-right with
// a fixed margin. The overlay is scaled to scale*imageWidth (aspect kept)
// and alpha-blended with the configured opacity. Pure transform.
func (w *Watermark) Apply(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	out := enhance.CloneNRGBA(src)
	b := out.Bounds()
	imgW, imgH := b.Dx(), b.Dy()

	assetB := w.asset.Bounds()
	wmW := int(float64(imgW) * w.scale)
	if wmW < 1 {
		return out
	}
	aspect := float64(assetB.Dy()) / float64(assetB.Dx())
	wmH := int(float64(wmW) * aspect)
	if wmH < 1 {
		return out
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, wmW, wmH))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), w.asset, assetB, xdraw.Over, nil)

	x0 := imgW - wmW - watermarkMargin
	y0 := imgH - wmH - watermarkMargin
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}

	for y := 0; y < wmH; y++ {
		dy := y0 + y
		if dy >= imgH {
			break
		}
		for x := 0; x < wmW; x++ {
			dx := x0 + x
			if dx >= imgW {
				break
			}
			si := scaled.PixOffset(x, y)
			di := out.PixOffset(dx, dy)
			sa := float64(scaled.Pix[si+3]) / 255.0 * w.opacity
			if sa == 0 {
				continue
			}
			for c := 0; c < 3; c++ {
				sv := float64(scaled.Pix[si+c])
				dv := float64(out.Pix[di+c])
				out.Pix[di+c] = uint8(dv*(1-sa) + sv*sa)
			}
			da := float64(out.Pix[di+3]) / 255.0
			outA := sa + da*(1-sa)
			out.Pix[di+3] = uint8(outA * 255.0)
		}
	}
	return out
}
