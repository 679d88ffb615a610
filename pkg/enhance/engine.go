package enhance

import (
	"fmt"
	"image"

	"github.com/venkatsunilm/photo-post-processing/pkg/preset"
)

// Apply runs the full enhancement sequence for p over src and returns a new
// buffer; src is never written to. The step order is fixed (exposure, then
// highlight/shadow recovery, color, local contrast, white balance, portrait
// smoothing, midtone protection) and any step whose parameter sits at its
// zero value is skipped. The returned history lists the adjustments that
// actually ran, in order.
func Apply(src *image.NRGBA, p preset.Preset) (*image.NRGBA, []string, error) {
	if src == nil {
		return nil, nil, fmt.Errorf("enhance: nil source image")
	}
	if len(src.Pix) != src.Rect.Dx()*src.Rect.Dy()*4 {
		return nil, nil, &FormatError{Width: src.Rect.Dx(), Height: src.Rect.Dy(), PixLen: len(src.Pix)}
	}

	working := src
	var history []string
	record := func(format string, args ...any) {
		history = append(history, fmt.Sprintf(format, args...))
	}

	if p.Exposure != 0 {
		working = Exposure(working, p.Exposure)
		record("Exposure: %+.2f", p.Exposure)
	}
	if p.Highlights != 0 || p.Shadows != 0 {
		working = HighlightsShadows(working, p.Highlights, p.Shadows)
		record("Highlights: %g, Shadows: %g", p.Highlights, p.Shadows)
	}
	if p.Saturation != 0 {
		working = Saturation(working, 1.0+p.Saturation/100.0)
		record("Saturation: %+g", p.Saturation)
	}
	if p.Vibrance != 0 {
		working = Vibrance(working, p.Vibrance)
		record("Vibrance: %+g", p.Vibrance)
	}
	if p.Clarity != 0 {
		working = Clarity(working, p.Clarity)
		record("Clarity: %+g", p.Clarity)
	}
	if p.Structure != 0 {
		working = Structure(working, p.Structure)
		record("Structure: %+g", p.Structure)
	}
	if p.Temperature != 0 || p.Tint != 0 {
		working = WhiteBalance(working, p.Temperature, p.Tint)
		record("Temperature: %g, Tint: %g", p.Temperature, p.Tint)
	}
	if p.SkinSmoothing > 0 {
		working = SkinSmoothing(working, p.SkinSmoothing)
		record("Skin smoothing: %g", p.SkinSmoothing)
	}
	if p.MidtoneProtection {
		var applied bool
		working, applied = ProtectBrightMidtones(working)
		if applied {
			record("Midtone protection: applied")
		} else {
			record("Midtone protection: skipped")
		}
	}

	if working == src {
		// neutral preset: still hand back a fresh buffer
		working = CloneNRGBA(src)
	}
	return working, history, nil
}

// FormatError reports a pixel buffer whose layout does not match its
// declared dimensions. Per-file condition: the orchestrator skips the file.
type FormatError struct {
	Width, Height, PixLen int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unexpected pixel buffer layout: %dx%d with %d bytes", e.Width, e.Height, e.PixLen)
}
