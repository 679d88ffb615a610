package loader

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"os/exec"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/venkatsunilm/photo-post-processing/pkg/enhance"
)

// RAW decode constants. Camera white balance plus a brightness lift keeps
// dcraw output in the same perceptual ballpark as an in-camera JPEG; the
// exact values are tuning, not contract.
const (
	rawBrightness = 1.4
	dcrawBinary   = "dcraw"
)

// loadRaw decodes a RAW sensor file. The preferred path pipes the file
// through dcraw with camera white balance and a brightness lift; when dcraw
// is unavailable (or chokes on the file) we fall back to the full-size JPEG
// preview most RAW containers embed. Either way the result is an upright
// NRGBA buffer, optionally run through the vibrancy compensation pass.
func (l *Loader) loadRaw(ctx context.Context, path string) (*image.NRGBA, error) {
	img, err := l.decodeWithDcraw(ctx, path)
	if err != nil {
		var previewErr error
		img, previewErr = decodeEmbeddedPreview(path)
		if previewErr != nil {
			return nil, &DecodeError{Path: path, Err: fmt.Errorf("dcraw: %v; embedded preview: %w", err, previewErr)}
		}
	}
	if l.Boost {
		img = applyRawBoost(img)
	}
	return img, nil
}

// decodeWithDcraw runs `dcraw -c -w -b 1.4 -q 3 <file>` and parses the PPM
// stream it writes to stdout.
func (l *Loader) decodeWithDcraw(ctx context.Context, path string) (*image.NRGBA, error) {
	bin := l.DcrawPath
	if bin == "" {
		bin = dcrawBinary
	}
	if _, err := exec.LookPath(bin); err != nil {
		return nil, fmt.Errorf("%s not found in PATH", bin)
	}
	args := []string{
		"-c", // write to stdout
		"-w", // camera white balance
		"-b", fmt.Sprintf("%.2f", rawBrightness),
		"-q", "3", // AHD demosaicing for better detail
		path,
	}
	cmd := exec.CommandContext(ctx, bin, args...)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("dcraw failed: %v (%s)", err, bytes.TrimSpace(stderr.Bytes()))
	}
	return decodePPM(out.Bytes())
}

// decodeEmbeddedPreview extracts the JPEG preview embedded in the RAW
// container's EXIF block. Orientation comes from the same block, since
// previews are stored unrotated.
func decodeEmbeddedPreview(path string) (*image.NRGBA, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	x, err := exif.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("no EXIF block: %w", err)
	}
	thumb, err := x.JpegThumbnail()
	if err != nil {
		return nil, fmt.Errorf("no embedded preview: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(thumb))
	if err != nil {
		return nil, fmt.Errorf("decode embedded preview: %w", err)
	}
	out := enhance.ToNRGBA(img)
	if tag, terr := x.Get(exif.Orientation); terr == nil {
		if o, oerr := tag.Int(0); oerr == nil && o > 1 && o <= 8 {
			out = autoOrient(out, o)
		}
	}
	return out, nil
}

// applyRawBoost closes the perceptual gap between decoded sensor data and
// an already camera-processed JPEG: a midtone-lifting tone curve followed by
// contrast, saturation, sharpness, and brightness nudges. The constants are
// heuristic tuning for "not dull", not color science.
func applyRawBoost(img *image.NRGBA) *image.NRGBA {
	img = enhance.ToneCurve(img, 0.85)
	img = enhance.AdjustContrast(img, 1.25)
	img = enhance.Saturation(img, 1.35)
	img = enhance.AdjustSharpness(img, 1.15)
	img = enhance.AdjustBrightness(img, 1.08)
	return img
}
