package enhance

import (
	"bytes"
	"image"
	"image/jpeg"
	"strings"
	"testing"

	"github.com/venkatsunilm/photo-post-processing/pkg/preset"
)

// solidNRGBA fills a w x h image with a single opaque color.
func solidNRGBA(w, h int, r, g, b uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = 255
	}
	return img
}

// gradientNRGBA produces a horizontal dark-to-light ramp, handy for ops that
// need tonal variety.
func gradientNRGBA(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			v := uint8(x * 255 / (w - 1))
			img.Pix[i+0] = v
			img.Pix[i+1] = v
			img.Pix[i+2] = v
			img.Pix[i+3] = 255
		}
	}
	return img
}

func pixEqual(a, b *image.NRGBA) bool {
	if a.Rect != b.Rect || len(a.Pix) != len(b.Pix) {
		return false
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			return false
		}
	}
	return true
}

func TestApplyNeutralPresetIsIdentity(t *testing.T) {
	src := gradientNRGBA(32, 16)
	out, history, err := Apply(src, preset.Preset{Name: "neutral"})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if out == src {
		t.Fatal("Apply returned the source buffer instead of a copy")
	}
	if !pixEqual(src, out) {
		t.Error("neutral preset changed pixel data")
	}
	if len(history) != 0 {
		t.Errorf("neutral preset recorded history %v", history)
	}
}

func TestApplyDoesNotMutateSource(t *testing.T) {
	src := gradientNRGBA(24, 24)
	before := make([]uint8, len(src.Pix))
	copy(before, src.Pix)

	p, err := preset.Lookup("portrait_natural")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := Apply(src, p); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	for i := range before {
		if src.Pix[i] != before[i] {
			t.Fatalf("source pixel byte %d changed from %d to %d", i, before[i], src.Pix[i])
		}
	}
}

func TestApplyDeterministic(t *testing.T) {
	src := gradientNRGBA(40, 20)
	p, err := preset.Lookup("landscape")
	if err != nil {
		t.Fatal(err)
	}
	first, _, err := Apply(src, p)
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := Apply(src, p)
	if err != nil {
		t.Fatal(err)
	}
	if !pixEqual(first, second) {
		t.Error("same preset on same input produced different pixels")
	}
}

func TestApplyRejectsMismatchedBuffer(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	src.Pix = src.Pix[:len(src.Pix)-4]
	_, _, err := Apply(src, preset.Preset{Exposure: 0.5})
	if err == nil {
		t.Fatal("expected an error for a truncated pixel buffer")
	}
	if _, ok := err.(*FormatError); !ok {
		t.Fatalf("expected *FormatError, got %T", err)
	}
}

func TestApplyNilSource(t *testing.T) {
	if _, _, err := Apply(nil, preset.Preset{}); err == nil {
		t.Fatal("expected an error for nil source")
	}
}

func TestApplyHistoryOrder(t *testing.T) {
	src := gradientNRGBA(16, 16)
	p := preset.Preset{
		Name:              "everything",
		Exposure:          0.1,
		Highlights:        -10,
		Shadows:           10,
		Vibrance:          10,
		Saturation:        5,
		Clarity:           5,
		Structure:         5,
		Temperature:       5,
		Tint:              2,
		SkinSmoothing:     10,
		MidtoneProtection: true,
	}
	_, history, err := Apply(src, p)
	if err != nil {
		t.Fatal(err)
	}
	wantOrder := []string{
		"Exposure", "Highlights", "Saturation", "Vibrance",
		"Clarity", "Structure", "Temperature", "Skin smoothing",
		"Midtone protection",
	}
	if len(history) != len(wantOrder) {
		t.Fatalf("history has %d entries, want %d: %v", len(history), len(wantOrder), history)
	}
	for i, prefix := range wantOrder {
		if !strings.HasPrefix(history[i], prefix) {
			t.Errorf("history[%d] = %q, want prefix %q", i, history[i], prefix)
		}
	}
}

// A neutral preset run between a JPEG decode and a same-quality re-encode
// must leave the pixels within re-compression noise of a plain decode-encode
// cycle; anything larger means the engine touched the data.
func TestNeutralPresetJPEGRoundTrip(t *testing.T) {
	const quality = 90
	encode := func(img *image.NRGBA) []byte {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			t.Fatal(err)
		}
		return buf.Bytes()
	}
	decode := func(b []byte) *image.NRGBA {
		img, err := jpeg.Decode(bytes.NewReader(b))
		if err != nil {
			t.Fatal(err)
		}
		return ToNRGBA(img)
	}

	first := decode(encode(gradientNRGBA(64, 48)))
	out, _, err := Apply(first, preset.Preset{Name: "neutral"})
	if err != nil {
		t.Fatal(err)
	}
	second := decode(encode(out))

	if first.Rect != second.Rect {
		t.Fatalf("dimensions changed from %v to %v", first.Rect, second.Rect)
	}
	maxDrift := 0
	for i := 0; i < len(first.Pix); i++ {
		if i%4 == 3 {
			continue // alpha is synthesized, not encoded
		}
		d := int(first.Pix[i]) - int(second.Pix[i])
		if d < 0 {
			d = -d
		}
		if d > maxDrift {
			maxDrift = d
		}
	}
	if maxDrift > 3 {
		t.Errorf("max channel drift after neutral round-trip is %d, want re-compression noise only", maxDrift)
	}
}

func TestApplySkipsZeroSteps(t *testing.T) {
	src := gradientNRGBA(16, 16)
	_, history, err := Apply(src, preset.Preset{Vibrance: 20})
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 || !strings.HasPrefix(history[0], "Vibrance") {
		t.Errorf("expected only a vibrance entry, got %v", history)
	}
}
