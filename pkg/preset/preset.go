package preset

import "fmt"

// Preset is a named bundle of enhancement parameters, using Lightroom-style
// units: Exposure in stops, everything else as percentages. A zero value for
// a field means the corresponding step is skipped entirely.
type Preset struct {
	Name string

	// Exposure is an exposure shift in stops, valid range [-2.0, 2.0].
	Exposure float64
	// Highlights compresses the upper tonal range, valid range [-100, 0].
	Highlights float64
	// Shadows lifts the lower tonal range, valid range [0, 100].
	Shadows float64
	// Vibrance boosts saturation weighted toward flat pixels, [-100, 100].
	Vibrance float64
	// Saturation is a flat saturation adjustment, [-100, 100].
	Saturation float64
	// Clarity is midtone local contrast (large-radius unsharp), [-100, 100].
	Clarity float64
	// Structure is fine-detail sharpening (small-radius unsharp), [0, 100].
	Structure float64
	// Temperature shifts blue-yellow white balance, [-100, 100].
	Temperature float64
	// Tint shifts green-magenta white balance, [-100, 100].
	Tint float64
	// SkinSmoothing applies gentle noise reduction for portraits, [0, 100].
	SkinSmoothing float64
	// MidtoneProtection enables the bright-midtone (sand/ground) guard used
	// by the sports presets.
	MidtoneProtection bool
}

// IsNeutral reports whether every adjustment field is at its zero value,
// i.e. applying the preset is a no-op.
func (p Preset) IsNeutral() bool {
	return p.Exposure == 0 && p.Highlights == 0 && p.Shadows == 0 &&
		p.Vibrance == 0 && p.Saturation == 0 && p.Clarity == 0 &&
		p.Structure == 0 && p.Temperature == 0 && p.Tint == 0 &&
		p.SkinSmoothing == 0 && !p.MidtoneProtection
}

// fieldRange describes the valid span of one preset field.
type fieldRange struct {
	name     string
	value    float64
	min, max float64
}

// Validate checks every field against its documented range. A violation is a
// configuration error: the table is static, so this is checked once at
// startup rather than per image.
func (p Preset) Validate() error {
	ranges := []fieldRange{
		{"exposure", p.Exposure, -2.0, 2.0},
		{"highlights", p.Highlights, -100, 0},
		{"shadows", p.Shadows, 0, 100},
		{"vibrance", p.Vibrance, -100, 100},
		{"saturation", p.Saturation, -100, 100},
		{"clarity", p.Clarity, -100, 100},
		{"structure", p.Structure, 0, 100},
		{"temperature", p.Temperature, -100, 100},
		{"tint", p.Tint, -100, 100},
		{"skin_smoothing", p.SkinSmoothing, 0, 100},
	}
	for _, r := range ranges {
		if r.value < r.min || r.value > r.max {
			return fmt.Errorf("preset %q: %s %.2f out of range [%.1f, %.1f]",
				p.Name, r.name, r.value, r.min, r.max)
		}
	}
	return nil
}
