package preset

import "sort"

// table is the built-in preset table. Values are tuned for 8-bit sRGB output;
// the *_raw variants compensate for the flatter starting point of decoded
// sensor data (or back off where the RAW boost already covers the ground).
// The table is built once at init and never mutated afterwards.
var table = map[string]Preset{
	"portrait_subtle": {
		Exposure:      0.05,
		Highlights:    -5,
		Shadows:       8,
		Vibrance:      5,
		Clarity:       2,
		Structure:     5,
		Temperature:   2,
		SkinSmoothing: 8,
	},
	"portrait_subtle_raw": {
		Exposure:      0.02,
		Highlights:    -3,
		Shadows:       5,
		Vibrance:      3,
		Clarity:       1,
		Structure:     3,
		Temperature:   1,
		SkinSmoothing: 5,
	},
	"portrait_natural": {
		Exposure:      0.1,
		Highlights:    -10,
		Shadows:       15,
		Vibrance:      10,
		Clarity:       5,
		Structure:     10,
		Temperature:   5,
		SkinSmoothing: 15,
	},
	"portrait_natural_raw": {
		Exposure:      0.15,
		Highlights:    -18,
		Shadows:       22,
		Vibrance:      15,
		Saturation:    3,
		Clarity:       8,
		Structure:     15,
		Temperature:   8,
		SkinSmoothing: 12,
	},
	"portrait_dramatic": {
		Exposure:      0.08,
		Highlights:    -8,
		Shadows:       20,
		Vibrance:      15,
		Clarity:       3,
		Structure:     8,
		Temperature:   5,
		SkinSmoothing: 5,
	},
	"portrait_dramatic_raw": {
		Exposure:      0.12,
		Highlights:    -15,
		Shadows:       25,
		Vibrance:      20,
		Saturation:    5,
		Clarity:       8,
		Structure:     12,
		Temperature:   8,
		SkinSmoothing: 3,
	},
	"landscape": {
		Highlights:  -15,
		Shadows:     10,
		Vibrance:    20,
		Saturation:  10,
		Clarity:     20,
		Structure:   15,
		Temperature: -5,
	},
	"landscape_raw": {
		Exposure:    0.05,
		Highlights:  -25,
		Shadows:     15,
		Vibrance:    30,
		Saturation:  15,
		Clarity:     25,
		Structure:   20,
		Temperature: -3,
	},
	"natural_wildlife": {
		Exposure:    0.05,
		Highlights:  -12,
		Shadows:     15,
		Vibrance:    12,
		Clarity:     6,
		Structure:   10,
		Temperature: 2,
	},
	"natural_wildlife_raw": {
		Exposure:    0.08,
		Highlights:  -18,
		Shadows:     20,
		Vibrance:    18,
		Saturation:  3,
		Clarity:     12,
		Structure:   18,
		Temperature: 5,
	},
	"sports_action": {
		Exposure:          0.04,
		Highlights:        -18,
		Shadows:           10,
		Vibrance:          12,
		Saturation:        2,
		Clarity:           8,
		Structure:         10,
		Temperature:       2,
		MidtoneProtection: true,
	},
	"sports_action_raw": {
		Exposure:          0.02,
		Highlights:        -10,
		Shadows:           5,
		Vibrance:          5,
		Clarity:           2,
		Structure:         5,
		MidtoneProtection: true,
	},
	"studio_portrait": {
		Exposure:      0.2,
		Highlights:    -5,
		Shadows:       5,
		Vibrance:      5,
		Structure:     5,
		Temperature:   10,
		SkinSmoothing: 20,
	},
	"overexposed_recovery": {
		Exposure:   -0.1,
		Highlights: -20,
		Shadows:    10,
		Vibrance:   8,
		Clarity:    3,
		Structure:  5,
	},
}

func init() {
	for name, p := range table {
		p.Name = name
		table[name] = p
		if err := p.Validate(); err != nil {
			panic("preset table: " + err.Error())
		}
	}
}

// Lookup returns the preset registered under name.
func Lookup(name string) (Preset, error) {
	p, ok := table[name]
	if !ok {
		return Preset{}, &UnknownPresetError{Name: name}
	}
	return p, nil
}

// Exists reports whether name is present in the table.
func Exists(name string) bool {
	_, ok := table[name]
	return ok
}

// Names returns all preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
