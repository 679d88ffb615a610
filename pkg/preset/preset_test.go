package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableValidates(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	for _, name := range names {
		p, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, p.Name)
		assert.NoError(t, p.Validate())
		assert.False(t, p.IsNeutral(), "table preset %s should adjust something", name)
	}
}

func TestTableHasExpectedPresets(t *testing.T) {
	for _, name := range []string{
		"sports_action", "sports_action_raw",
		"portrait_natural", "portrait_natural_raw",
		"landscape", "landscape_raw",
		"natural_wildlife", "natural_wildlife_raw",
	} {
		assert.True(t, Exists(name), name)
	}
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	cases := []Preset{
		{Name: "bad_exposure", Exposure: 2.5},
		{Name: "bad_highlights", Highlights: 10}, // positive highlights invalid
		{Name: "bad_shadows", Shadows: -5},
		{Name: "bad_vibrance", Vibrance: 150},
		{Name: "bad_smoothing", SkinSmoothing: -1},
	}
	for _, p := range cases {
		assert.Error(t, p.Validate(), p.Name)
	}
}

func TestIsNeutral(t *testing.T) {
	assert.True(t, Preset{Name: "noop"}.IsNeutral())
	assert.False(t, Preset{Name: "exp", Exposure: 0.1}.IsNeutral())
	assert.False(t, Preset{Name: "mid", MidtoneProtection: true}.IsNeutral())
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("nope")
	var upe *UnknownPresetError
	require.ErrorAs(t, err, &upe)
}
