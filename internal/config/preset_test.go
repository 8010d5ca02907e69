package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	softArgs = "--cut_front --cut_tail --cut_window_size 6 --cut_mean_quality 10 " +
		"--unqualified_percent_limit 50 --n_base_limit 7 --average_qual 0 " +
		"--length_required 15 --overrepresentation_analysis"
	mediumArgs = "--cut_front --cut_tail --cut_window_size 5 --cut_mean_quality 15 " +
		"--unqualified_percent_limit 40 --n_base_limit 7 --average_qual 10 " +
		"--length_required 30 --low_complexity_filter --complexity_threshold 10 " +
		"--overrepresentation_analysis"
	hardArgs = "--trim_poly_g --cut_front --cut_tail --cut_window_size 5 " +
		"--cut_mean_quality 20 --unqualified_percent_limit 30 --n_base_limit 5 " +
		"--average_qual 15 --length_required 30 --low_complexity_filter " +
		"--complexity_threshold 30 --overrepresentation_analysis"
)

func TestPreset_FastpExtra(t *testing.T) {
	tests := []struct {
		preset Preset
		want   string
	}{
		{PresetDefault, "--custom 1"},
		{PresetSoft, softArgs},
		{PresetMedium, mediumArgs},
		{PresetHard, hardArgs},
	}
	for _, tt := range tests {
		t.Run(tt.preset.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.preset.FastpExtra("--custom 1"))
		})
	}
}

func TestPresetFromFlags(t *testing.T) {
	tests := []struct {
		name               string
		soft, medium, hard bool
		want               Preset
	}{
		{"none", false, false, false, PresetDefault},
		{"soft", true, false, false, PresetSoft},
		{"medium", false, true, false, PresetMedium},
		{"hard", false, false, true, PresetHard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PresetFromFlags(tt.soft, tt.medium, tt.hard)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPresetFromFlags_Conflict(t *testing.T) {
	_, err := PresetFromFlags(true, false, true)

	var conflict *PresetConflictError
	require.True(t, errors.As(err, &conflict), "got %v", err)
	assert.Equal(t, []Preset{PresetSoft, PresetHard}, conflict.Presets)
	assert.Contains(t, err.Error(), "soft and hard")
}

func TestParsePreset(t *testing.T) {
	for _, p := range Presets() {
		got, err := ParsePreset(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	got, err := ParsePreset(" Medium ")
	require.NoError(t, err)
	assert.Equal(t, PresetMedium, got)

	got, err = ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, PresetDefault, got)

	_, err = ParsePreset("extreme")
	assert.Error(t, err)
}

func TestPreset_FlagValue(t *testing.T) {
	var p Preset
	require.NoError(t, p.Set("hard"))
	assert.Equal(t, PresetHard, p)
	assert.Equal(t, "preset", p.Type())
	assert.Error(t, p.Set("bogus"))
	assert.Equal(t, PresetHard, p, "failed Set must not change the value")
	assert.Equal(t, "preset(9)", Preset(9).String())
}
