package config

import (
	"fmt"
	"strings"
)

// Preset selects a fixed fastp trimming profile. PresetDefault keeps the
// user supplied extra arguments.
type Preset int

const (
	PresetDefault Preset = iota
	PresetSoft
	PresetMedium
	PresetHard
)

// DefaultFastpExtra is the fastp argument string used without a preset.
const DefaultFastpExtra = "--overrepresentation_analysis"

var presetArgs = map[Preset][]string{
	PresetSoft: {
		"--cut_front",
		"--cut_tail",
		"--cut_window_size 6",
		"--cut_mean_quality 10",
		"--unqualified_percent_limit 50",
		"--n_base_limit 7",
		"--average_qual 0",
		"--length_required 15",
		"--overrepresentation_analysis",
	},
	PresetMedium: {
		"--cut_front",
		"--cut_tail",
		"--cut_window_size 5",
		"--cut_mean_quality 15",
		"--unqualified_percent_limit 40",
		"--n_base_limit 7",
		"--average_qual 10",
		"--length_required 30",
		"--low_complexity_filter",
		"--complexity_threshold 10",
		"--overrepresentation_analysis",
	},
	PresetHard: {
		"--trim_poly_g",
		"--cut_front",
		"--cut_tail",
		"--cut_window_size 5",
		"--cut_mean_quality 20",
		"--unqualified_percent_limit 30",
		"--n_base_limit 5",
		"--average_qual 15",
		"--length_required 30",
		"--low_complexity_filter",
		"--complexity_threshold 30",
		"--overrepresentation_analysis",
	},
}

var presetNames = map[Preset]string{
	PresetDefault: "default",
	PresetSoft:    "soft",
	PresetMedium:  "medium",
	PresetHard:    "hard",
}

// Presets lists the selectable presets in strictness order.
func Presets() []Preset {
	return []Preset{PresetDefault, PresetSoft, PresetMedium, PresetHard}
}

// ParsePreset resolves a preset by name. The empty string is PresetDefault.
func ParsePreset(s string) (Preset, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" || name == "none" {
		return PresetDefault, nil
	}
	for p, n := range presetNames {
		if n == name {
			return p, nil
		}
	}
	return PresetDefault, fmt.Errorf("unknown trimming preset %q (valid: default, soft, medium, hard)", s)
}

// PresetFromFlags maps the three legacy preset switches onto one selector.
func PresetFromFlags(soft, medium, hard bool) (Preset, error) {
	var set []Preset
	for _, c := range []struct {
		on bool
		p  Preset
	}{{soft, PresetSoft}, {medium, PresetMedium}, {hard, PresetHard}} {
		if c.on {
			set = append(set, c.p)
		}
	}
	switch len(set) {
	case 0:
		return PresetDefault, nil
	case 1:
		return set[0], nil
	}
	return PresetDefault, &PresetConflictError{Presets: set}
}

// FastpExtra returns the fastp arguments for the preset. PresetDefault
// returns extra unchanged.
func (p Preset) FastpExtra(extra string) string {
	args, ok := presetArgs[p]
	if !ok {
		return extra
	}
	return strings.Join(args, " ")
}

// String returns the preset name.
func (p Preset) String() string {
	if n, ok := presetNames[p]; ok {
		return n
	}
	return fmt.Sprintf("preset(%d)", int(p))
}

// Set implements pflag.Value.
func (p *Preset) Set(s string) error {
	v, err := ParsePreset(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Type implements pflag.Value.
func (p *Preset) Type() string { return "preset" }
