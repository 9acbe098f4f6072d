package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults used by the CLI when no flag overrides them.
var defaults = struct {
	// Battle is the preset applied when neither -battle nor -factor is given.
	Battle string
	// SweepStep is the anchor-speed increment for -from/-to tables.
	SweepStep int
}{
	Battle:    "standard",
	SweepStep: 1,
}

func builtinPresets() map[string]float64 {
	return map[string]float64{
		"standard": FactorStandard,
		"boss":     FactorBoss,
	}
}

// PresetFile is the YAML shape accepted by -presets: battle type names mapped
// to stability factors, e.g.
//
//	presets:
//	  boss: 1.2
//	  arena: 1.1
type PresetFile struct {
	Presets map[string]float64 `yaml:"presets"`
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadPresets reads a YAML preset file and merges it over the built-in
// standard/boss factors. File entries win on name collisions.
func LoadPresets(path string) (map[string]float64, error) {
	var pf PresetFile
	if err := loadYAML(path, &pf); err != nil {
		return nil, err
	}
	merged := builtinPresets()
	for name, f := range pf.Presets {
		if f <= 1 {
			return nil, fmt.Errorf("preset %q: factor must be greater than 1, got %v", name, f)
		}
		merged[name] = f
	}
	return merged, nil
}
