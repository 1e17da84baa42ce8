package palette

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var embeddedPresets []byte

// Preset is a named palette shipped with the binary or loaded from a user
// presets file.
type Preset struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Colors      []string `yaml:"colors"`
}

type presetFile struct {
	Palettes []Preset `yaml:"palettes"`
}

var (
	presetOnce sync.Once
	presetErr  error
	presets    map[string][]color.NRGBA
	presetMeta []Preset
)

func loadPresets() {
	presets = make(map[string][]color.NRGBA)

	if err := mergePresetYAML(embeddedPresets); err != nil {
		// The embedded file is part of the build; failing to parse it is
		// a defect, not a runtime condition.
		panic(fmt.Sprintf("palette: embedded presets are invalid: %v", err))
	}

	// A user presets file extends or overrides the embedded set.
	if path := os.Getenv("HALFTONE_PALETTES"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			presetErr = fmt.Errorf("read palette presets: %w", err)
			return
		}
		if err := mergePresetYAML(data); err != nil {
			presetErr = fmt.Errorf("parse palette presets %s: %w", path, err)
		}
	}
}

func mergePresetYAML(data []byte) error {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}
	for _, p := range file.Palettes {
		colors := make([]color.NRGBA, 0, len(p.Colors))
		for _, s := range p.Colors {
			c, err := ParseColor(s)
			if err != nil {
				return fmt.Errorf("preset %q: %w", p.Name, err)
			}
			colors = append(colors, c)
		}
		if _, exists := presets[p.Name]; !exists {
			presetMeta = append(presetMeta, p)
		} else {
			for i := range presetMeta {
				if presetMeta[i].Name == p.Name {
					presetMeta[i] = p
				}
			}
		}
		presets[p.Name] = colors
	}
	return nil
}

// Lookup returns the colors of a named preset.
func Lookup(name string) ([]color.NRGBA, bool) {
	presetOnce.Do(loadPresets)
	colors, ok := presets[name]
	if !ok {
		return nil, false
	}
	out := make([]color.NRGBA, len(colors))
	copy(out, colors)
	return out, true
}

// Presets returns all known presets sorted by name, plus any error from the
// user presets file.
func Presets() ([]Preset, error) {
	presetOnce.Do(loadPresets)
	out := make([]Preset, len(presetMeta))
	copy(out, presetMeta)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, presetErr
}
