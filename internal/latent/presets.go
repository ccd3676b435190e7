package latent

import "sort"

// mpBaseArea is one "megapixel" as the sizing options count it.
const mpBaseArea = 1024 * 1024

// presetAreas maps the discrete size options to their target pixel areas.
// The options track common generation resolutions rather than exact megapixel
// counts ("2" is the 1920x1080 area, not 2.0 MP).
var presetAreas = map[string]int{
	"0.25": 512 * 512,
	"0.5":  768 * 768,
	"1":    1024 * 1024,
	"1.25": 1280 * 1024,
	"1.5":  1440 * 1080,
	"1.75": 1664 * 1088,
	"2":    1920 * 1080,
	"2.5":  1536 * 1536,
	"3":    1792 * 1792,
	"4":    2048 * 2048,
}

// Presets returns the discrete size options in ascending area order.
func Presets() []string {
	names := make([]string, 0, len(presetAreas))
	for name := range presetAreas {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return presetAreas[names[i]] < presetAreas[names[j]]
	})
	return names
}

// PresetArea returns the target pixel area for a preset. Unknown names fall
// back to the 1MP default.
func PresetArea(name string) int {
	if area, ok := presetAreas[name]; ok {
		return area
	}
	return mpBaseArea
}
