package scene

import "sort"

// Presets are built-in example structures, keyed by name.
var Presets = map[string]*Scene{
	"stack": {
		Name: "stack",
		Bodies: []BodySpec{
			{Position: [3]float64{0, 0.5, 0}, Size: [3]float64{1, 1, 1}},
			{Position: [3]float64{0, 1.5, 0}, Size: [3]float64{1, 1, 1}},
		},
		Force: &ForceSpec{
			Origin:    [3]float64{0, 3, 0},
			Direction: [3]float64{0, -1, 0},
			Magnitude: 1,
		},
	},
	"tower": {
		Name: "tower",
		Bodies: []BodySpec{
			{Position: [3]float64{0, 0.25, 0}, Size: [3]float64{3, 0.5, 3}, Material: "concrete", Boundary: "fixed"},
			{Position: [3]float64{0, 2, 0}, Size: [3]float64{1.5, 3, 1.5}, Material: "concrete"},
			{Position: [3]float64{0, 4.5, 0}, Size: [3]float64{1, 2, 1}, Material: "steel"},
			{Position: [3]float64{0, 5.75, 0}, Size: [3]float64{1.4, 0.5, 1.4}, Material: "steel"},
		},
		Force: &ForceSpec{
			Origin:    [3]float64{4, 6, 0},
			Direction: [3]float64{-1, 0, 0},
			Magnitude: 3,
		},
	},
	"bridge": {
		Name: "bridge",
		Bodies: []BodySpec{
			{Position: [3]float64{-3, 1, 0}, Size: [3]float64{1, 2, 2}, Material: "concrete", Boundary: "fixed"},
			{Position: [3]float64{3, 1, 0}, Size: [3]float64{1, 2, 2}, Material: "concrete", Boundary: "fixed"},
			{Position: [3]float64{0, 2.25, 0}, Size: [3]float64{7, 0.5, 2}, Material: "steel"},
		},
		Force: &ForceSpec{
			Origin:    [3]float64{0, 5, 0},
			Direction: [3]float64{0, -1, 0},
			Magnitude: 2,
		},
	},
	"cantilever": {
		Name: "cantilever",
		Bodies: []BodySpec{
			{Position: [3]float64{0, 1.5, 0}, Size: [3]float64{1, 3, 1}, Material: "concrete", Boundary: "fixed"},
			{Position: [3]float64{1.5, 3.25, 0}, Size: [3]float64{4, 0.5, 1}, Material: "wood"},
		},
		Force: &ForceSpec{
			Origin:    [3]float64{3, 5, 0},
			Direction: [3]float64{0, -1, 0},
			Magnitude: 1.5,
		},
	},
	"columns": {
		Name: "columns",
		Bodies: []BodySpec{
			{Shape: "cylinder", Position: [3]float64{-2, 1.5, 0}, Radius: 0.4, Height: 3, Material: "concrete"},
			{Shape: "cylinder", Position: [3]float64{2, 1.5, 0}, Radius: 0.4, Height: 3, Material: "concrete"},
			{Position: [3]float64{0, 3.25, 0}, Size: [3]float64{5, 0.5, 1.5}, Material: "aluminum"},
		},
		Force: &ForceSpec{
			Origin:    [3]float64{0, 6, 0},
			Direction: [3]float64{0, -1, 0},
			Magnitude: 2,
		},
	},
}

// GetPreset returns a built-in scene, or nil when unknown.
func GetPreset(name string) *Scene {
	return Presets[name]
}

// ListPresets returns the preset names sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
