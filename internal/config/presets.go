package config

import (
	"slices"
	"sort"
)

// Presets use G = 1 so orbits close on human timescales.
var Presets = map[string]*Config{
	"binary": {
		Name: "binary", Gravity: 1, Density: 1, Dt: 0.01, Substeps: 10, Frames: 2000, Speed: 1, Stepper: "superstep",
		Bodies: []BodyConfig{
			{X: -1, Y: 0, VX: 0, VY: -0.5, M: 1},
			{X: 1, Y: 0, VX: 0, VY: 0.5, M: 1},
		},
	},
	"figure8": {
		Name: "figure8", Gravity: 1, Density: 100, Dt: 0.005, Substeps: 10, Frames: 1260, Speed: 1, Stepper: "superstep",
		Bodies: []BodyConfig{
			{X: -0.97000436, Y: 0.24308753, VX: 0.46620368, VY: 0.43236573, M: 1},
			{X: 0, Y: 0, VX: -0.93240737, VY: -0.86473146, M: 1},
			{X: 0.97000436, Y: -0.24308753, VX: 0.46620368, VY: 0.43236573, M: 1},
		},
	},
	"sun_planet": {
		Name: "sun_planet", Gravity: 1, Density: 10, Dt: 0.01, Substeps: 10, Frames: 3000, Speed: 1, Stepper: "superstep",
		Bodies: []BodyConfig{
			{X: 0, Y: 0, VX: 0, VY: 0, M: 10},
			{X: 4, Y: 0, VX: 0, VY: 1.58, M: 0.01},
			{X: -7, Y: 0, VX: 0, VY: -1.2, M: 0.02},
		},
	},
	"collapse": {
		Name: "collapse", Gravity: 1, Density: 1, Dt: 0.01, Substeps: 20, Frames: 400, Speed: 1, Stepper: "superstep",
		Bodies: []BodyConfig{
			{X: -2, Y: -2, VX: 0.1, VY: -0.1, M: 1},
			{X: 2, Y: -2, VX: 0.1, VY: 0.1, M: 1},
			{X: 2, Y: 2, VX: -0.1, VY: 0.1, M: 1},
			{X: -2, Y: 2, VX: -0.1, VY: -0.1, M: 1},
		},
	},
	"drift": {
		Name: "drift", Gravity: 1, Density: 1, Dt: 0.01, Substeps: 10, Frames: 2000, Speed: 1, Stepper: "superstep",
		Bodies: []BodyConfig{
			{X: -1, Y: 0, VX: 0.3, VY: -0.5, M: 1},
			{X: 1, Y: 0, VX: 0.3, VY: 0.5, M: 1},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Bodies = slices.Clone(p.Bodies)
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
