package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/viz"
)

// loadScenario builds a validated config from, in increasing priority, the
// defaults, a preset, a config file, positional body parameters and any flag
// set on the command line.
func loadScenario(cmd *cobra.Command, args []string, f scenarioFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if f.preset != "" {
		p := config.GetPreset(f.preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", f.preset, config.ListPresets())
		}
		cfg = p
	}

	if f.configFile != "" {
		loaded, err := config.Load(f.configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		params, err := parseParams(args)
		if err != nil {
			return nil, err
		}
		if err := cfg.SetParams(params); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("gravity") {
		cfg.Gravity = f.gravity
	}
	if flags.Changed("density") {
		cfg.Density = f.density
	}
	if flags.Changed("dt") {
		cfg.Dt = f.dt
	}
	if flags.Changed("substeps") {
		cfg.Substeps = f.substeps
	}
	if flags.Changed("frames") {
		cfg.Frames = f.frames
	}
	if flags.Changed("speed") {
		cfg.Speed = f.speed
	}
	if flags.Changed("stepper") {
		cfg.Stepper = f.stepper
	}

	if cfg.Name == "" {
		cfg.Name = "custom"
	}

	if len(cfg.Bodies) == 1 {
		fmt.Fprintln(cmd.ErrOrStderr(), viz.Warning.Render("warning: one-body simulation"))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseParams(args []string) ([]float64, error) {
	params := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid body parameter %q: %w", a, err)
		}
		params[i] = v
	}
	return params, nil
}
