package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/hjson/hjson-go"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
)

const (
	DefaultDensity = 1.0
	DefaultDt      = 0.01
	DefaultFrames  = 1000
	DefaultSpeed   = 1.0
	DefaultStepper = "superstep"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Name     string       `yaml:"name,omitempty" json:"name,omitempty"`
	Gravity  float64      `yaml:"gravity" json:"gravity"`
	Density  float64      `yaml:"density" json:"density"`
	Dt       float64      `yaml:"dt" json:"dt"`
	Substeps int          `yaml:"substeps" json:"substeps"`
	Frames   int          `yaml:"frames" json:"frames"`
	Speed    float64      `yaml:"speed" json:"speed"`
	Stepper  string       `yaml:"stepper" json:"stepper"`
	Bodies   []BodyConfig `yaml:"bodies" json:"bodies"`
}

type BodyConfig struct {
	X  float64 `yaml:"x" json:"x"`
	Y  float64 `yaml:"y" json:"y"`
	VX float64 `yaml:"vx" json:"vx"`
	VY float64 `yaml:"vy" json:"vy"`
	M  float64 `yaml:"m" json:"m"`
}

func DefaultConfig() *Config {
	return &Config{
		Gravity:  physics.GravitationalConstant,
		Density:  DefaultDensity,
		Dt:       DefaultDt,
		Substeps: physics.DefaultSubsteps,
		Frames:   DefaultFrames,
		Speed:    DefaultSpeed,
		Stepper:  DefaultStepper,
	}
}

// Load reads a YAML config, or an HJSON one when the file ends in .hjson.
// Fields missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()

	if filepath.Ext(path) == ".hjson" {
		var raw map[string]interface{}
		if err := hjson.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if data, err = json.Marshal(raw); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case math.IsNaN(c.Gravity) || math.IsInf(c.Gravity, 0):
		return fmt.Errorf("%w: gravity must be finite", ErrInvalidConfig)
	case c.Density <= 0:
		return fmt.Errorf("%w: density must be positive, got %g", ErrInvalidConfig, c.Density)
	case c.Dt <= 0:
		return fmt.Errorf("%w: dt must be positive, got %g", ErrInvalidConfig, c.Dt)
	case c.Substeps <= 0:
		return fmt.Errorf("%w: substeps must be positive, got %d", ErrInvalidConfig, c.Substeps)
	case c.Frames < 0:
		return fmt.Errorf("%w: frames must not be negative, got %d", ErrInvalidConfig, c.Frames)
	case c.Speed < 0:
		return fmt.Errorf("%w: speed must not be negative, got %g", ErrInvalidConfig, c.Speed)
	case len(c.Bodies) == 0:
		return fmt.Errorf("%w: %w", ErrInvalidConfig, physics.ErrNoBodies)
	}
	for i, b := range c.Bodies {
		if b.M <= 0 {
			return fmt.Errorf("%w: body %d has non-positive mass %g", ErrInvalidConfig, i, b.M)
		}
	}
	if _, err := dynamo.LookupStepper(c.Stepper); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// SetParams replaces the bodies with those described by flat
// (x y vx vy m) groups.
func (c *Config) SetParams(params []float64) error {
	bodies, err := physics.ParseBodies(params)
	if err != nil {
		return err
	}
	c.Bodies = make([]BodyConfig, len(bodies))
	for i, b := range bodies {
		c.Bodies[i] = BodyConfig{X: b.X, Y: b.Y, VX: b.VX, VY: b.VY, M: b.M}
	}
	return nil
}

func (c *Config) State() (physics.Bodies, error) {
	bodies := make([]physics.Body, len(c.Bodies))
	for i, b := range c.Bodies {
		bodies[i] = physics.Body{X: b.X, Y: b.Y, VX: b.VX, VY: b.VY, M: b.M}
	}
	return physics.NewBodies(bodies, c.Gravity)
}

func (c *Config) Run() dynamo.Config {
	return dynamo.Config{
		Dt:            c.Dt,
		Substeps:      c.Substeps,
		Frames:        c.Frames,
		Speed:         c.Speed,
		ValidateState: true,
	}
}
