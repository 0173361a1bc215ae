package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/smahesh/orbitlab/internal/orbit"
)

// FourPiSquared is GM in astronomical units: with distance in AU and
// time in years, GM of a one-solar-mass center is 4*pi^2, and a circular
// orbit at 1 AU has period exactly 1.
const FourPiSquared = 4 * math.Pi * math.Pi

const (
	DefaultDt      = 0.001
	DefaultTmax    = 2.0
	DefaultWorkers = 1
)

type Config struct {
	GM      float64      `yaml:"gm"`
	Dt      float64      `yaml:"dt"`
	Tmax    float64      `yaml:"tmax"`
	Workers int          `yaml:"workers"`
	Bodies  []BodyConfig `yaml:"bodies"`
}

// BodyConfig is one body's initial conditions. Either Circular is set,
// in which case Radius and Phase place the body on an exact circular
// orbit, or Pos and Vel are given directly.
type BodyConfig struct {
	Mass     float64    `yaml:"mass"`
	Circular bool       `yaml:"circular"`
	Radius   float64    `yaml:"radius"`
	Phase    float64    `yaml:"phase"`
	Pos      [2]float64 `yaml:"pos"`
	Vel      [2]float64 `yaml:"vel"`
}

func DefaultConfig() *Config {
	return &Config{
		GM:      FourPiSquared,
		Dt:      DefaultDt,
		Tmax:    DefaultTmax,
		Workers: DefaultWorkers,
		Bodies: []BodyConfig{
			{Mass: 0.1, Circular: true, Radius: 1.0},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Bodies = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if len(cfg.Bodies) == 0 {
		cfg.Bodies = DefaultConfig().Bodies
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

// Field returns the central force law the config describes.
func (c *Config) Field() orbit.Central {
	return orbit.Central{GM: c.GM}
}

// GetBodies builds the initial body set, evaluating each body's initial
// force against the config's field.
func (c *Config) GetBodies() ([]orbit.Body, error) {
	field := c.Field()
	bodies := make([]orbit.Body, 0, len(c.Bodies))
	for i, bc := range c.Bodies {
		var (
			b   orbit.Body
			err error
		)
		if bc.Circular {
			b, err = orbit.NewCircular(bc.Mass, bc.Radius, bc.Phase, field)
		} else {
			b, err = orbit.NewBody(bc.Mass,
				orbit.Vec2{X: bc.Pos[0], Y: bc.Pos[1]},
				orbit.Vec2{X: bc.Vel[0], Y: bc.Vel[1]},
				field)
		}
		if err != nil {
			return nil, fmt.Errorf("body %d: %w", i, err)
		}
		bodies = append(bodies, b)
	}
	return bodies, nil
}
