package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/strukt-dev/strukt/internal/stress"
	"github.com/strukt-dev/strukt/internal/support"
)

// Config is the engine tuning file. Every value has a working default; a
// file only needs the keys it overrides. ForceScale and SupportEpsilon are
// empirical constants preserved for compatibility with the reference
// results, not physically derived.
type Config struct {
	ForceScale      float64 `yaml:"force_scale"`
	SupportEpsilon  float64 `yaml:"support_epsilon"`
	Gravity         float64 `yaml:"gravity"`
	DeformationGain float64 `yaml:"deformation_gain"`
	Workers         int     `yaml:"workers"`
}

func Default() *Config {
	return &Config{
		ForceScale:      stress.DefaultForceScale,
		SupportEpsilon:  support.DefaultEpsilon,
		Gravity:         stress.DefaultGravity,
		DeformationGain: stress.DefaultDeformationGain,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
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

// Engine builds a stress engine from the tuning values.
func (c *Config) Engine() *stress.Engine {
	e := stress.NewEngine()
	if c.ForceScale > 0 {
		e.ForceScale = c.ForceScale
	}
	if c.Gravity > 0 {
		e.Gravity = c.Gravity
	}
	e.Workers = c.Workers
	return e
}

// Checker builds a support checker from the tuning values.
func (c *Config) Checker() *support.Checker {
	ch := support.NewChecker()
	if c.SupportEpsilon > 0 {
		ch.Epsilon = c.SupportEpsilon
	}
	return ch
}
