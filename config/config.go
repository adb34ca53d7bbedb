// Package config provides configuration loading and access for the maze engine.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all engine configuration parameters.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Curve   CurveConfig   `yaml:"curve"`
	History HistoryConfig `yaml:"history"`

	// Derived holds values computed after loading.
	Derived DerivedConfig `yaml:"-"`
}

// WorldConfig holds the simulation world bounds.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomMargin float64 `yaml:"bottom_margin"` // inset from Height the floor/contacts clamp to
}

// PhysicsConfig holds grid-engine (Verlet + constraint solver) parameters.
type PhysicsConfig struct {
	DT               float64 `yaml:"dt"`                // 1/60
	Gravity          float64 `yaml:"gravity"`            // 980 px/s^2
	SolverIterations int     `yaml:"solver_iterations"`  // K = 6
	MinSeparation    float64 `yaml:"min_separation"`      // d_min = 8
	CellSize         float64 `yaml:"cell_size"`           // spatial index cell size, typical 32
	EdgeClamp        float64 `yaml:"edge_clamp"`          // 10 (interior rectangle inset)
}

// CurveConfig holds curve-evolution engine parameters.
type CurveConfig struct {
	BrownianSigma float64 `yaml:"brownian_sigma"` // sigma = 0.1
	K1            float64 `yaml:"k1"`             // attraction radius factor, fixed at 0.4
	SigmaLJ       float64 `yaml:"sigma_lj"`       // Lennard-Jones sigma = 5
	LJClamp       float64 `yaml:"lj_clamp"`       // |w| <= 10
	MinForceR     float64 `yaml:"min_force_r"`    // 1e-3 singularity guard
	GradientEps   float64 `yaml:"gradient_eps"`   // anisotropy gradient guard, 1e-3
	CellSize      float64 `yaml:"cell_size"`      // spatial index cell size for curve engine
}

// HistoryConfig holds undo/redo bookkeeping parameters.
type HistoryConfig struct {
	Capacity int `yaml:"capacity"` // N = 50
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	BottomY float64 // World.Height - World.BottomMargin
}

// global holds the process-wide configuration, set by Init.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// alone if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the process-wide configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging it over embedded
// defaults. If path is empty, only the embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()
	return cfg, nil
}

// WriteYAML writes the configuration to path as YAML.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func (c *Config) computeDerived() {
	c.Derived.BottomY = c.World.Height - c.World.BottomMargin
}
