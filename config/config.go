// Package config loads and validates simulation settings from YAML.
//
// Zero-valued fields in a loaded file fall back to the defaults, so a
// config file only needs to state what it overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for loading and validation.
var (
	// ErrOutOfRange indicates a field outside its documented bounds.
	ErrOutOfRange = errors.New("config: value out of range")
)

// Documented field bounds.
const (
	MinNumData   = 5
	MaxNumData   = 100
	MinNumChecks = 3
	MaxNumChecks = 50

	MinCooperativity = 1e3
	MaxCooperativity = 1e6
)

// Code configures matrix generation.
type Code struct {
	NumData     int   `yaml:"num_data"`
	NumChecks   int   `yaml:"num_checks"`
	CheckDegree int   `yaml:"check_degree"`
	Seed        int64 `yaml:"seed"`
}

// Simulation configures decoding and circuit evaluation.
type Simulation struct {
	Shots                    int     `yaml:"shots"`
	BPMaxIterations          int     `yaml:"bp_max_iterations"`
	BPTolerance              float64 `yaml:"bp_tolerance"`
	ParityConnectionDistance int     `yaml:"parity_connection_distance"`
}

// Cavity configures the cooperativity model.
type Cavity struct {
	Cooperativity float64 `yaml:"cooperativity"`
	ResidualError float64 `yaml:"residual_error"`
}

// Config is the full settings tree.
type Config struct {
	Code       Code       `yaml:"code"`
	Simulation Simulation `yaml:"simulation"`
	Cavity     Cavity     `yaml:"cavity"`
}

// Default returns the canonical settings: the 12x21 seed-42 code, 1024
// shots, ten decode iterations and cooperativity 1e5.
func Default() Config {
	return Config{
		Code: Code{
			NumData:     21,
			NumChecks:   12,
			CheckDegree: 6,
			Seed:        42,
		},
		Simulation: Simulation{
			Shots:                    1024,
			BPMaxIterations:          10,
			BPTolerance:              1e-6,
			ParityConnectionDistance: 2,
		},
		Cavity: Cavity{
			Cooperativity: 1e5,
			ResidualError: 0.001,
		},
	}
}

// Load reads YAML from path over the defaults and validates the result.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes YAML bytes over the defaults and validates the result.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its documented bounds.
func (c Config) Validate() error {
	if c.Code.NumData < MinNumData || c.Code.NumData > MaxNumData {
		return fmt.Errorf("%w: num_data %d not in [%d, %d]",
			ErrOutOfRange, c.Code.NumData, MinNumData, MaxNumData)
	}
	if c.Code.NumChecks < MinNumChecks || c.Code.NumChecks > MaxNumChecks {
		return fmt.Errorf("%w: num_checks %d not in [%d, %d]",
			ErrOutOfRange, c.Code.NumChecks, MinNumChecks, MaxNumChecks)
	}
	if c.Code.CheckDegree < 1 || c.Code.CheckDegree > c.Code.NumData {
		return fmt.Errorf("%w: check_degree %d", ErrOutOfRange, c.Code.CheckDegree)
	}
	if c.Simulation.Shots < 1 {
		return fmt.Errorf("%w: shots %d", ErrOutOfRange, c.Simulation.Shots)
	}
	if c.Simulation.BPMaxIterations < 1 {
		return fmt.Errorf("%w: bp_max_iterations %d", ErrOutOfRange, c.Simulation.BPMaxIterations)
	}
	if c.Simulation.BPTolerance <= 0 {
		return fmt.Errorf("%w: bp_tolerance %g", ErrOutOfRange, c.Simulation.BPTolerance)
	}
	if c.Simulation.ParityConnectionDistance < 1 {
		return fmt.Errorf("%w: parity_connection_distance %d",
			ErrOutOfRange, c.Simulation.ParityConnectionDistance)
	}
	if c.Cavity.Cooperativity < MinCooperativity || c.Cavity.Cooperativity > MaxCooperativity {
		return fmt.Errorf("%w: cooperativity %g not in [%g, %g]",
			ErrOutOfRange, c.Cavity.Cooperativity, MinCooperativity, MaxCooperativity)
	}
	if c.Cavity.ResidualError < 0 || c.Cavity.ResidualError >= 1 {
		return fmt.Errorf("%w: residual_error %g", ErrOutOfRange, c.Cavity.ResidualError)
	}
	return nil
}
