// Package config loads linear DAE definitions from yaml files and ships
// a set of named example systems.
package config

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/daelab/internal/dae"
)

const (
	DefaultStartExp = -2.0
	DefaultEndExp   = 2.0
	DefaultPoints   = 200
)

// Config describes one system plus its default sweep. E is optional; when
// omitted the system gets an identity E sized like A.
type Config struct {
	Label string      `yaml:"label"`
	E     [][]float64 `yaml:"e,omitempty"`
	A     [][]float64 `yaml:"a"`
	B     [][]float64 `yaml:"b"`
	C     [][]float64 `yaml:"c"`
	D     [][]float64 `yaml:"d"`
	Sweep SweepConfig `yaml:"sweep"`
}

// SweepConfig selects the log-frequency axis in decades.
type SweepConfig struct {
	StartExp float64 `yaml:"start_exp"`
	EndExp   float64 `yaml:"end_exp"`
	Points   int     `yaml:"points"`
}

func DefaultSweep() SweepConfig {
	return SweepConfig{StartExp: DefaultStartExp, EndExp: DefaultEndExp, Points: DefaultPoints}
}

// Load reads a yaml system definition. A missing or empty sweep section
// falls back to the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Sweep.Points == 0 {
		cfg.Sweep.Points = DefaultPoints
	}
	if cfg.Sweep.StartExp == 0 && cfg.Sweep.EndExp == 0 {
		cfg.Sweep.StartExp = DefaultStartExp
		cfg.Sweep.EndExp = DefaultEndExp
	}
	return &cfg, nil
}

// Build constructs the system the config describes.
func (c *Config) Build() (*dae.System, error) {
	a, err := dense("a", c.A)
	if err != nil {
		return nil, err
	}
	b, err := dense("b", c.B)
	if err != nil {
		return nil, err
	}
	cm, err := dense("c", c.C)
	if err != nil {
		return nil, err
	}
	d, err := dense("d", c.D)
	if err != nil {
		return nil, err
	}

	if c.E == nil {
		return dae.New(a, b, cm, d, c.Label)
	}
	e, err := dense("e", c.E)
	if err != nil {
		return nil, err
	}
	return dae.NewDescriptor(e, a, b, cm, d, c.Label)
}

func dense(name string, rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("config: matrix %s is empty", name)
	}
	nc := len(rows[0])
	data := make([]float64, 0, len(rows)*nc)
	for i, row := range rows {
		if len(row) != nc {
			return nil, fmt.Errorf("config: matrix %s row %d has %d entries, want %d", name, i, len(row), nc)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), nc, data), nil
}
