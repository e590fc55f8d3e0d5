package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/stencilbench/internal/precision"
)

const (
	DefaultIters    = 500
	DefaultRepeats  = 1
	DefaultBoundary = 1.0
	DefaultOutput   = "results/results.csv"
)

// Config describes a benchmark sweep: the cross product of sizes,
// precisions and backends, each repeated Repeats times.
type Config struct {
	Sizes      []int    `yaml:"sizes"`
	Iters      int      `yaml:"iters"`
	Precisions []string `yaml:"precisions"`
	Backends   []string `yaml:"backends"`
	Repeats    int      `yaml:"repeats"`
	Threads    int      `yaml:"threads"`
	Boundary   float64  `yaml:"boundary"`
	Output     string   `yaml:"output"`
}

func DefaultConfig() *Config {
	return &Config{
		Sizes:      []int{512, 1024, 2048},
		Iters:      DefaultIters,
		Precisions: []string{"f64", "f32"},
		Backends:   []string{"cpu"},
		Repeats:    DefaultRepeats,
		Boundary:   DefaultBoundary,
		Output:     DefaultOutput,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
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
	if len(c.Sizes) == 0 {
		return fmt.Errorf("sweep needs at least one grid size")
	}
	for _, s := range c.Sizes {
		if s < 3 {
			return fmt.Errorf("grid size must be at least 3, got %d", s)
		}
	}
	if c.Iters < 0 {
		return fmt.Errorf("iteration count must be nonnegative, got %d", c.Iters)
	}
	if c.Repeats < 1 {
		return fmt.Errorf("repeats must be at least 1, got %d", c.Repeats)
	}
	if len(c.Precisions) == 0 {
		return fmt.Errorf("sweep needs at least one precision")
	}
	for _, p := range c.Precisions {
		if _, err := precision.Parse(p); err != nil {
			return err
		}
	}
	if len(c.Backends) == 0 {
		return fmt.Errorf("sweep needs at least one backend")
	}
	if c.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}
	return nil
}
