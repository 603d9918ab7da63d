// Package config holds the settings of the filtering demo.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the seeded sequence and the filter applied to it.
type Config struct {
	// First value of the seeded arithmetic sequence
	Start int `yaml:"start"`

	// Number of values to seed
	Count int `yaml:"count"`

	// Distance between consecutive seeded values
	Step int `yaml:"step"`

	// Keep only values strictly greater than this
	GreaterThan int `yaml:"greater_than"`

	// Keep only values divisible by this (1 keeps everything)
	DivisibleBy int `yaml:"divisible_by"`

	// Maximum number of results to print, 0 prints all of them
	Take int `yaml:"take"`
}

// DefaultConfig returns the configuration of the stock demo:
// the even numbers 0..98, keeping those above 49, first ten.
func DefaultConfig() *Config {
	return &Config{
		Start:       0,
		Count:       50,
		Step:        2,
		GreaterThan: 49,
		DivisibleBy: 2,
		Take:        10,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("yaml unmarshal %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate reports the first setting that cannot drive the demo.
func (c *Config) Validate() error {
	switch {
	case c.Count < 0:
		return errors.New("count must not be negative")
	case c.DivisibleBy <= 0:
		return errors.New("divisible_by must be positive")
	case c.Take < 0:
		return errors.New("take must not be negative")
	}
	return nil
}

// Values yields the seeded sequence.
func (c *Config) Values(yield func(int) bool) {
	for i := range c.Count {
		if !yield(c.Start + i*c.Step) {
			return
		}
	}
}

// Keep is the demo filter.
func (c *Config) Keep(v int) bool {
	return v > c.GreaterThan && v%c.DivisibleBy == 0
}
