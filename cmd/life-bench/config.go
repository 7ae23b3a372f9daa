package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config describes one benchmark run. Durations in JSON are nanoseconds.
type Config struct {
	Duration    time.Duration `json:"duration"`
	Workers     int           `json:"workers"`
	Pattern     string        `json:"pattern"`
	Soup        int32         `json:"soup"`
	Seed        int64         `json:"seed"`
	Generations uint64        `json:"generations"`
	Visuals     bool          `json:"visuals"`
	NoColor     bool          `json:"no_color"`
}

func DefaultConfig() Config {
	return Config{
		Duration: 5 * time.Second,
		Workers:  4,
		Soup:     128,
		Seed:     1,
	}
}

// loadConfig reads a JSON config on top of DefaultConfig.
func loadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "read config %s", filename)
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "parse config %s", filename)
	}
	if err := config.validate(); err != nil {
		return config, errors.Wrapf(err, "config %s", filename)
	}
	return config, nil
}

// merge overlays every non-zero field of flags onto c.
func (c Config) merge(flags Config) Config {
	if flags.Duration != 0 {
		c.Duration = flags.Duration
	}
	if flags.Workers != 0 {
		c.Workers = flags.Workers
	}
	if flags.Pattern != "" {
		c.Pattern = flags.Pattern
	}
	if flags.Soup != 0 {
		c.Soup = flags.Soup
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.Generations != 0 {
		c.Generations = flags.Generations
	}
	c.Visuals = c.Visuals || flags.Visuals
	c.NoColor = c.NoColor || flags.NoColor
	return c
}

func (c Config) validate() error {
	if c.Duration <= 0 && c.Generations == 0 {
		return errors.New("either duration or generations must be positive")
	}
	if c.Workers <= 0 {
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Soup < 0 {
		return errors.Errorf("soup size must not be negative, got %d", c.Soup)
	}
	return nil
}
