package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the convention defaults the CLIs apply when a flag is not
// given, plus the market data connection settings.
type Config struct {
	Frequency    int    `yaml:"frequency"`
	Calendar     string `yaml:"calendar"`
	BusDayAdjust string `yaml:"bus_day_adjust"`
	DateGenRule  string `yaml:"date_gen_rule"`
	DayCount     string `yaml:"day_count"`

	Rates struct {
		DSN string `yaml:"dsn"`
	} `yaml:"rates"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error; defaults still apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("MORTLIB_RATES_DSN"); v != "" {
		cfg.Rates.DSN = v
	}
	if v := os.Getenv("MORTLIB_CALENDAR"); v != "" {
		cfg.Calendar = v
	}

	// Defaults
	if cfg.Frequency == 0 {
		cfg.Frequency = 12
	}
	if cfg.Calendar == "" {
		cfg.Calendar = "WEEKEND"
	}
	if cfg.BusDayAdjust == "" {
		cfg.BusDayAdjust = "FOLLOWING"
	}
	if cfg.DateGenRule == "" {
		cfg.DateGenRule = "BACKWARD"
	}
	if cfg.DayCount == "" {
		cfg.DayCount = "ACT/360"
	}

	return cfg, nil
}
