// Package config loads the birthday book settings from the environment,
// optionally layered over a YAML file named by CONFIG_PATH.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the process settings.
type Config struct {
	// DBPath is the SQLite file used by Load and Save. Empty disables them.
	DBPath string `yaml:"db_path" env:"DB_PATH" env-default:"./data/birthdays.db"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`

	// MetricsAddr is the listen address for /metrics. Empty disables it.
	MetricsAddr string `yaml:"metrics_addr" env:"METRICS_ADDR"`

	// ClearScreen clears the terminal before the menu is shown. A false value
	// in the YAML file is replaced by the default; use CLEAR_SCREEN=false.
	ClearScreen bool `yaml:"clear_screen" env:"CLEAR_SCREEN" env-default:"true"`
}

// Load reads the configuration. Environment variables override values from
// the CONFIG_PATH file when both are set.
func Load() (*Config, error) {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read environment: %w", err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config file %s: %w", configPath, err)
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"DBPath: %s\n"+
			"LogLevel: %s\n"+
			"MetricsAddr: %s\n"+
			"ClearScreen: %t\n",
		c.DBPath,
		c.LogLevel,
		c.MetricsAddr,
		c.ClearScreen,
	)
}
