// Package config layers defaults, an optional YAML file and HINGER_*
// environment variables into a Config.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "HINGER"

type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	OutputDir string `mapstructure:"output_dir"`

	// Path search. An empty Strategy runs every strategy; an empty Scenarios
	// path uses the built-in boards.
	Strategy  string `mapstructure:"strategy"`
	Scenarios string `mapstructure:"scenarios"`
	StepLimit int    `mapstructure:"step_limit"`
	MaxDepth  int    `mapstructure:"max_depth"`

	// Matches
	Depth      int    `mapstructure:"depth"`
	Games      int    `mapstructure:"games"`
	Seed       uint64 `mapstructure:"seed"`
	Evaluation string `mapstructure:"evaluation"`
}

var defaults = map[string]any{
	"log_level":  "info",
	"output_dir": "experiments/results",
	"strategy":   "",
	"scenarios":  "",
	"step_limit": 10000,
	"max_depth":  50,
	"depth":      3,
	"games":      10,
	"seed":       42,
	"evaluation": "crowding",
}

// Load reads the configuration. path may be empty, in which case only the
// defaults and the environment are used.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
