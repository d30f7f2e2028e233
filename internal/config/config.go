// Package config loads CLI defaults from a config file, environment
// variables, and flags, in that order of increasing precedence.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the defaults the CLI falls back to when a flag isn't set
// explicitly on the command line.
type Config struct {
	Hybrid      bool `mapstructure:"hybrid"`
	Global      bool `mapstructure:"global"`
	Verbose     bool `mapstructure:"verbose"`
	TryHarder   bool `mapstructure:"try_harder"`
	SearchMulti bool `mapstructure:"search_multi"`
}

// Default returns the built-in defaults, used when no config file or
// environment variable overrides them.
func Default() Config {
	return Config{
		Hybrid:      false,
		Global:      false,
		Verbose:     false,
		TryHarder:   false,
		SearchMulti: false,
	}
}

// Load reads barcode-cli configuration from (in order) a config file named
// .barcode-cli.yaml in the current directory or $HOME, and environment
// variables prefixed BARCODE_CLI_. Missing files are not an error; Load
// falls back to Default in that case.
func Load(cfgFile string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("barcode_cli")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfg := Default()
	v.SetDefault("hybrid", cfg.Hybrid)
	v.SetDefault("global", cfg.Global)
	v.SetDefault("verbose", cfg.Verbose)
	v.SetDefault("try_harder", cfg.TryHarder)
	v.SetDefault("search_multi", cfg.SearchMulti)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".barcode-cli")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile == "" {
			return cfg, nil
		}
		if cfgFile != "" {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
