package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidConfig indicates a setting with an unusable value.
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "DEPTSCHED"

// Environments accepted for the env key.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds the resolved settings.
type Config struct {
	Env            string   `mapstructure:"env"`
	LogLevel       string   `mapstructure:"log_level"`
	DataFile       string   `mapstructure:"data_file"`
	IncludeAliases bool     `mapstructure:"include_aliases"`
	Subjects       []string `mapstructure:"subjects"`
}

// IsProduction reports whether the production environment is selected.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"log-level":       "log_level",
	"file":            "data_file",
	"include-aliases": "include_aliases",
	"subject":         "subjects",
}

// Options controls where Load reads settings from.
type Options struct {
	// ConfigFile is an explicit config file; it must exist when set
	ConfigFile string

	// Paths locates the default config file, read only when present
	Paths *Paths

	// Flags are bound over environment and file values when changed
	Flags *pflag.FlagSet
}

// Load resolves the configuration.
func Load(opts Options) (*Config, error) {
	v := viper.New()

	v.SetDefault("env", EnvDevelopment)
	v.SetDefault("log_level", "info")
	v.SetDefault("data_file", "")
	v.SetDefault("include_aliases", false)
	v.SetDefault("subjects", []string{})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	file, err := configFile(opts)
	if err != nil {
		return nil, err
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// configFile returns the file to read, or "" when there is none.
func configFile(opts Options) (string, error) {
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return "", fmt.Errorf("failed to stat config file: %w", err)
		}
		return opts.ConfigFile, nil
	}
	if opts.Paths == nil || opts.Paths.Config == "" {
		return "", nil
	}

	_, err := os.Stat(opts.Paths.Config)
	switch {
	case err == nil:
		return opts.Paths.Config, nil
	case errors.Is(err, os.ErrNotExist):
		return "", nil
	default:
		return "", fmt.Errorf("failed to stat config file: %w", err)
	}
}

// Validate checks the settings.
func (c *Config) Validate() error {
	switch c.Env {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("%w: env must be %q or %q, got %q", ErrInvalidConfig, EnvDevelopment, EnvProduction, c.Env)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	return nil
}
