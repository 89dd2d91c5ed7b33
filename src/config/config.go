// Package config loads runtime settings from, in increasing priority: built-in
// defaults, an optional TOML file, a .env file and KNOTHASH_* variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "knothash"

type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Environment Environment `toml:"environment" envconfig:"ENV"`
	LogLevel    string      `toml:"log_level"   envconfig:"LOG_LEVEL"`
	ListSize    int         `toml:"list_size"   envconfig:"LIST_SIZE"`
	GridRows    int         `toml:"grid_rows"   envconfig:"GRID_ROWS"`
	Workers     int         `toml:"workers"     envconfig:"WORKERS"`
	InputDir    string      `toml:"input_dir"   envconfig:"INPUT_DIR"`
}

func Default() Config {
	return Config{
		Environment: EnvProd,
		LogLevel:    "warn",
		ListSize:    256,
		GridRows:    128,
		Workers:     8,
		InputDir:    "input",
	}
}

// Load applies every configuration layer on top of Default. An empty path
// skips the TOML layer; a missing .env file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config.Load %s: failed to parse TOML: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config.Load godotenv.Load: %w", err)
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load envconfig.Process: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Environment {
	case EnvDev, EnvProd:
	default:
		return fmt.Errorf("environment %q must be dev or prod: %w", c.Environment, ErrInvalidConfig)
	}

	if c.ListSize < 1 {
		return fmt.Errorf("list size %d must be positive: %w", c.ListSize, ErrInvalidConfig)
	}
	if c.GridRows < 1 {
		return fmt.Errorf("grid rows %d must be positive: %w", c.GridRows, ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d must be positive: %w", c.Workers, ErrInvalidConfig)
	}

	return nil
}
