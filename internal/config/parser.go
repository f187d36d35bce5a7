package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	env "github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of all environment overrides, e.g.
// OBAVI_RENDER_POLICY or OBAVI_LOGGING_LEVEL.
const EnvPrefix = "OBAVI_"

// Parser errors.
var (
	ErrInvalidYAML  = errors.New("invalid YAML format")
	ErrInvalidEnv   = errors.New("invalid environment override")
	ErrFileNotFound = errors.New("configuration file not found")
)

// LoadConfig loads configuration from a file path and applies
// environment overrides. An empty path yields the defaults plus
// environment overrides.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		cfg := DefaultConfig()
		if err := ApplyEnv(cfg, nil); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}
	if err := ApplyEnv(cfg, nil); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseConfig parses configuration from YAML data on top of the defaults.
// Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return cfg, nil
}

// ApplyEnv overrides cfg with OBAVI_* environment variables. When environ
// is nil the process environment is used.
func ApplyEnv(cfg *Config, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEnv, err)
	}
	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
