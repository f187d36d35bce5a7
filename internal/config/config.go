// Package config provides configuration loading for obavi.
package config

import (
	"github.com/KilimcininKorOglu/obavi/internal/attrval"
	"github.com/KilimcininKorOglu/obavi/internal/textclass"
)

// Config holds the complete obavi configuration.
type Config struct {
	Render  RenderConfig `yaml:"render"  envPrefix:"RENDER_"`
	Input   InputConfig  `yaml:"input"   envPrefix:"INPUT_"`
	Output  OutputConfig `yaml:"output"  envPrefix:"OUTPUT_"`
	Logging LogConfig    `yaml:"logging" envPrefix:"LOGGING_"`
}

// RenderConfig selects how values are classified and which format is
// written. Both settings are fixed for a whole run.
type RenderConfig struct {
	Policy textclass.Policy `yaml:"policy" env:"POLICY"`
	Format attrval.Format   `yaml:"format" env:"FORMAT"`
}

// InputConfig holds changeset input settings.
type InputConfig struct {
	// Path is the changeset file; "-" reads standard input.
	Path string `yaml:"path" env:"PATH"`
}

// OutputConfig holds output settings.
type OutputConfig struct {
	// Path is the output file; "-" writes standard output.
	Path string `yaml:"path" env:"PATH"`
	// Compression is none, gzip, zstd or auto (chosen by file extension).
	Compression string `yaml:"compression" env:"COMPRESSION"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
	Output string `yaml:"output" env:"OUTPUT"`
}
