package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig validates the configuration and returns a list of validation errors.
// An empty slice indicates the configuration is valid.
func ValidateConfig(config *Config) []error {
	var errs []error

	errs = append(errs, validateInputConfig(&config.Input)...)
	errs = append(errs, validateOutputConfig(&config.Output)...)
	errs = append(errs, validateLogConfig(&config.Logging)...)

	// Rendered records go to stdout when output.path is "-"; log lines
	// must not be mixed into them.
	if config.Output.Path == "-" && strings.EqualFold(config.Logging.Output, "stdout") {
		errs = append(errs, ValidationError{
			Field:   "logging.output",
			Message: "cannot be stdout while output.path is - (stdout)",
		})
	}

	return errs
}

func validateInputConfig(config *InputConfig) []error {
	if config.Path == "" {
		return []error{ValidationError{Field: "input.path", Message: "is required (use - for stdin)"}}
	}
	return nil
}

// validateOutputConfig validates output configuration.
func validateOutputConfig(config *OutputConfig) []error {
	var errs []error

	if config.Path == "" {
		errs = append(errs, ValidationError{
			Field:   "output.path",
			Message: "is required (use - for stdout)",
		})
	}

	switch strings.ToLower(config.Compression) {
	case "", "auto", "none", "gzip", "zstd":
	default:
		errs = append(errs, ValidationError{
			Field:   "output.compression",
			Message: "must be auto, none, gzip, or zstd",
		})
	}

	return errs
}

// validateLogConfig validates logging configuration.
func validateLogConfig(config *LogConfig) []error {
	var errs []error

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if config.Level != "" && !validLevels[strings.ToLower(config.Level)] {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: "must be debug, info, warn, or error",
		})
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if config.Format != "" && !validFormats[strings.ToLower(config.Format)] {
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: "must be text or json",
		})
	}

	if config.Output != "" && config.Output != "stdout" && config.Output != "stderr" {
		dir := filepath.Dir(config.Output)
		if !filepath.IsAbs(config.Output) {
			errs = append(errs, ValidationError{
				Field:   "logging.output",
				Message: "must be stdout, stderr, or an absolute file path",
			})
		} else if _, err := os.Stat(dir); os.IsNotExist(err) {
			errs = append(errs, ValidationError{
				Field:   "logging.output",
				Message: fmt.Sprintf("directory %s does not exist", dir),
			})
		}
	}

	return errs
}
