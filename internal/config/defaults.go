package config

import (
	"github.com/KilimcininKorOglu/obavi/internal/attrval"
	"github.com/KilimcininKorOglu/obavi/internal/textclass"
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Policy: textclass.PolicyUTF8,
			Format: attrval.FormatReview,
		},
		Input: InputConfig{
			Path: "-",
		},
		Output: OutputConfig{
			Path:        "-",
			Compression: "auto",
		},
		Logging: LogConfig{
			Level:  "info",
			Format: "text",
			// Standard output carries the rendered records.
			Output: "stderr",
		},
	}
}
