package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KilimcininKorOglu/obavi/internal/attrval"
	"github.com/KilimcininKorOglu/obavi/internal/textclass"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, textclass.PolicyUTF8, config.Render.Policy)
	assert.Equal(t, attrval.FormatReview, config.Render.Format)
	assert.Equal(t, "-", config.Input.Path)
	assert.Equal(t, "-", config.Output.Path)
	assert.Equal(t, "auto", config.Output.Compression)
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "stderr", config.Logging.Output)
	assert.Empty(t, ValidateConfig(config))
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
render:
  policy: ascii
  format: ldif
output:
  path: /tmp/out.ldif
  compression: gzip
logging:
  level: debug
`)

	config, err := ParseConfig(data)
	require.NoError(t, err)

	assert.Equal(t, textclass.PolicyASCII, config.Render.Policy)
	assert.Equal(t, attrval.FormatLDIF, config.Render.Format)
	assert.Equal(t, "/tmp/out.ldif", config.Output.Path)
	assert.Equal(t, "gzip", config.Output.Compression)
	assert.Equal(t, "debug", config.Logging.Level)
	// Untouched keys keep their defaults.
	assert.Equal(t, "-", config.Input.Path)
	assert.Equal(t, "text", config.Logging.Format)
}

func TestParseConfigEmpty(t *testing.T) {
	config, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown policy", "render:\n  policy: latin1\n"},
		{"unknown format", "render:\n  format: dsml\n"},
		{"unknown key", "render:\n  wrap: 76\n"},
		{"broken yaml", "render: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidYAML)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	config := DefaultConfig()
	err := ApplyEnv(config, map[string]string{
		"OBAVI_RENDER_POLICY":      "junk",
		"OBAVI_RENDER_FORMAT":      "ldif",
		"OBAVI_OUTPUT_COMPRESSION": "zstd",
		"OBAVI_LOGGING_LEVEL":      "warn",
		"RENDER_POLICY":            "ascii",
	})
	require.NoError(t, err)

	assert.Equal(t, textclass.PolicyJunk, config.Render.Policy)
	assert.Equal(t, attrval.FormatLDIF, config.Render.Format)
	assert.Equal(t, "zstd", config.Output.Compression)
	assert.Equal(t, "warn", config.Logging.Level)
	assert.Equal(t, "-", config.Input.Path)
}

func TestApplyEnvInvalid(t *testing.T) {
	config := DefaultConfig()
	err := ApplyEnv(config, map[string]string{"OBAVI_RENDER_POLICY": "ebcdic"})
	assert.ErrorIs(t, err, ErrInvalidEnv)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "obavi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render:\n  format: ldif\n"), 0o600))

	t.Setenv("OBAVI_RENDER_POLICY", "ascii")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, attrval.FormatLDIF, config.Render.Format)
	assert.Equal(t, textclass.PolicyASCII, config.Render.Policy)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, ErrFileNotFound)

	config, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, textclass.PolicyASCII, config.Render.Policy)
}

func TestMarshalRoundTrip(t *testing.T) {
	config := DefaultConfig()
	config.Render.Format = attrval.FormatLDIF

	data, err := Marshal(config)
	require.NoError(t, err)
	assert.Contains(t, string(data), "format: ldif")

	parsed, err := ParseConfig(data)
	require.NoError(t, err)
	assert.Equal(t, config, parsed)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"empty input", func(c *Config) { c.Input.Path = "" }, "input.path"},
		{"empty output", func(c *Config) { c.Output.Path = "" }, "output.path"},
		{"bad compression", func(c *Config) { c.Output.Compression = "lzma" }, "output.compression"},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"relative log file", func(c *Config) { c.Logging.Output = "obavi.log" }, "logging.output"},
		{"missing log dir", func(c *Config) { c.Logging.Output = "/nonexistent/dir/obavi.log" }, "logging.output"},
		{"logs share stdout with records", func(c *Config) { c.Logging.Output = "stdout" }, "logging.output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(config)

			errs := ValidateConfig(config)
			require.Len(t, errs, 1)
			var verr ValidationError
			require.ErrorAs(t, errs[0], &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidateConfigLogsToStdoutWithFileOutput(t *testing.T) {
	config := DefaultConfig()
	config.Output.Path = "/tmp/out.ldif"
	config.Logging.Output = "stdout"

	assert.Empty(t, ValidateConfig(config))
}
