// Package config provides configuration loading for obavi.
//
// # Sources
//
// Settings are resolved in this order, later sources winning:
//
//  1. DefaultConfig
//  2. a YAML file given with --config
//  3. OBAVI_* environment variables
//  4. command line flags (applied by the CLI)
//
// # File Format
//
//	render:
//	  policy: utf8      # utf8, ascii or junk
//	  format: review    # review or ldif
//	input:
//	  path: changes.yaml
//	output:
//	  path: changes.ldif.gz
//	  compression: auto # auto, none, gzip or zstd
//	logging:
//	  level: info
//	  format: text
//	  output: stderr
//
// # Environment Variables
//
//	OBAVI_RENDER_POLICY        Text policy
//	OBAVI_RENDER_FORMAT        Output format
//	OBAVI_INPUT_PATH           Changeset path
//	OBAVI_OUTPUT_PATH          Output path
//	OBAVI_OUTPUT_COMPRESSION   Output compression
//	OBAVI_LOGGING_LEVEL        Log level
//	OBAVI_LOGGING_FORMAT       Log format
//	OBAVI_LOGGING_OUTPUT       Log destination
//
// # Validation
//
//	errs := config.ValidateConfig(cfg)
//	for _, err := range errs {
//	    fmt.Println(err)
//	}
package config
