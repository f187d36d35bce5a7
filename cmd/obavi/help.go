package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage information to the given writer.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `obavi - render directory change records for review or LDIF

Usage:
  obavi <command> [options]

Commands:
  render      Render a changeset in review or LDIF format
  classify    Show how values would be encoded
  config      Configuration management
  version     Show version information

Use "obavi <command> -h" for more information about a command.
`)
}

// printRenderUsage prints the render command usage.
func printRenderUsage(w io.Writer, flags string) {
	fmt.Fprintf(w, `Render a changeset in review or LDIF format

Usage:
  obavi render [options]

Options:
%s
Environment Variables:
  OBAVI_RENDER_POLICY        Override text policy
  OBAVI_RENDER_FORMAT        Override output format
  OBAVI_INPUT_PATH           Override changeset path
  OBAVI_OUTPUT_PATH          Override output path
  OBAVI_OUTPUT_COMPRESSION   Override output compression
  OBAVI_LOGGING_LEVEL        Override log level
`, flags)
}

// printClassifyUsage prints the classify command usage.
func printClassifyUsage(w io.Writer, flags string) {
	fmt.Fprintf(w, `Show how values would be encoded

Usage:
  obavi classify [options] <value>...

Options:
%s`, flags)
}

// printConfigUsage prints the config command usage.
func printConfigUsage(w io.Writer) {
	fmt.Fprint(w, `Configuration management

Usage:
  obavi config <subcommand> [options]

Subcommands:
  validate    Validate a configuration file
  init        Print the default configuration
  show        Print the effective configuration
`)
}

// printVersionUsage prints the version command usage.
func printVersionUsage(w io.Writer) {
	fmt.Fprint(w, `Show version information

Usage:
  obavi version [options]

Options:
  --short
        Show only version number
  -h, --help
        Show this help message
`)
}
