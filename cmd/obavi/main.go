// Package main provides the entry point for the obavi CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Standard streams, replaceable in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func main() {
	exitCode := run(os.Args)
	os.Exit(exitCode)
}

// run executes the CLI and returns an exit code.
// This is separated from main() to facilitate testing.
func run(args []string) int {
	if len(args) < 2 {
		printUsage(stdout)
		return 1
	}

	switch args[1] {
	case "render":
		return renderCmd(args[2:])
	case "classify":
		return classifyCmd(args[2:])
	case "config":
		return configCmd(args[2:])
	case "version":
		return versionCmd(args[2:])
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		printError("Unknown command: %s", args[1])
		fmt.Fprintln(stderr, "Run 'obavi help' for usage.")
		return 1
	}
}

var errorColor = color.New(color.FgRed, color.Bold)

// printError writes an error line to stderr.
func printError(format string, args ...interface{}) {
	errorColor.Fprint(stderr, "Error: ")
	fmt.Fprintf(stderr, format+"\n", args...)
}
