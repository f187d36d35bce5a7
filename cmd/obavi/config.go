package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/KilimcininKorOglu/obavi/internal/config"
)

// configCmd handles the config command and its subcommands.
func configCmd(args []string) int {
	if len(args) == 0 {
		printConfigUsage(stdout)
		return 0
	}

	switch args[0] {
	case "-h", "--help", "help":
		printConfigUsage(stdout)
		return 0
	case "validate":
		return configValidateCmd(args[1:])
	case "init":
		return configInitCmd(args[1:])
	case "show":
		return configShowCmd(args[1:])
	default:
		printError("Unknown config subcommand: %s", args[0])
		fmt.Fprintln(stderr, "Run 'obavi config help' for usage.")
		return 1
	}
}

// configValidateCmd handles the config validate subcommand.
func configValidateCmd(args []string) int {
	fs := pflag.NewFlagSet("config validate", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	configFile := fs.StringP("config", "c", "", "Path to configuration file (required)")
	help := fs.BoolP("help", "h", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help {
		fmt.Fprintf(stdout, "Validate configuration file\n\nUsage:\n  obavi config validate [options]\n\nOptions:\n%s", fs.FlagUsages())
		return 0
	}

	if *configFile == "" {
		printError("--config is required")
		return 1
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		printError("Invalid configuration: %v", err)
		return 1
	}

	if errs := config.ValidateConfig(cfg); len(errs) > 0 {
		fmt.Fprintln(stderr, "Configuration errors:")
		for _, e := range errs {
			fmt.Fprintf(stderr, "  - %s\n", e)
		}
		return 1
	}

	fmt.Fprintln(stdout, "Configuration is valid")
	return 0
}

// configInitCmd writes the default configuration to stdout.
func configInitCmd(args []string) int {
	fs := pflag.NewFlagSet("config init", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	help := fs.BoolP("help", "h", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help {
		fmt.Fprint(stdout, "Generate default configuration\n\nUsage:\n  obavi config init\n\nOutputs default configuration to stdout in YAML format.\n")
		return 0
	}

	return printConfig(config.DefaultConfig())
}

// configShowCmd prints the effective configuration, including
// environment overrides.
func configShowCmd(args []string) int {
	fs := pflag.NewFlagSet("config show", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	configFile := fs.StringP("config", "c", "", "Path to configuration file")
	help := fs.BoolP("help", "h", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help {
		fmt.Fprintf(stdout, "Show effective configuration\n\nUsage:\n  obavi config show [options]\n\nOptions:\n%s", fs.FlagUsages())
		return 0
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		printError("Failed to load config: %v", err)
		return 1
	}

	return printConfig(cfg)
}

func printConfig(cfg *config.Config) int {
	data, err := config.Marshal(cfg)
	if err != nil {
		printError("Failed to marshal config: %v", err)
		return 1
	}
	stdout.Write(data)
	return 0
}
