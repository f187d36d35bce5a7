package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/KilimcininKorOglu/obavi/internal/attrval"
	"github.com/KilimcininKorOglu/obavi/internal/change"
	"github.com/KilimcininKorOglu/obavi/internal/changeset"
	"github.com/KilimcininKorOglu/obavi/internal/config"
	"github.com/KilimcininKorOglu/obavi/internal/logging"
	"github.com/KilimcininKorOglu/obavi/internal/output"
	"github.com/KilimcininKorOglu/obavi/internal/textclass"
)

// renderFlags are the command line overrides of the render command.
type renderFlags struct {
	configFile  string
	input       string
	output      string
	format      string
	policy      string
	compression string
	logLevel    string
}

func (f *renderFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.configFile, "config", "c", "", "Path to configuration file")
	fs.StringVarP(&f.input, "input", "i", "", "Changeset file, - for stdin (overrides config)")
	fs.StringVarP(&f.output, "output", "o", "", "Output file, - for stdout (overrides config)")
	fs.StringVarP(&f.format, "format", "f", "", "Output format: review, ldif (overrides config)")
	fs.StringVarP(&f.policy, "policy", "p", "", "Text policy: utf8, ascii, junk (overrides config)")
	fs.StringVar(&f.compression, "compress", "", "Output compression: auto, none, gzip, zstd (overrides config)")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
}

// apply copies flags that were set on the command line into cfg.
func (f *renderFlags) apply(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Changed("input") {
		cfg.Input.Path = f.input
	}
	if fs.Changed("output") {
		cfg.Output.Path = f.output
	}
	if fs.Changed("format") {
		format, err := attrval.ParseFormat(f.format)
		if err != nil {
			return err
		}
		cfg.Render.Format = format
	}
	if fs.Changed("policy") {
		policy, err := textclass.ParsePolicy(f.policy)
		if err != nil {
			return err
		}
		cfg.Render.Policy = policy
	}
	if fs.Changed("compress") {
		cfg.Output.Compression = f.compression
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	return nil
}

// loadConfig loads the configuration file and applies flag overrides.
func (f *renderFlags) loadConfig(fs *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.LoadConfig(f.configFile)
	if err != nil {
		return nil, err
	}
	if err := f.apply(fs, cfg); err != nil {
		return nil, err
	}
	if errs := config.ValidateConfig(cfg); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

// renderCmd handles the render command.
func renderCmd(args []string) int {
	fs := pflag.NewFlagSet("render", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	var flags renderFlags
	flags.register(fs)
	help := fs.BoolP("help", "h", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help {
		printRenderUsage(stdout, fs.FlagUsages())
		return 0
	}

	cfg, err := flags.loadConfig(fs)
	if err != nil {
		printError("%v", err)
		return 1
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}).WithRunID(logging.GenerateRunID())
	if c, ok := logger.(io.Closer); ok {
		defer c.Close()
	}

	if err := render(cfg, logger); err != nil {
		logger.Error("render failed", "error", err)
		printError("%v", err)
		return 1
	}
	return 0
}

// render reads the configured changeset and writes it to the configured
// output. Any failure aborts the whole run.
func render(cfg *config.Config, logger logging.Logger) (err error) {
	logger = logger.WithFields(
		"format", cfg.Render.Format.String(),
		"policy", cfg.Render.Policy.String(),
	)

	cs, err := readChangeset(cfg.Input.Path)
	if err != nil {
		return err
	}
	logger.Debug("changeset loaded",
		"input", cfg.Input.Path,
		"records", len(cs.Records),
		"entries", len(cs.Entries),
	)

	compression, err := output.ParseCompression(cfg.Output.Compression, cfg.Output.Path)
	if err != nil {
		return err
	}
	w, err := openOutput(cfg.Output.Path, compression)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", change.ErrSinkWrite, cerr)
		}
	}()

	s := change.NewSerializer(cfg.Render.Policy, cfg.Render.Format)
	counts := make(map[change.Kind]int)

	for i, rec := range cs.Records {
		if err := s.Write(w, rec); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		counts[rec.Kind()]++
		logger.Debug("record written", "index", i, "kind", rec.Kind().String())
	}

	for i, e := range cs.Entries {
		if err := s.WriteEntry(w, e.Key, e.Entry); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}

	logger.Info("changeset rendered",
		"output", cfg.Output.Path,
		"compression", compression.String(),
		"add", counts[change.KindAdd],
		"delete", counts[change.KindDelete],
		"modify", counts[change.KindModify],
		"rename", counts[change.KindRename],
		"entries", len(cs.Entries),
	)
	return nil
}

// readChangeset decodes the changeset at path ("-" reads stdin).
func readChangeset(path string) (*changeset.Changeset, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return changeset.Decode(r)
}

// openOutput opens the render sink. "-" writes to stdout.
func openOutput(path string, c output.Compression) (io.WriteCloser, error) {
	if path == "-" {
		return output.Wrap(output.NopCloser(stdout), c)
	}
	return output.Open(path, c)
}
