// Package main is the entry point for the Scribe editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dshills/scribe/internal/app"
	"github.com/dshills/scribe/internal/config"
	"github.com/dshills/scribe/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = app.DefaultVersion
	commit  = "unknown"
	date    = "unknown"
)

// cliOptions holds the parsed command line.
type cliOptions struct {
	configPath  string
	tabStop     int
	logFile     string
	logLevel    string
	showVersion bool
	showHelp    bool
	filename    string

	// set records which flags were given explicitly; only those override
	// the configuration.
	set map[string]bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "Scribe %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: configuration: %v\n", err)
		return 1
	}

	logging := cfg.Logging()
	logger, closer, err := app.OpenLogFile(logging.File, app.ParseLogLevel(logging.Level))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()

	if f := cfg.LoadedFile(); f != "" {
		logger.Info("loaded config %s", f)
	}

	termName := cfg.Terminal().Term
	if termName == "" {
		termName = os.Getenv("TERM")
	}
	caps, err := backend.LookupCapabilities(termName)
	if err != nil {
		logger.Warn("%v; using VT100 sequences", err)
	}

	application, err := app.New(app.Options{
		Filename: opts.filename,
		Config:   cfg,
		Backend:  backend.NewTerminal(os.Stdin, os.Stdout, caps),
		Logger:   logger,
		Version:  version,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	if err := application.Run(context.Background()); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions

	fs := flag.NewFlagSet("scribe", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.IntVar(&opts.tabStop, "tab-stop", config.DefaultTabStop, "Tab stop width")
	fs.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	fs.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&opts.showHelp, "help", false, "Show help message")
	fs.BoolVar(&opts.showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Scribe - a small terminal text editor\n\n")
		fmt.Fprintf(out, "Usage: scribe [options] [file]\n\n")
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  scribe                      Open with an empty buffer\n")
		fmt.Fprintf(out, "  scribe notes.txt            Open or create a file\n")
		fmt.Fprintf(out, "  scribe --tab-stop 4 main.c  Expand tabs to 4 columns\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.showHelp {
		fs.Usage()
		return opts, flag.ErrHelp
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.filename = fs.Arg(0)
	default:
		return opts, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}

	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})
	return opts, nil
}

// loadConfig loads defaults, the config file and the environment, then
// applies explicitly given flags on top.
func loadConfig(opts cliOptions) (*config.Config, error) {
	var cfgOpts []config.Option
	if opts.configPath != "" {
		cfgOpts = append(cfgOpts, config.WithConfigFile(opts.configPath))
	}
	cfg := config.New(cfgOpts...)
	if err := cfg.Load(context.Background()); err != nil {
		return nil, err
	}

	overrides := []struct {
		flag  string
		path  string
		value any
	}{
		{"tab-stop", "editor.tab_stop", opts.tabStop},
		{"log-file", "log.file", opts.logFile},
		{"log-level", "log.level", opts.logLevel},
	}
	for _, o := range overrides {
		if !opts.set[o.flag] {
			continue
		}
		if err := cfg.Set(o.path, o.value); err != nil {
			return nil, fmt.Errorf("--%s: %w", o.flag, err)
		}
	}
	return cfg, nil
}
