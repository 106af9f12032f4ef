// Package main is the entry point for the caret editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/caret/internal/app"
	"github.com/dshills/caret/internal/config"
	"github.com/dshills/caret/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type flags struct {
	configPath string
	noConfig   bool
	logLevel   string
	logFile    string
	path       string
}

func main() {
	os.Exit(run())
}

func run() int {
	f := parseFlags()

	configPath := f.configPath
	if configPath == "" && !f.noConfig {
		configPath = config.DefaultPath()
	}
	if f.noConfig {
		configPath = ""
	}

	// Flags are the top layer; config reloads reapply them.
	loadOpts := []config.Option{config.WithOverrides(f.apply)}
	cfg, err := config.Load(configPath, loadOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load configuration: %v\n", err)
		return 1
	}

	// The terminal owns stderr while running, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if cfg.Log.File != "" {
		file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
			return 1
		}
		defer file.Close()
		logOut = file
	}
	logger := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(cfg.Log.Level),
		Output: logOut,
		Prefix: "caret",
	})
	logger.Info("starting", "version", version, "commit", commit, "config", configPath)

	// Create application
	application, err := app.New(app.Options{
		Path:          f.path,
		Config:        cfg,
		ConfigPath:    configPath,
		ConfigOptions: loadOpts,
		Logger:        logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Create terminal backend
	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(term); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		<-signals
		application.Shutdown()
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		logger.Error("run failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// apply overrides the configuration with the flags that were set.
func (f flags) apply(cfg *config.Config) {
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.logFile != "" {
		cfg.Log.File = f.logFile
	}
}

func parseFlags() flags {
	var f flags
	var showVersion bool
	var showHelp bool

	flag.StringVar(&f.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&f.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&f.noConfig, "no-config", false, "Ignore the configuration file")
	flag.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&f.logFile, "log-file", "", "Write logs to this file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "caret - a small terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: caret [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+S save   Ctrl+Z undo   Ctrl+A select all\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+C copy   Ctrl+X cut    Ctrl+V paste   Ctrl+Q quit\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  caret                       Open an empty buffer\n")
		fmt.Fprintf(os.Stderr, "  caret notes.txt             Open a file\n")
		fmt.Fprintf(os.Stderr, "  caret -log-file caret.log   Write debug logs to a file\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("caret %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch flag.NArg() {
	case 0:
	case 1:
		f.path = flag.Arg(0)
	default:
		fmt.Fprintf(os.Stderr, "Error: caret edits one file at a time\n")
		flag.Usage()
		os.Exit(2)
	}

	return f
}
