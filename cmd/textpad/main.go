// Package main is the entry point for the Textpad editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/dshills/textpad/internal/app"
	"github.com/dshills/textpad/internal/config"
	"github.com/dshills/textpad/internal/i18n"
	"github.com/dshills/textpad/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, exit, code := parseFlags()
	if exit {
		return code
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(term); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		for range signals {
			application.RequestQuit()
		}
	}()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// parseFlags reads the command line. exit is set when the process should
// stop with code without starting the editor.
func parseFlags() (opts app.Options, exit bool, code int) {
	var (
		showVersion bool
		writeConfig bool
		noClipboard bool
		noWatch     bool
	)

	flag.StringVar(&opts.ConfigPath, "config", defaultConfigPath(), "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", defaultConfigPath(), "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")
	flag.BoolVar(&opts.ReadOnly, "readonly", false, "Open the file read-only")
	flag.BoolVar(&opts.ReadOnly, "R", false, "Open the file read-only (shorthand)")
	flag.BoolVar(&noClipboard, "no-clipboard", false, "Keep cut and paste inside the editor")
	flag.BoolVar(&noWatch, "no-watch", false, "Do not reload the configuration file when it changes")
	flag.BoolVar(&writeConfig, "write-config", false, "Write the default configuration to -config and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Textpad - a plain text editor for the terminal\n\n")
		fmt.Fprintf(os.Stderr, "Usage: textpad [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nLocales: %s\n", strings.Join(i18n.Available(), ", "))
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  textpad                 Open an empty document\n")
		fmt.Fprintf(os.Stderr, "  textpad notes.txt       Open a file, or name a new one\n")
		fmt.Fprintf(os.Stderr, "  textpad -R notes.txt    Open a file read-only\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Textpad %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return opts, true, 0
	}

	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		return opts, true, 2
	}

	if writeConfig {
		if err := writeDefaultConfig(opts.ConfigPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return opts, true, 1
		}
		fmt.Printf("Wrote %s\n", opts.ConfigPath)
		return opts, true, 0
	}

	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Warning: only the first file is opened\n")
	}
	opts.Files = flag.Args()
	opts.Version = version
	opts.SystemClipboard = !noClipboard
	opts.WatchConfig = !noWatch
	return opts, false, 0
}

// defaultConfigPath returns config.toml in the user configuration
// directory, or "" when there is none.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "textpad", "config.toml")
}

func writeDefaultConfig(path string) error {
	if path == "" {
		return fmt.Errorf("no configuration path")
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return config.Default().WriteFile(path)
}
