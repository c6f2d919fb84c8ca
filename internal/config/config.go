package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/textpad/internal/fileio"
	"github.com/dshills/textpad/internal/statusbar"
)

// Config is the complete application configuration.
type Config struct {
	AppName        string `toml:"app_name"`
	Locale         string `toml:"locale"`
	LocalesDir     string `toml:"locales_dir"`
	DateTimeFormat string `toml:"datetime_format"`
	MenuBar        string `toml:"menubar"`

	File   FileConfig   `toml:"file"`
	Zoom   ZoomConfig   `toml:"zoom"`
	Editor EditorConfig `toml:"editor"`
	Theme  ThemeConfig  `toml:"theme"`
	Log    LogConfig    `toml:"log"`

	// path is the file the configuration was loaded from.
	path string
}

// FileConfig holds defaults for new and saved documents.
type FileConfig struct {
	// Name is the display name of an unsaved document.
	Name string `toml:"name"`
	// Extension is appended to save paths that have none.
	Extension string `toml:"extension"`
	// Encoding is the character encoding for reading and writing.
	Encoding string `toml:"encoding"`
	// Directory is the initial directory for open and save prompts.
	Directory string `toml:"directory"`
}

// ZoomConfig holds zoom bounds in percent.
type ZoomConfig struct {
	Min     int `toml:"min"`
	Max     int `toml:"max"`
	Factor  int `toml:"factor"`
	Restore int `toml:"restore"`
}

// EditorConfig holds editor view settings.
type EditorConfig struct {
	TabWidth  int  `toml:"tab_width"`
	WordWrap  bool `toml:"word_wrap"`
	StatusBar bool `toml:"status_bar"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Path is the log file. Empty disables logging.
	Path string `toml:"path"`
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		AppName:        "Textpad",
		Locale:         "en",
		LocalesDir:     "locales",
		DateTimeFormat: "%H:%M %d/%m/%Y",
		File: FileConfig{
			Name:      "Untitled",
			Extension: ".txt",
			Encoding:  fileio.DefaultEncoding,
		},
		Zoom: ZoomConfig{
			Min:     statusbar.DefaultZoomMin,
			Max:     statusbar.DefaultZoomMax,
			Factor:  statusbar.DefaultZoomStep,
			Restore: statusbar.DefaultZoomRestore,
		},
		Editor: EditorConfig{
			TabWidth:  4,
			StatusBar: true,
		},
		Theme: DefaultTheme(),
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads and validates the file at path.
// A missing file is not an error: the defaults are returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			cfg.path = path
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg, err := Parse(path, data)
	if err != nil {
		return nil, err
	}
	cfg.path = path
	return cfg, nil
}

// Parse decodes TOML data over the defaults and validates the result.
func Parse(source string, data []byte) (*Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, newParseError(source, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newParseError(source string, err error) *ParseError {
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}

	var decodeErr *toml.DecodeError
	var strictErr *toml.StrictMissingError
	switch {
	case errors.As(err, &decodeErr):
		pe.Line, pe.Column = decodeErr.Position()
	case errors.As(err, &strictErr):
		if len(strictErr.Errors) > 0 {
			first := strictErr.Errors[0]
			pe.Line, pe.Column = first.Position()
			pe.Message = "unknown key " + strings.Join(first.Key(), ".")
		}
	}
	return pe
}

// Validate checks every setting and reports all failures.
func (c *Config) Validate() error {
	var errs []error
	add := func(path, msg string, value any, err error) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value, Err: err})
	}

	if strings.TrimSpace(c.AppName) == "" {
		add("app_name", "must not be empty", c.AppName, nil)
	}
	if _, err := statusbar.NewZoom(c.Zoom.Min, c.Zoom.Max, c.Zoom.Factor, c.Zoom.Restore); err != nil {
		add("zoom", err.Error(), c.Zoom, err)
	}
	if _, err := fileio.LookupEncoding(c.File.Encoding); err != nil {
		add("file.encoding", "unknown encoding", c.File.Encoding, err)
	}
	if c.File.Extension != "" && !strings.HasPrefix(c.File.Extension, ".") {
		add("file.extension", "must start with a dot", c.File.Extension, nil)
	}
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		add("editor.tab_width", "must be between 1 and 16", c.Editor.TabWidth, nil)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		add("log.level", "must be debug, info, warn or error", c.Log.Level, nil)
	}
	if err := c.Theme.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string {
	return c.path
}

// LocalesPath resolves LocalesDir relative to the configuration file.
func (c *Config) LocalesPath() string {
	return c.resolve(c.LocalesDir)
}

// MenuBarPath resolves MenuBar relative to the configuration file.
// Empty means the built-in menu.
func (c *Config) MenuBarPath() string {
	return c.resolve(c.MenuBar)
}

func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.path == "" {
		return p
	}
	return filepath.Join(filepath.Dir(c.path), p)
}

// WriteFile writes the configuration as TOML to path.
func (c *Config) WriteFile(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
