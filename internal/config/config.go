package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/caret/internal/config/loader"
)

// Config holds every caret setting.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	View   ViewConfig   `toml:"view"`
	Log    LogConfig    `toml:"log"`
}

// EditorConfig holds editing behaviour settings.
type EditorConfig struct {
	// InactivityPeriod closes an undo batch after this much idle time.
	InactivityPeriod Duration `toml:"inactivity_period"`

	// HistoryLimit caps the number of undo entries. Zero means unlimited.
	HistoryLimit int `toml:"history_limit"`

	// WordHighlight enables highlighting of double-clicked word occurrences.
	WordHighlight bool `toml:"word_highlight"`
}

// ViewConfig holds viewport and frame loop settings.
type ViewConfig struct {
	LineHeight        float64  `toml:"line_height"`
	CharWidth         float64  `toml:"char_width"`
	Gutter            bool     `toml:"gutter"`
	FrameInterval     Duration `toml:"frame_interval"`
	ScrollMarginChars int      `toml:"scroll_margin_chars"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level"`

	// File redirects log output. Empty means stderr.
	File string `toml:"file"`
}

// Duration is a time.Duration written as a string such as "2s" or "16ms".
type Duration time.Duration

// D returns the value as a time.Duration.
func (d Duration) D() time.Duration {
	return time.Duration(d)
}

// String returns the duration formatted by time.Duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			InactivityPeriod: Duration(2 * time.Second),
			HistoryLimit:     1000,
			WordHighlight:    true,
		},
		View: ViewConfig{
			LineHeight:        1,
			CharWidth:         1,
			Gutter:            true,
			FrameInterval:     Duration(16 * time.Millisecond),
			ScrollMarginChars: 2,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the user configuration file path.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "caret", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "caret", "config.toml")
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	fs        loader.FileSystem
	environ   []string
	prefix    string
	overrides []func(*Config)
}

// WithFileSystem reads the configuration file through fsys.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(o *loadOptions) {
		o.fs = fsys
	}
}

// WithEnviron replaces the process environment with entries in
// os.Environ format.
func WithEnviron(environ []string) Option {
	return func(o *loadOptions) {
		o.environ = environ
	}
}

// WithEnvPrefix changes the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(o *loadOptions) {
		o.prefix = prefix
	}
}

// WithOverrides applies fn after the file and the environment, so its
// settings win over both. Command-line flags use it, and a reload that
// passes the same options keeps them.
func WithOverrides(fn func(*Config)) Option {
	return func(o *loadOptions) {
		if fn != nil {
			o.overrides = append(o.overrides, fn)
		}
	}
}

// Load builds a Config from the defaults, the TOML file at path, the
// environment and any overrides, in increasing precedence. A missing file
// is not an error; an empty path skips the file. The result is validated.
func Load(path string, opts ...Option) (*Config, error) {
	o := loadOptions{
		fs:     loader.DefaultFS(),
		prefix: loader.DefaultEnvPrefix,
	}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := Default()

	if path != "" {
		data, err := loader.NewTOMLLoaderWithFS(o.fs, path).Load()
		if err != nil {
			return nil, err
		}
		if err := decode(cfg, path, data, true); err != nil {
			return nil, err
		}
	}

	envLoader := loader.NewEnvLoader(o.prefix)
	if o.environ != nil {
		envLoader = loader.NewEnvLoaderWithEnviron(o.prefix, o.environ)
	}
	env, err := envLoader.Load()
	if err != nil {
		return nil, err
	}
	if err := decode(cfg, "environment", env, false); err != nil {
		return nil, err
	}

	for _, fn := range o.overrides {
		fn(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode overlays the settings in data onto cfg. In strict mode settings
// that cfg does not know are rejected.
func decode(cfg *Config, source string, data map[string]any, strict bool) error {
	if len(data) == 0 {
		return nil
	}

	raw, err := toml.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding %s settings: %w", source, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(raw))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(cfg); err != nil {
		var missing *toml.StrictMissingError
		if errors.As(err, &missing) {
			errs := make([]error, 0, len(missing.Errors))
			for _, e := range missing.Errors {
				errs = append(errs, &ValidationError{
					Path:    strings.Join(e.Key(), "."),
					Message: "unknown setting in " + source,
					Code:    ErrCodeUnknownSetting,
				})
			}
			return errors.Join(errs...)
		}
		return &ValidationError{
			Path:    source,
			Message: err.Error(),
			Code:    ErrCodeTypeMismatch,
		}
	}
	return nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	add := func(path, msg string, value any, code ValidationErrorCode) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value, Code: code})
	}

	if c.Editor.InactivityPeriod <= 0 {
		add("editor.inactivity_period", "must be positive", c.Editor.InactivityPeriod, ErrCodeOutOfRange)
	}
	if c.Editor.HistoryLimit < 0 {
		add("editor.history_limit", "must not be negative", c.Editor.HistoryLimit, ErrCodeOutOfRange)
	}
	if c.View.LineHeight <= 0 {
		add("view.line_height", "must be positive", c.View.LineHeight, ErrCodeOutOfRange)
	}
	if c.View.CharWidth <= 0 {
		add("view.char_width", "must be positive", c.View.CharWidth, ErrCodeOutOfRange)
	}
	if c.View.FrameInterval <= 0 {
		add("view.frame_interval", "must be positive", c.View.FrameInterval, ErrCodeOutOfRange)
	}
	if c.View.ScrollMarginChars < 0 {
		add("view.scroll_margin_chars", "must not be negative", c.View.ScrollMarginChars, ErrCodeOutOfRange)
	}
	if _, ok := logLevels[strings.ToLower(c.Log.Level)]; !ok {
		add("log.level", "must be one of debug, info, warn, error", c.Log.Level, ErrCodeInvalidEnum)
	}

	return errors.Join(errs...)
}

var logLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}
