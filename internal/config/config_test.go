package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// noEnv isolates tests from the process environment.
var noEnv = WithEnviron([]string{})

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	if got := cfg.Editor.InactivityPeriod.D(); got != 2*time.Second {
		t.Errorf("InactivityPeriod = %v, want 2s", got)
	}
	if cfg.Editor.HistoryLimit != 1000 {
		t.Errorf("HistoryLimit = %d, want 1000", cfg.Editor.HistoryLimit)
	}
	if got := cfg.View.FrameInterval.D(); got != 16*time.Millisecond {
		t.Errorf("FrameInterval = %v, want 16ms", got)
	}
	if cfg.View.LineHeight != 1 || cfg.View.CharWidth != 1 {
		t.Errorf("cell size = %vx%v, want 1x1", cfg.View.CharWidth, cfg.View.LineHeight)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"), noEnv)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Editor.HistoryLimit != Default().Editor.HistoryLimit {
		t.Errorf("HistoryLimit = %d, want default", cfg.Editor.HistoryLimit)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("", noEnv)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.View.Gutter {
		t.Error("Gutter = false, want default true")
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
[editor]
inactivity_period = "500ms"
history_limit = 50

[view]
line_height = 2
char_width = 1.5
gutter = false

[log]
level = "debug"
`)

	cfg, err := Load(path, noEnv)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.Editor.InactivityPeriod.D(); got != 500*time.Millisecond {
		t.Errorf("InactivityPeriod = %v, want 500ms", got)
	}
	if cfg.Editor.HistoryLimit != 50 {
		t.Errorf("HistoryLimit = %d, want 50", cfg.Editor.HistoryLimit)
	}
	if cfg.View.LineHeight != 2 {
		t.Errorf("LineHeight = %v, want 2", cfg.View.LineHeight)
	}
	if cfg.View.CharWidth != 1.5 {
		t.Errorf("CharWidth = %v, want 1.5", cfg.View.CharWidth)
	}
	if cfg.View.Gutter {
		t.Error("Gutter = true, want false")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}

	// Settings absent from the file keep their defaults.
	if !cfg.Editor.WordHighlight {
		t.Error("WordHighlight = false, want default true")
	}
	if got := cfg.View.FrameInterval.D(); got != 16*time.Millisecond {
		t.Errorf("FrameInterval = %v, want default 16ms", got)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[editor]
history_limit = 50
inactivity_period = "500ms"
`)

	cfg, err := Load(path, WithEnviron([]string{
		"CARET_EDITOR_HISTORY_LIMIT=10",
		"CARET_EDITOR_INACTIVITY_PERIOD=1s",
		"CARET_LOG_LEVEL=warn",
		"CARET_UNKNOWN_SETTING=ignored",
		"HOME=/home/user",
	}))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Editor.HistoryLimit != 10 {
		t.Errorf("HistoryLimit = %d, want 10", cfg.Editor.HistoryLimit)
	}
	if got := cfg.Editor.InactivityPeriod.D(); got != time.Second {
		t.Errorf("InactivityPeriod = %v, want 1s", got)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoad_OverridesWin(t *testing.T) {
	path := writeConfig(t, "[log]\nlevel = \"warn\"\n")
	env := WithEnviron([]string{"CARET_LOG_LEVEL=error"})
	flags := WithOverrides(func(c *Config) { c.Log.Level = "debug" })

	cfg, err := Load(path, env, flags)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}

	bad := WithOverrides(func(c *Config) { c.Log.Level = "loud" })
	if _, err := Load(path, noEnv, bad); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("Load() error = %v, want ErrValidationFailed", err)
	}
}

func TestLoad_EnvPrefix(t *testing.T) {
	cfg, err := Load("", WithEnvPrefix("TEST_"), WithEnviron([]string{
		"TEST_VIEW_SCROLL_MARGIN_CHARS=5",
		"CARET_VIEW_SCROLL_MARGIN_CHARS=9",
	}))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.View.ScrollMarginChars != 5 {
		t.Errorf("ScrollMarginChars = %d, want 5", cfg.View.ScrollMarginChars)
	}
}

func TestLoad_UnknownSetting(t *testing.T) {
	path := writeConfig(t, `
[editor]
tab_size = 4
`)

	_, err := Load(path, noEnv)
	if err == nil {
		t.Fatal("Load() should reject unknown settings")
	}
	if !errors.Is(err, ErrUnknownSetting) {
		t.Errorf("error %v should match ErrUnknownSetting", err)
	}
	if !strings.Contains(err.Error(), "tab_size") {
		t.Errorf("error %q should name the setting", err)
	}
}

func TestLoad_ParseError(t *testing.T) {
	path := writeConfig(t, "[editor\nhistory_limit = 1\n")

	_, err := Load(path, noEnv)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}
	if pe.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", pe.Path, path)
	}
}

func TestLoad_BadDuration(t *testing.T) {
	path := writeConfig(t, `
[view]
frame_interval = "soon"
`)

	_, err := Load(path, noEnv)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Load() error = %v, want ErrTypeMismatch", err)
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	path := writeConfig(t, `
[view]
line_height = 0
`)

	_, err := Load(path, noEnv)
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("Load() error = %v, want ErrValidationFailed", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error %v should contain a *ValidationError", err)
	}
	if ve.Path != "view.line_height" {
		t.Errorf("ValidationError.Path = %q, want view.line_height", ve.Path)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		path   string
		code   ValidationErrorCode
	}{
		{"zero inactivity", func(c *Config) { c.Editor.InactivityPeriod = 0 }, "editor.inactivity_period", ErrCodeOutOfRange},
		{"negative history", func(c *Config) { c.Editor.HistoryLimit = -1 }, "editor.history_limit", ErrCodeOutOfRange},
		{"zero line height", func(c *Config) { c.View.LineHeight = 0 }, "view.line_height", ErrCodeOutOfRange},
		{"negative char width", func(c *Config) { c.View.CharWidth = -2 }, "view.char_width", ErrCodeOutOfRange},
		{"zero frame interval", func(c *Config) { c.View.FrameInterval = 0 }, "view.frame_interval", ErrCodeOutOfRange},
		{"negative margin", func(c *Config) { c.View.ScrollMarginChars = -1 }, "view.scroll_margin_chars", ErrCodeOutOfRange},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, "log.level", ErrCodeInvalidEnum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if ve.Path != tt.path {
				t.Errorf("Path = %q, want %q", ve.Path, tt.path)
			}
			if ve.Code != tt.code {
				t.Errorf("Code = %v, want %v", ve.Code, tt.code)
			}
		})
	}
}

func TestConfig_ValidateCollectsAll(t *testing.T) {
	cfg := Default()
	cfg.View.LineHeight = 0
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	msg := err.Error()
	for _, want := range []string{"view.line_height", "log.level"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Validate() error %q should mention %s", msg, want)
		}
	}
}

func TestDuration_Text(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("1m30s")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if d.D() != 90*time.Second {
		t.Errorf("D() = %v, want 1m30s", d.D())
	}

	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "1m30s" {
		t.Errorf("MarshalText() = %q, want 1m30s", text)
	}

	if err := d.UnmarshalText([]byte("later")); err == nil {
		t.Error("UnmarshalText() should reject an invalid duration")
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got, want := DefaultPath(), filepath.Join("/xdg", "caret", "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestValidationErrorCode_String(t *testing.T) {
	tests := []struct {
		code ValidationErrorCode
		want string
	}{
		{ErrCodeUnknownSetting, "unknown_setting"},
		{ErrCodeTypeMismatch, "type_mismatch"},
		{ErrCodeOutOfRange, "out_of_range"},
		{ErrCodeInvalidEnum, "invalid_enum"},
		{ValidationErrorCode(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestReloader(t *testing.T) {
	path := writeConfig(t, "[editor]\nhistory_limit = 50\n")

	initial, err := Load(path, noEnv)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	type result struct {
		cfg *Config
		err error
	}
	results := make(chan result, 8)

	r, err := NewReloader(path, initial, 20*time.Millisecond, func(cfg *Config, err error) {
		results <- result{cfg, err}
	}, noEnv)
	if err != nil {
		t.Fatalf("NewReloader() error = %v", err)
	}
	defer r.Close()

	if r.Current() != initial {
		t.Error("Current() should start with the initial configuration")
	}

	if err := os.WriteFile(path, []byte("[editor]\nhistory_limit = 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case res := <-results:
		if res.err != nil {
			t.Fatalf("reload error = %v", res.err)
		}
		if res.cfg.Editor.HistoryLimit != 5 {
			t.Errorf("reloaded HistoryLimit = %d, want 5", res.cfg.Editor.HistoryLimit)
		}
		if r.Current() != res.cfg {
			t.Error("Current() should return the reloaded configuration")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}
