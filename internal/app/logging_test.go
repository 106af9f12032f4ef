package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.level.String()
		if result != tt.expected {
			t.Errorf("LogLevel(%d).String() = '%s', expected '%s'", tt.level, result, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"Error", LogLevelError},
		{"unknown", LogLevelInfo},
		{"", LogLevelInfo},
	}

	for _, tt := range tests {
		result := ParseLogLevel(tt.input)
		if result != tt.expected {
			t.Errorf("ParseLogLevel('%s') = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf, Prefix: "caret"})

	logger.Info("document saved", "path", "/tmp/a.txt", "added", 3)

	line := buf.String()
	for _, want := range []string{"[INFO]", "caret: document saved", "{path=/tmp/a.txt, added=3}"} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q should contain %q", line, want)
		}
	}
	if !strings.HasSuffix(line, "\n") {
		t.Error("log line should end with a newline")
	}
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf})

	logger.Debug("debug")
	logger.Info("info")
	if buf.Len() != 0 {
		t.Errorf("messages below the level should be dropped, got %q", buf.String())
	}

	logger.Warn("warn")
	logger.Error("error")
	if got := strings.Count(buf.String(), "\n"); got != 2 {
		t.Errorf("logged %d lines, want 2", got)
	}
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})

	child := logger.WithComponent("engine").WithField("document", "abc")
	child.Debug("undo", "line", 4)

	line := buf.String()
	if !strings.Contains(line, "{component=engine, document=abc, line=4}") {
		t.Errorf("log line %q should list sorted fields then arguments", line)
	}

	buf.Reset()
	logger.Info("plain")
	if strings.Contains(buf.String(), "component") {
		t.Error("parent logger should not gain the child's fields")
	}
}

func TestLogger_SetLevelShared(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})
	child := logger.WithComponent("engine")

	logger.SetLevel(LogLevelDebug)
	child.Debug("visible")

	if !strings.Contains(buf.String(), "visible") {
		t.Error("derived logger should follow the parent's level")
	}
	if child.Level() != LogLevelDebug {
		t.Errorf("child.Level() = %v, want DEBUG", child.Level())
	}
}

func TestLogger_OddArguments(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})

	logger.Info("odd", "key", "value", "dangling")

	if !strings.Contains(buf.String(), "!BADKEY=dangling") {
		t.Errorf("log line %q should report the dangling argument", buf.String())
	}
}

func TestNullLogger(t *testing.T) {
	logger := NullLogger()
	logger.Error("nothing")
	logger.WithComponent("x").Info("nothing")
}
