package engine

import (
	"time"

	"github.com/dshills/caret/internal/engine/buffer"
	"github.com/dshills/caret/internal/engine/history"
)

// Default configuration values.
const (
	DefaultInactivityPeriod = history.DefaultThreshold
	DefaultHistoryLimit     = history.DefaultLimit
	DefaultScrollMargin     = 2
	DefaultCursorWidth      = 2.0
)

// Logger receives debug messages from the editor. Args are alternating
// key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Option configures an Editor during creation.
type Option func(*Editor)

// WithLogger sets the logger used for history and save events.
func WithLogger(l Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

// WithInactivityPeriod sets how long the history waits without input before
// it turns pending actions into an undo entry.
func WithInactivityPeriod(d time.Duration) Option {
	return func(e *Editor) {
		if d > 0 {
			e.inactivity = d
		}
	}
}

// WithHistoryLimit sets the maximum number of undo entries. Zero means
// unlimited.
func WithHistoryLimit(n int) Option {
	return func(e *Editor) {
		if n >= 0 {
			e.historyLimit = n
		}
	}
}

// WithScrollMargin sets how many character widths stay free at the right
// edge when the cursor is scrolled into view.
func WithScrollMargin(chars int) Option {
	return func(e *Editor) {
		if chars >= 0 {
			e.scrollMargin = chars
		}
	}
}

// WithWordHighlight enables or disables word-occurrence highlighting.
func WithWordHighlight(enabled bool) Option {
	return func(e *Editor) {
		e.wordHighlight = enabled
	}
}

// WithLineEnding sets the terminator used to join lines in Text.
func WithLineEnding(le buffer.LineEnding) Option {
	return func(e *Editor) {
		e.lineEnding = le
	}
}

// WithCursorWidth sets the pixel width of the cursor rectangle.
func WithCursorWidth(w float64) Option {
	return func(e *Editor) {
		if w > 0 {
			e.cursorWidth = w
		}
	}
}
