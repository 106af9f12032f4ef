package input

import (
	"fmt"

	"github.com/dshills/caret/internal/input/key"
	"github.com/dshills/caret/internal/input/mouse"
	"github.com/dshills/caret/internal/renderer/core"
)

// Kind identifies which field of an Event is set.
type Kind uint8

const (
	KindKey Kind = iota
	KindText
	KindPointer
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindText:
		return "text"
	default:
		return "pointer"
	}
}

// Pointer is a mouse gesture at a pixel position.
type Pointer struct {
	Action    mouse.Action
	Pos       core.Point
	Modifiers key.Modifier

	// Lines and Chars are the wheel distance for ActionWheel.
	Lines, Chars int
}

// Event is one input event for the editing engine.
type Event struct {
	Kind    Kind
	Key     key.Event
	Text    string
	Pointer Pointer
}

// KeyEvent wraps a key press.
func KeyEvent(e key.Event) Event {
	return Event{Kind: KindKey, Key: e}
}

// TextEvent wraps text to insert.
func TextEvent(s string) Event {
	return Event{Kind: KindText, Text: s}
}

// PointerEvent wraps a pointer gesture.
func PointerEvent(action mouse.Action, pos core.Point) Event {
	return Event{Kind: KindPointer, Pointer: Pointer{Action: action, Pos: pos}}
}

// String returns a short description for logging.
func (e Event) String() string {
	switch e.Kind {
	case KindKey:
		return "key " + e.Key.String()
	case KindText:
		return fmt.Sprintf("text %q", e.Text)
	default:
		return fmt.Sprintf("%s %s", e.Pointer.Action, e.Pointer.Pos)
	}
}
