package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events. Letters are stored
	// lower-case when Ctrl is held.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewEvent creates a key event for a special key.
func NewEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	if mods.HasCtrl() {
		r = unicode.ToLower(r)
	}
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// Ctrl returns the Ctrl+r chord.
func Ctrl(r rune) Event {
	return NewRuneEvent(r, ModCtrl)
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers
}

// String returns a canonical string representation such as "a",
// "Ctrl+s" or "Shift+Left".
func (e Event) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
		if e.Rune == ' ' {
			name = "Space"
		}
	}
	if e.Modifiers == ModNone {
		return name
	}
	return e.Modifiers.String() + "+" + name
}

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification like "a", "Enter", "Ctrl+S" or
// "Shift+Left" into an Event.
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	parts := strings.Split(spec, "+")
	keyPart := parts[len(parts)-1]
	if keyPart == "" {
		// "Ctrl++" names the plus key.
		if len(parts) >= 2 && parts[len(parts)-2] == "" {
			keyPart = "+"
			parts = parts[:len(parts)-1]
		} else {
			return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
		}
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		if p == "" {
			continue
		}
		mod := ModifierFromName(strings.TrimSpace(p))
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	if strings.EqualFold(keyPart, "space") {
		return NewRuneEvent(' ', mods), nil
	}
	if utf8.RuneCountInString(keyPart) == 1 {
		r, _ := utf8.DecodeRuneInString(keyPart)
		return NewRuneEvent(r, mods), nil
	}
	if k := KeyFromName(keyPart); k != KeyNone {
		return NewEvent(k, mods), nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// MustParse is like Parse but panics on error. It is meant for
// package-level binding tables.
func MustParse(spec string) Event {
	e, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return e
}
