package input

import (
	"strings"
	"time"

	"github.com/dshills/caret/internal/input/key"
	"github.com/dshills/caret/internal/input/mouse"
	"github.com/dshills/caret/internal/renderer/backend"
	"github.com/dshills/caret/internal/renderer/core"
)

// Config configures the input handler.
type Config struct {
	// Mouse configures gesture recognition.
	Mouse mouse.Config

	// CharWidth and LineHeight are the pixel size of one terminal cell.
	CharWidth  float64
	LineHeight float64
}

// DefaultConfig returns a configuration with one pixel per cell.
func DefaultConfig() Config {
	return Config{
		Mouse:      mouse.DefaultConfig(),
		CharWidth:  1,
		LineHeight: 1,
	}
}

// Handler converts backend events into input events. It is not safe for
// concurrent use.
type Handler struct {
	config Config
	mouse  *mouse.Tracker

	pasting bool
	paste   strings.Builder
}

// NewHandler creates a new handler.
func NewHandler(config Config) *Handler {
	if config.CharWidth <= 0 {
		config.CharWidth = 1
	}
	if config.LineHeight <= 0 {
		config.LineHeight = 1
	}
	return &Handler{
		config: config,
		mouse:  mouse.NewTracker(config.Mouse),
	}
}

// SetCellSize updates the pixel size of a terminal cell.
func (h *Handler) SetCellSize(charWidth, lineHeight float64) {
	if charWidth > 0 {
		h.config.CharWidth = charWidth
	}
	if lineHeight > 0 {
		h.config.LineHeight = lineHeight
	}
}

// Pasting reports whether a bracketed paste is being collected.
func (h *Handler) Pasting() bool {
	return h.pasting
}

// Handle converts one backend event. Resize and unknown events produce
// nothing; the host reads the new size from the backend.
func (h *Handler) Handle(ev backend.Event, now time.Time) []Event {
	switch ev.Type {
	case backend.EventKey:
		return h.handleKey(ev)
	case backend.EventMouse:
		return h.handleMouse(ev, now)
	case backend.EventPaste:
		return h.handlePaste(ev)
	}
	return nil
}

func (h *Handler) handlePaste(ev backend.Event) []Event {
	if ev.PasteStart {
		h.pasting = true
		h.paste.Reset()
		return nil
	}
	h.pasting = false
	if h.paste.Len() == 0 {
		return nil
	}
	text := h.paste.String()
	h.paste.Reset()
	return []Event{TextEvent(text)}
}

func (h *Handler) handleKey(ev backend.Event) []Event {
	if h.pasting {
		switch ev.Key {
		case backend.KeyRune:
			h.paste.WriteRune(ev.Rune)
		case backend.KeyEnter:
			h.paste.WriteByte('\n')
		case backend.KeyTab:
			h.paste.WriteByte('\t')
		}
		return nil
	}

	mods := convertMod(ev.Mod)
	switch ev.Key {
	case backend.KeyRune:
		if mods&(key.ModCtrl|key.ModAlt|key.ModMeta) != 0 {
			return []Event{KeyEvent(key.NewRuneEvent(ev.Rune, mods))}
		}
		return []Event{TextEvent(string(ev.Rune))}
	case backend.KeyTab:
		return []Event{TextEvent("\t")}
	case backend.KeyCtrlA:
		return []Event{KeyEvent(key.Ctrl('a'))}
	case backend.KeyCtrlC:
		return []Event{KeyEvent(key.Ctrl('c'))}
	case backend.KeyCtrlQ:
		return []Event{KeyEvent(key.Ctrl('q'))}
	case backend.KeyCtrlS:
		return []Event{KeyEvent(key.Ctrl('s'))}
	case backend.KeyCtrlV:
		return []Event{KeyEvent(key.Ctrl('v'))}
	case backend.KeyCtrlX:
		return []Event{KeyEvent(key.Ctrl('x'))}
	case backend.KeyCtrlZ:
		return []Event{KeyEvent(key.Ctrl('z'))}
	}

	if k, ok := specialKeys[ev.Key]; ok {
		return []Event{KeyEvent(key.NewEvent(k, mods))}
	}
	return nil
}

var specialKeys = map[backend.Key]key.Key{
	backend.KeyEscape:    key.KeyEscape,
	backend.KeyEnter:     key.KeyEnter,
	backend.KeyBackspace: key.KeyBackspace,
	backend.KeyDelete:    key.KeyDelete,
	backend.KeyHome:      key.KeyHome,
	backend.KeyEnd:       key.KeyEnd,
	backend.KeyPageUp:    key.KeyPageUp,
	backend.KeyPageDown:  key.KeyPageDown,
	backend.KeyUp:        key.KeyUp,
	backend.KeyDown:      key.KeyDown,
	backend.KeyLeft:      key.KeyLeft,
	backend.KeyRight:     key.KeyRight,
}

func convertMod(m backend.ModMask) key.Modifier {
	var mods key.Modifier
	if m.Has(backend.ModShift) {
		mods |= key.ModShift
	}
	if m.Has(backend.ModCtrl) {
		mods |= key.ModCtrl
	}
	if m.Has(backend.ModAlt) {
		mods |= key.ModAlt
	}
	if m.Has(backend.ModMeta) {
		mods |= key.ModMeta
	}
	return mods
}

var mouseButtons = map[backend.MouseButton]mouse.Button{
	backend.MouseNone:       mouse.ButtonNone,
	backend.MouseLeft:       mouse.ButtonLeft,
	backend.MouseMiddle:     mouse.ButtonMiddle,
	backend.MouseRight:      mouse.ButtonRight,
	backend.MouseWheelUp:    mouse.ButtonScrollUp,
	backend.MouseWheelDown:  mouse.ButtonScrollDown,
	backend.MouseWheelLeft:  mouse.ButtonScrollLeft,
	backend.MouseWheelRight: mouse.ButtonScrollRight,
}

func (h *Handler) handleMouse(ev backend.Event, now time.Time) []Event {
	gestures := h.mouse.Feed(mouse.Report{
		Position:  mouse.Position{X: ev.MouseX, Y: ev.MouseY},
		Button:    mouseButtons[ev.MouseButton],
		Modifiers: convertMod(ev.Mod),
		Timestamp: now,
	})

	out := make([]Event, 0, len(gestures))
	for _, g := range gestures {
		out = append(out, Event{
			Kind: KindPointer,
			Pointer: Pointer{
				Action:    g.Action,
				Pos:       core.Pt(float64(g.Position.X)*h.config.CharWidth, float64(g.Position.Y)*h.config.LineHeight),
				Modifiers: g.Modifiers,
				Lines:     g.DY,
				Chars:     g.DX,
			},
		})
	}
	return out
}
