package input

import (
	"testing"
	"time"

	"github.com/dshills/caret/internal/input/key"
	"github.com/dshills/caret/internal/input/mouse"
	"github.com/dshills/caret/internal/renderer/backend"
	"github.com/dshills/caret/internal/renderer/core"
)

var now = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func keyEv(k backend.Key, r rune, mod backend.ModMask) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: k, Rune: r, Mod: mod}
}

func TestHandleKeys(t *testing.T) {
	tests := []struct {
		name string
		in   backend.Event
		want Event
	}{
		{"rune", keyEv(backend.KeyRune, 'x', backend.ModNone), TextEvent("x")},
		{"shifted rune", keyEv(backend.KeyRune, 'X', backend.ModShift), TextEvent("X")},
		{"tab", keyEv(backend.KeyTab, 0, backend.ModNone), TextEvent("\t")},
		{"ctrl z", keyEv(backend.KeyCtrlZ, 0, backend.ModCtrl), KeyEvent(key.Ctrl('z'))},
		{"alt rune", keyEv(backend.KeyRune, 'f', backend.ModAlt), KeyEvent(key.NewRuneEvent('f', key.ModAlt))},
		{"shift left", keyEv(backend.KeyLeft, 0, backend.ModShift), KeyEvent(key.NewEvent(key.KeyLeft, key.ModShift))},
		{"enter", keyEv(backend.KeyEnter, 0, backend.ModNone), KeyEvent(key.NewEvent(key.KeyEnter, key.ModNone))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(DefaultConfig())
			got := h.Handle(tt.in, now)
			if len(got) != 1 {
				t.Fatalf("got %d events", len(got))
			}
			if got[0].Kind != tt.want.Kind || got[0].Text != tt.want.Text || !got[0].Key.Equals(tt.want.Key) {
				t.Errorf("got %s, want %s", got[0], tt.want)
			}
		})
	}

	h := NewHandler(DefaultConfig())
	if got := h.Handle(keyEv(backend.KeyNone, 0, backend.ModNone), now); got != nil {
		t.Errorf("unknown key produced %v", got)
	}
	if got := h.Handle(backend.Event{Type: backend.EventResize, Width: 10, Height: 5}, now); got != nil {
		t.Errorf("resize produced %v", got)
	}
}

func TestHandlePaste(t *testing.T) {
	h := NewHandler(DefaultConfig())

	var out []Event
	out = append(out, h.Handle(backend.Event{Type: backend.EventPaste, PasteStart: true}, now)...)
	if !h.Pasting() {
		t.Fatal("should be collecting paste")
	}
	for _, r := range "ab" {
		out = append(out, h.Handle(keyEv(backend.KeyRune, r, backend.ModNone), now)...)
	}
	out = append(out, h.Handle(keyEv(backend.KeyEnter, 0, backend.ModNone), now)...)
	out = append(out, h.Handle(keyEv(backend.KeyRune, 'c', backend.ModNone), now)...)
	out = append(out, h.Handle(backend.Event{Type: backend.EventPaste}, now)...)

	if len(out) != 1 || out[0].Kind != KindText || out[0].Text != "ab\nc" {
		t.Errorf("paste = %v", out)
	}
	if h.Pasting() {
		t.Error("paste should be finished")
	}
}

func TestHandleMouse(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CharWidth = 8
	cfg.LineHeight = 16
	h := NewHandler(cfg)

	press := backend.Event{Type: backend.EventMouse, MouseX: 3, MouseY: 2, MouseButton: backend.MouseLeft}
	got := h.Handle(press, now)
	if len(got) != 2 {
		t.Fatalf("press produced %d events", len(got))
	}
	if got[0].Pointer.Action != mouse.ActionClick || got[1].Pointer.Action != mouse.ActionDragStart {
		t.Errorf("press = %v", got)
	}
	if got[0].Pointer.Pos != core.Pt(24, 32) {
		t.Errorf("pos = %s, want (24,32)", got[0].Pointer.Pos)
	}

	wheel := backend.Event{Type: backend.EventMouse, MouseButton: backend.MouseWheelDown}
	h.Handle(backend.Event{Type: backend.EventMouse, MouseX: 3, MouseY: 2}, now)
	got = h.Handle(wheel, now)
	if len(got) != 1 || got[0].Pointer.Action != mouse.ActionWheel || got[0].Pointer.Lines != 3 {
		t.Errorf("wheel = %+v", got)
	}
}
