package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/caret/internal/renderer/core"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(term.Shutdown)
	screen.SetSize(6, 2)
	return term, screen
}

func TestTerminalSetCell(t *testing.T) {
	term, screen := newSimTerminal(t)

	style := core.DefaultStyle().WithForeground(core.ColorFromRGB(255, 0, 0)).WithAttributes(core.AttrBold)
	term.SetCell(1, 0, core.Cell{Rune: 'e', Combining: []rune{'\u0301'}, Width: 1, Style: style})
	term.Show()

	cells, w, _ := screen.GetContents()
	got := cells[0*w+1]
	if len(got.Runes) == 0 || got.Runes[0] != 'e' {
		t.Errorf("runes = %q", string(got.Runes))
	}
	fg, _, attrs := got.Style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("foreground = %v", fg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("bold attribute lost")
	}
}

func TestTerminalKeyEvents(t *testing.T) {
	term, screen := newSimTerminal(t)

	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModShift)
	for {
		ev := term.PollEvent()
		if ev.Type != EventKey {
			continue
		}
		if ev.Key != KeyLeft || !ev.Mod.Has(ModShift) {
			t.Errorf("event = %+v", ev)
		}
		break
	}
}

func TestConvertKeyRoundTrip(t *testing.T) {
	for _, k := range []Key{KeyEnter, KeyBackspace, KeyDelete, KeyCtrlA, KeyCtrlZ, KeyUp} {
		t.Run(k.String(), func(t *testing.T) {
			if got := convertKey(convertToTcellKey(k)); got != k {
				t.Errorf("round trip %s = %s", k, got)
			}
		})
	}
	if convertKey(tcell.KeyF5) != KeyNone {
		t.Error("unhandled keys should map to KeyNone")
	}
}

func TestConvertMouse(t *testing.T) {
	tests := []struct {
		mask tcell.ButtonMask
		want MouseButton
	}{
		{tcell.Button1, MouseLeft},
		{tcell.Button3, MouseRight},
		{tcell.WheelUp, MouseWheelUp},
		{tcell.ButtonNone, MouseNone},
	}
	for _, tt := range tests {
		if got := convertMouseButton(tt.mask); got != tt.want {
			t.Errorf("convertMouseButton(%v) = %v, want %v", tt.mask, got, tt.want)
		}
		if tt.want != MouseNone && convertToTcellButton(tt.want) != tt.mask {
			t.Errorf("convertToTcellButton(%v) mismatch", tt.want)
		}
	}
}
