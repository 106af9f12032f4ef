package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", Event{Key: KeyRune, Rune: 'a'}},
		{"Enter", Event{Key: KeyEnter}},
		{"esc", Event{Key: KeyEscape}},
		{"Ctrl+S", Event{Key: KeyRune, Rune: 's', Modifiers: ModCtrl}},
		{"Ctrl+Shift+Z", Event{Key: KeyRune, Rune: 'z', Modifiers: ModCtrl | ModShift}},
		{"Shift+Left", Event{Key: KeyLeft, Modifiers: ModShift}},
		{"Alt+Space", Event{Key: KeyRune, Rune: ' ', Modifiers: ModAlt}},
		{"Ctrl++", Event{Key: KeyRune, Rune: '+', Modifiers: ModCtrl}},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.spec, err)
			}
			if !got.Equals(tt.want) {
				t.Errorf("Parse(%q) = %s, want %s", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"Hyper+a", ErrInvalidSpec},
		{"Ctrl+Banana", ErrInvalidSpec},
		{"Ctrl+", ErrInvalidSpec},
	}
	for _, tt := range tests {
		if _, err := Parse(tt.spec); !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
		}
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('x', ModNone), "x"},
		{Ctrl('Q'), "Ctrl+q"},
		{NewEvent(KeyRight, ModShift), "Shift+Right"},
		{NewRuneEvent(' ', ModAlt), "Alt+Space"},
	}
	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParse_Chord(t *testing.T) {
	e := MustParse("Ctrl+Z")
	if !e.Equals(Ctrl('z')) {
		t.Errorf("Parse(Ctrl+Z) = %v, want Ctrl+z", e)
	}
	if e.Equals(MustParse("Ctrl+Y")) {
		t.Error("different chords should not be equal")
	}
}

func TestModifier(t *testing.T) {
	m := ModCtrl.With(ModShift)
	if m.String() != "Ctrl+Shift" {
		t.Errorf("String() = %q", m.String())
	}
	if ModifierFromName("CMD") != ModMeta {
		t.Error("cmd should map to meta")
	}
}
