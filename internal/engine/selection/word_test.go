package selection

import (
	"testing"

	"github.com/dshills/caret/internal/engine/buffer"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		line       string
		char       int
		start, end int
	}{
		{"foo bar", 1, 0, 3},
		{"foo bar", 5, 4, 7},
		{"foo bar", 3, 0, 3},
		{"snake_case-id x", 2, 0, 13},
		{"a.b", 2, 2, 3},
		{"", 0, 0, 0},
		{"héllo wörld", 8, 6, 11},
	}

	for _, tt := range tests {
		start, end := WordBounds(tt.line, tt.char)
		if start != tt.start || end != tt.end {
			t.Errorf("WordBounds(%q, %d) = %d,%d want %d,%d", tt.line, tt.char, start, end, tt.start, tt.end)
		}
	}
}

func TestSelectWordAt(t *testing.T) {
	m, _, cur := newTestModel("let value = x")

	r := m.SelectWordAt(buffer.Pos(0, 6))
	if r.Start != buffer.Pos(0, 4) || r.End != buffer.Pos(0, 9) {
		t.Errorf("range = %s", r)
	}
	if cur.Position() != buffer.Pos(0, 9) {
		t.Errorf("cursor = %s", cur.Position())
	}
	if m.HighlightedWord() != "value" {
		t.Errorf("word = %q", m.HighlightedWord())
	}

	m.SelectWordAt(buffer.Pos(0, 12))
	if m.HighlightedWord() != "" {
		t.Errorf("single-character word should not be highlighted, got %q", m.HighlightedWord())
	}
}

func TestOccurrences(t *testing.T) {
	buf := buffer.NewFromLines([]string{
		"foo bar foo",
		"foobar foo_x",
		"(foo)",
		"foo",
	})

	got := Occurrences(buf, "foo", 0, buf.LineCount())
	want := []buffer.Range{
		buffer.NewRange(buffer.Pos(0, 0), buffer.Pos(0, 3)),
		buffer.NewRange(buffer.Pos(0, 8), buffer.Pos(0, 11)),
		buffer.NewRange(buffer.Pos(2, 1), buffer.Pos(2, 4)),
		buffer.NewRange(buffer.Pos(3, 0), buffer.Pos(3, 3)),
	}

	if len(got) != len(want) {
		t.Fatalf("got %d occurrences, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("occurrence %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestOccurrencesWindowBound(t *testing.T) {
	buf := buffer.NewFromLines([]string{"foo", "foo", "foo"})

	got := Occurrences(buf, "foo", 1, 2)
	if len(got) != 1 || got[0].Start.Line != 1 {
		t.Errorf("expected one occurrence on line 1, got %v", got)
	}

	if Occurrences(buf, "", 0, 3) != nil {
		t.Error("empty word should have no occurrences")
	}
}
