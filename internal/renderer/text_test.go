package renderer

import (
	"testing"

	"github.com/dshills/caret/internal/renderer/core"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		chars  []int
		widths []int
	}{
		{"ascii", "ab", []int{0, 1}, []int{1, 1}},
		{"combining", "e\u0301x", []int{0, 2}, []int{1, 1}},
		{"wide", "日x", []int{0, 1}, []int{2, 1}},
		{"empty", "", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			glyphs := Segment(tt.line)
			if len(glyphs) != len(tt.chars) {
				t.Fatalf("got %d glyphs, want %d", len(glyphs), len(tt.chars))
			}
			for i, g := range glyphs {
				if g.Char != tt.chars[i] || g.Width != tt.widths[i] {
					t.Errorf("glyph %d = {Char:%d Width:%d}, want {%d %d}", i, g.Char, g.Width, tt.chars[i], tt.widths[i])
				}
			}
		})
	}
}

func TestGlyphCell(t *testing.T) {
	style := core.DefaultStyle()

	c := Segment("e\u0301")[0].Cell(style)
	if c.Rune != 'e' || len(c.Combining) != 1 || c.Combining[0] != '\u0301' {
		t.Errorf("cell = %+v", c)
	}

	if tab := Segment("\t")[0].Cell(style); tab.Rune != ' ' {
		t.Errorf("tab cell = %q", tab.Rune)
	}
}
