package highlight

import (
	"testing"

	"github.com/dshills/caret/internal/engine/buffer"
	"github.com/dshills/caret/internal/renderer/core"
	"github.com/dshills/caret/internal/renderer/viewport"
)

// newTestMapper returns a 10-line document in a 100x40 viewport with
// 10px lines and 5px characters, scrolled so lines [2,6) are visible.
func newTestMapper() *viewport.Mapper {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = "abcdefghij"
	}
	m := viewport.New(buffer.NewFromLines(lines))
	m.SetGeometry(viewport.Geometry{
		Viewport:   core.RectFromMinSize(0, 0, 100, 40),
		LineHeight: 10,
		CharWidth:  5,
		Scroll:     core.Pt(0, 20),
	})
	return m
}

func TestCursor(t *testing.T) {
	m := newTestMapper()

	r, ok := Cursor(m, buffer.Pos(3, 4), 2)
	if !ok {
		t.Fatal("cursor on visible line should produce a rect")
	}
	if r != core.RectFromMinSize(20, 10, 2, 10) {
		t.Errorf("rect = %s", r)
	}

	if _, ok := Cursor(m, buffer.Pos(0, 0), 2); ok {
		t.Error("cursor above the window should not produce a rect")
	}
}

func TestSelectionShapes(t *testing.T) {
	tests := []struct {
		name string
		r    buffer.Range
		want []core.Rect
	}{
		{
			name: "single line",
			r:    buffer.NewRange(buffer.Pos(2, 1), buffer.Pos(2, 4)),
			want: []core.Rect{{Min: core.Pt(5, 0), Max: core.Pt(20, 10)}},
		},
		{
			name: "adjacent lines",
			r:    buffer.NewRange(buffer.Pos(2, 3), buffer.Pos(3, 2)),
			want: []core.Rect{
				{Min: core.Pt(15, 0), Max: core.Pt(100, 10)},
				{Min: core.Pt(0, 10), Max: core.Pt(10, 20)},
			},
		},
		{
			name: "multi line",
			r:    buffer.NewRange(buffer.Pos(2, 3), buffer.Pos(5, 2)),
			want: []core.Rect{
				{Min: core.Pt(15, 0), Max: core.Pt(100, 10)},
				{Min: core.Pt(0, 10), Max: core.Pt(100, 30)},
				{Min: core.Pt(0, 30), Max: core.Pt(10, 40)},
			},
		},
		{
			name: "multi line starting above window",
			r:    buffer.NewRange(buffer.Pos(0, 3), buffer.Pos(3, 2)),
			want: []core.Rect{
				{Min: core.Pt(0, 0), Max: core.Pt(100, 10)},
				{Min: core.Pt(0, 10), Max: core.Pt(10, 20)},
			},
		},
		{
			name: "outside window",
			r:    buffer.NewRange(buffer.Pos(8, 0), buffer.Pos(8, 3)),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Selection(newTestMapper(), tt.r)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d rects %v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("rect %d = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBrackets(t *testing.T) {
	m := newTestMapper()

	got := Brackets(m, buffer.Pos(2, 0), buffer.Pos(4, 1))
	if len(got) != 2 {
		t.Fatalf("expected 2 rects, got %d", len(got))
	}
	if got[1] != core.RectFromMinSize(5, 20, 5, 10) {
		t.Errorf("closing rect = %s", got[1])
	}

	if Brackets(m, buffer.Pos(0, 0), buffer.Pos(4, 1)) != nil {
		t.Error("pair with an invisible bracket should produce nothing")
	}
}

func TestWords(t *testing.T) {
	m := newTestMapper()

	got := Words(m, []buffer.Range{
		buffer.NewRange(buffer.Pos(1, 0), buffer.Pos(1, 3)),
		buffer.NewRange(buffer.Pos(3, 2), buffer.Pos(3, 5)),
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 visible occurrence, got %d", len(got))
	}
	if got[0] != (core.Rect{Min: core.Pt(10, 10), Max: core.Pt(25, 20)}) {
		t.Errorf("rect = %s", got[0])
	}
}
