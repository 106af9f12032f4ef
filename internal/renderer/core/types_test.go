package core

import "testing"

func TestRectGeometry(t *testing.T) {
	r := RectFromMinSize(2, 3, 4, 5)

	if r.Width() != 4 || r.Height() != 5 {
		t.Errorf("size = %vx%v", r.Width(), r.Height())
	}
	if !r.Contains(Pt(2, 3)) || r.Contains(Pt(6, 3)) {
		t.Error("Contains should be half-open")
	}
	if !(Rect{}).IsEmpty() {
		t.Error("zero rect should be empty")
	}
}

func TestRectIntersect(t *testing.T) {
	a := RectFromMinSize(0, 0, 10, 10)
	b := RectFromMinSize(5, 5, 10, 10)

	got := a.Intersect(b)
	if got != RectFromMinSize(5, 5, 5, 5) {
		t.Errorf("Intersect = %s", got)
	}

	c := RectFromMinSize(20, 20, 1, 1)
	if !a.Intersect(c).IsEmpty() {
		t.Error("disjoint rects should not intersect")
	}
}

func TestRectCells(t *testing.T) {
	r := Rect{Min: Pt(1.5, 2), Max: Pt(3.2, 3)}
	want := ScreenRect{Top: 2, Left: 1, Bottom: 3, Right: 4}

	if got := r.Cells(); got != want {
		t.Errorf("Cells() = %+v, want %+v", got, want)
	}
	if want.Width() != 3 || want.Height() != 1 {
		t.Errorf("size = %dx%d", want.Width(), want.Height())
	}
}

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ff8000", ColorFromRGB(255, 128, 0), false},
		{"0a0", ColorFromRGB(0, 170, 0), false},
		{"#12", Color{}, true},
		{"zzzzzz", Color{}, true},
	}

	for _, tt := range tests {
		got, err := ColorFromHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ColorFromHex(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ColorFromHex(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestStyleBuilders(t *testing.T) {
	s := DefaultStyle().
		WithBackground(ColorFromRGB(1, 2, 3)).
		WithAttributes(AttrBold).
		WithAttributes(AttrReverse)

	if !s.Attributes.Has(AttrBold) || !s.Attributes.Has(AttrReverse) {
		t.Error("attributes should accumulate")
	}
	if !s.Foreground.IsDefault() || s.Background.IsDefault() {
		t.Error("unexpected colors")
	}
}

func TestCellString(t *testing.T) {
	c := Cell{Rune: 'e', Combining: []rune{'\u0301'}, Width: 1}
	if c.String() != "e\u0301" {
		t.Errorf("String() = %q", c.String())
	}
	if (Cell{}).String() != "" {
		t.Error("continuation cell should render empty")
	}
	if EmptyCell().String() != " " {
		t.Error("empty cell should be a space")
	}
}

func TestCellEquals(t *testing.T) {
	a := Cell{Rune: 'e', Combining: []rune{'\u0301'}, Width: 1, Style: DefaultStyle()}
	b := Cell{Rune: 'e', Combining: []rune{'\u0301'}, Width: 1, Style: DefaultStyle()}
	if !a.Equals(b) {
		t.Error("identical cells should be equal")
	}
	b.Combining = nil
	if a.Equals(b) {
		t.Error("combining runes should be compared")
	}
	if !ContinuationCell().IsContinuation() {
		t.Error("ContinuationCell should be a continuation")
	}
}
