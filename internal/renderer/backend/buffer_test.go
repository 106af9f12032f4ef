package backend

import (
	"testing"

	"github.com/dshills/caret/internal/renderer/core"
)

func TestScreenBufferFirstFlushIsFull(t *testing.T) {
	sb := NewScreenBuffer(4, 2)
	b := NewNullBackend(4, 2)
	b.Init()

	if n := sb.Flush(b); n != 8 {
		t.Errorf("first flush wrote %d cells, want 8", n)
	}
	if n := sb.Flush(b); n != 0 {
		t.Errorf("unchanged flush wrote %d cells", n)
	}
	if b.Shows() != 2 {
		t.Errorf("Show called %d times", b.Shows())
	}
}

func TestScreenBufferDiff(t *testing.T) {
	sb := NewScreenBuffer(4, 2)
	b := NewNullBackend(4, 2)
	b.Init()
	sb.Flush(b)

	sb.SetCell(1, 0, core.Cell{Rune: 'a', Width: 1, Style: core.DefaultStyle()})
	sb.SetCell(9, 9, core.Cell{Rune: 'z', Width: 1})

	changes := sb.ComputeDiff()
	if len(changes) != 1 || changes[0].X != 1 || changes[0].Y != 0 {
		t.Fatalf("changes = %+v", changes)
	}

	sb.Flush(b)
	if b.Row(0) != " a  " {
		t.Errorf("Row(0) = %q", b.Row(0))
	}

	// Redrawing the same content is not a change.
	sb.Clear()
	sb.SetCell(1, 0, core.Cell{Rune: 'a', Width: 1, Style: core.DefaultStyle()})
	if n := sb.Flush(b); n != 0 {
		t.Errorf("identical frame wrote %d cells", n)
	}
}

func TestScreenBufferFillAndRestyle(t *testing.T) {
	sb := NewScreenBuffer(5, 3)
	sb.Fill(core.ScreenRect{Top: -1, Left: 1, Bottom: 2, Right: 10}, core.Cell{Rune: '.', Width: 1})

	if sb.Cell(0, 0).Rune != ' ' || sb.Cell(4, 1).Rune != '.' || sb.Cell(1, 2).Rune != ' ' {
		t.Error("fill did not respect rect bounds")
	}

	rev := func(s core.Style) core.Style { return s.WithAttributes(core.AttrReverse) }
	sb.Restyle(core.ScreenRect{Top: 0, Left: 1, Bottom: 1, Right: 3}, rev)
	if !sb.Cell(2, 0).Style.Attributes.Has(core.AttrReverse) || sb.Cell(3, 0).Style.Attributes.Has(core.AttrReverse) {
		t.Error("restyle applied to wrong cells")
	}
	if sb.Cell(2, 0).Rune != '.' {
		t.Error("restyle must keep content")
	}
}

func TestScreenBufferResize(t *testing.T) {
	sb := NewScreenBuffer(2, 2)
	b := NewNullBackend(3, 1)
	b.Init()
	sb.Flush(b)

	sb.Resize(3, 1)
	if w, h := sb.Size(); w != 3 || h != 1 {
		t.Fatalf("Size() = %d,%d", w, h)
	}
	if n := sb.Flush(b); n != 3 {
		t.Errorf("flush after resize wrote %d cells, want 3", n)
	}
}
