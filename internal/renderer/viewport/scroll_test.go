package viewport

import (
	"testing"

	"github.com/dshills/caret/internal/engine/buffer"
	"github.com/dshills/caret/internal/renderer/core"
)

func TestScrollIntoViewVertical(t *testing.T) {
	m := newTestMapper(100, geometry(100, 40))

	if !m.ScrollIntoView(buffer.Pos(9, 0)) {
		t.Fatal("expected scroll down")
	}
	if m.Scroll().Y != 60 {
		t.Errorf("scrollY = %v, want 60", m.Scroll().Y)
	}

	if !m.ScrollIntoView(buffer.Pos(2, 0)) {
		t.Fatal("expected scroll up")
	}
	if m.Scroll().Y != 20 {
		t.Errorf("scrollY = %v, want 20", m.Scroll().Y)
	}

	if m.ScrollIntoView(buffer.Pos(3, 0)) {
		t.Error("visible line should not scroll")
	}
}

func TestScrollIntoViewHorizontalIsIncremental(t *testing.T) {
	m := newTestMapper(1, geometry(50, 10))
	pos := buffer.Pos(0, 12)

	var steps int
	for m.ScrollIntoView(pos) {
		steps++
		if steps > 20 {
			t.Fatal("scroll did not converge")
		}
	}

	// 12*5 - scroll <= 50 - 2*5 requires scroll >= 20, one char per call.
	if steps != 4 {
		t.Errorf("steps = %d, want 4", steps)
	}
	if m.Scroll().X != 20 {
		t.Errorf("scrollX = %v, want 20", m.Scroll().X)
	}
}

func TestScrollIntoViewLeft(t *testing.T) {
	g := geometry(50, 10)
	g.Scroll = core.Pt(40, 0)
	m := newTestMapper(1, g)

	m.ScrollIntoView(buffer.Pos(0, 2))
	if m.Scroll().X != 5 {
		t.Errorf("scrollX = %v, want 5", m.Scroll().X)
	}

	m.ScrollIntoView(buffer.Pos(0, 0))
	if m.Scroll().X != 0 {
		t.Errorf("scrollX = %v, want 0", m.Scroll().X)
	}
}

func TestApplyRevealConsumesRequest(t *testing.T) {
	m := newTestMapper(100, geometry(100, 40))

	if m.ApplyReveal(buffer.Pos(50, 0)) {
		t.Error("no reveal without a request")
	}

	m.RequestReveal()
	if !m.RevealPending() {
		t.Fatal("reveal should be pending")
	}
	if !m.ApplyReveal(buffer.Pos(50, 0)) {
		t.Error("expected scroll")
	}
	if m.RevealPending() {
		t.Error("reveal should be consumed")
	}
}

func TestScrollLines(t *testing.T) {
	m := newTestMapper(10, geometry(100, 40))

	m.ScrollLines(3)
	if m.Scroll().Y != 30 {
		t.Errorf("scrollY = %v", m.Scroll().Y)
	}
	m.ScrollLines(-10)
	if m.Scroll().Y != 0 {
		t.Errorf("scrollY = %v", m.Scroll().Y)
	}
}
