package viewport

import (
	"math"

	"github.com/dshills/caret/internal/engine/buffer"
)

// RequestReveal marks that the cursor moved by keyboard. The next
// ApplyReveal scrolls it into view.
func (m *Mapper) RequestReveal() {
	m.reveal = true
}

// RevealPending reports whether a reveal was requested.
func (m *Mapper) RevealPending() bool {
	return m.reveal
}

// ApplyReveal consumes a pending reveal request and scrolls pos into view.
// It reports whether the scroll offset changed.
func (m *Mapper) ApplyReveal(pos buffer.Position) bool {
	if !m.reveal {
		return false
	}
	m.reveal = false
	return m.ScrollIntoView(pos)
}

// ScrollIntoView adjusts the scroll offset so pos becomes visible.
// Vertical correction moves by as many whole lines as needed at once.
// Horizontal correction to the right moves by one character width per call,
// keeping ScrollMargin free at the right edge; a cursor left of the view is
// brought back at once with one character of context.
// It reports whether the scroll offset changed.
func (m *Mapper) ScrollIntoView(pos buffer.Position) bool {
	before := m.geo.Scroll
	lh, cw := m.geo.LineHeight, m.geo.CharWidth
	height := m.geo.Viewport.Height()

	top := float64(pos.Line) * lh
	switch {
	case top < m.geo.Scroll.Y:
		hidden := math.Ceil((m.geo.Scroll.Y - top) / lh)
		m.geo.Scroll.Y -= hidden * lh
	case top+lh > m.geo.Scroll.Y+height:
		hidden := math.Ceil((top + lh - m.geo.Scroll.Y - height) / lh)
		m.geo.Scroll.Y += hidden * lh
	}

	width := m.TextArea().Width()
	x := float64(pos.Char)*cw - m.geo.Scroll.X
	switch {
	case x < 0:
		m.geo.Scroll.X += x - cw
	case x > width-m.ScrollMargin():
		m.geo.Scroll.X += cw
	}

	m.clampScroll()
	return m.geo.Scroll != before
}

// ScrollLines scrolls vertically by n lines, for wheel input.
func (m *Mapper) ScrollLines(n int) {
	m.geo.Scroll.Y += float64(n) * m.geo.LineHeight
	m.clampScroll()
}
