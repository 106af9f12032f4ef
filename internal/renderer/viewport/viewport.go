// Package viewport maps between pixel coordinates and buffer positions for
// the visible window of a document.
//
// The mapper works on per-frame Geometry supplied by the host: the pixel
// rectangle of the editing area, line height, character width and the
// current scroll offset. A line-number gutter, when enabled, occupies the
// left edge of the rectangle and shifts the text origin right.
//
// Only the lines inside the visible Window are rendered, and derived state
// such as bracket matches and word occurrences is computed over that window
// alone.
package viewport

import (
	"math"

	"github.com/dshills/caret/internal/engine/buffer"
	"github.com/dshills/caret/internal/renderer/core"
)

// Geometry is the viewport description for one frame.
type Geometry struct {
	// Viewport is the pixel rectangle of the editing area, gutter included.
	Viewport core.Rect

	// LineHeight and CharWidth are the size of one text cell in pixels.
	LineHeight float64
	CharWidth  float64

	// Scroll is the current scroll offset in pixels.
	Scroll core.Point

	// Gutter enables the line-number gutter.
	Gutter bool
}

// Window is the half-open range of visible line indexes [First, Last).
type Window struct {
	First int
	Last  int
}

// Contains reports whether line is inside the window.
func (w Window) Contains(line int) bool {
	return line >= w.First && line < w.Last
}

// Len returns the number of lines in the window.
func (w Window) Len() int {
	return max(w.Last-w.First, 0)
}

// Mapper converts between pixels and buffer positions.
type Mapper struct {
	buf *buffer.Buffer
	geo Geometry

	marginChars int
	reveal      bool
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithScrollMargin sets how many character widths are kept free at the right
// edge when scrolling the cursor into view.
func WithScrollMargin(chars int) Option {
	return func(m *Mapper) {
		if chars >= 0 {
			m.marginChars = chars
		}
	}
}

// New creates a mapper over buf with one-pixel cells and no viewport.
func New(buf *buffer.Buffer, opts ...Option) *Mapper {
	m := &Mapper{
		buf:         buf,
		geo:         Geometry{LineHeight: 1, CharWidth: 1},
		marginChars: 2,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetGeometry replaces the frame geometry. Non-positive cell sizes are
// ignored, and the vertical scroll offset is clamped into
// [0, LineCount*LineHeight].
func (m *Mapper) SetGeometry(g Geometry) {
	if g.LineHeight <= 0 {
		g.LineHeight = m.geo.LineHeight
	}
	if g.CharWidth <= 0 {
		g.CharWidth = m.geo.CharWidth
	}
	m.geo = g
	m.clampScroll()
}

// Geometry returns the current geometry, including any scroll adjustments.
func (m *Mapper) Geometry() Geometry {
	return m.geo
}

// Scroll returns the current scroll offset.
func (m *Mapper) Scroll() core.Point {
	return m.geo.Scroll
}

// SetScroll sets the scroll offset, clamping both axes.
func (m *Mapper) SetScroll(p core.Point) {
	m.geo.Scroll = p
	m.clampScroll()
}

func (m *Mapper) clampScroll() {
	limit := float64(m.buf.LineCount()) * m.geo.LineHeight
	m.geo.Scroll.Y = math.Max(0, math.Min(m.geo.Scroll.Y, limit))
	m.geo.Scroll.X = math.Max(0, m.geo.Scroll.X)
}

// FirstVisibleLine returns floor(scrollY / lineHeight). When that is past
// the last line it falls back to LineCount-2 (or 0 for a one-line document)
// so the tail of the document stays reachable.
func (m *Mapper) FirstVisibleLine() int {
	n := m.buf.LineCount()
	first := int(math.Floor(m.geo.Scroll.Y / m.geo.LineHeight))
	if first > n-1 {
		if n > 1 {
			return n - 2
		}
		return 0
	}
	return max(first, 0)
}

// LastVisibleLine returns the exclusive end of the visible window starting
// at first: first + ceil(height / lineHeight), clamped to LineCount.
func (m *Mapper) LastVisibleLine(first int) int {
	rows := int(math.Ceil(m.geo.Viewport.Height() / m.geo.LineHeight))
	return min(first+max(rows, 0), m.buf.LineCount())
}

// Window returns the visible line window for the current geometry.
func (m *Mapper) Window() Window {
	first := m.FirstVisibleLine()
	return Window{First: first, Last: m.LastVisibleLine(first)}
}

// TextArea returns the pixel rectangle that shows text, excluding the gutter.
func (m *Mapper) TextArea() core.Rect {
	r := m.geo.Viewport
	r.Min.X += m.GutterWidth()
	if r.Min.X > r.Max.X {
		r.Min.X = r.Max.X
	}
	return r
}

// PixelToIndex converts a pixel position into a buffer position, clamped
// into document bounds.
func (m *Mapper) PixelToIndex(p core.Point) buffer.Position {
	origin := m.TextArea().Min
	char := int(math.Floor((p.X - origin.X + m.geo.Scroll.X) / m.geo.CharWidth))
	line := int(math.Floor((p.Y - origin.Y + m.geo.Scroll.Y) / m.geo.LineHeight))
	return m.buf.Clamp(buffer.Position{Line: line, Char: char})
}

// IndexToPixel returns the top-left pixel of the cell at pos, measured from
// the first visible line.
func (m *Mapper) IndexToPixel(pos buffer.Position) (x, y float64) {
	origin := m.TextArea().Min
	x = origin.X + float64(pos.Char)*m.geo.CharWidth - m.geo.Scroll.X
	y = origin.Y + float64(pos.Line-m.FirstVisibleLine())*m.geo.LineHeight
	return x, y
}

// LineY returns the top pixel of line relative to the visible window.
func (m *Mapper) LineY(line int) float64 {
	_, y := m.IndexToPixel(buffer.Position{Line: line})
	return y
}
