package highlight

import (
	"github.com/dshills/caret/internal/engine/buffer"
	"github.com/dshills/caret/internal/renderer/core"
	"github.com/dshills/caret/internal/renderer/viewport"
)

// Kind identifies what a highlight rectangle marks.
type Kind uint8

const (
	KindCursor Kind = iota
	KindSelection
	KindBracket
	KindWord
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCursor:
		return "cursor"
	case KindSelection:
		return "selection"
	case KindBracket:
		return "bracket"
	default:
		return "word"
	}
}

// Region is a highlight rectangle tagged with its kind.
type Region struct {
	Kind Kind
	Rect core.Rect
}

// Cursor returns the caret rectangle of the given pixel width, or false
// when the cursor line is not visible.
func Cursor(m *viewport.Mapper, pos buffer.Position, width float64) (core.Rect, bool) {
	if !m.Window().Contains(pos.Line) {
		return core.Rect{}, false
	}
	x, y := m.IndexToPixel(pos)
	return core.RectFromMinSize(x, y, width, m.Geometry().LineHeight), true
}

// Selection returns the rectangles covering r: one for a single-line
// selection, up to two for adjacent lines, and up to three for a
// multi-line selection (first-line tail, full-width middle block, last-line
// head).
func Selection(m *viewport.Mapper, r buffer.Range) []core.Rect {
	r = r.Normalize()
	w := m.Window()
	lh := m.Geometry().LineHeight
	area := m.TextArea()

	span := func(line int, x0, x1 float64) core.Rect {
		y := m.LineY(line)
		return core.Rect{Min: core.Pt(x0, y), Max: core.Pt(x1, y+lh)}
	}
	startX, _ := m.IndexToPixel(r.Start)
	endX, _ := m.IndexToPixel(r.End)

	var out []core.Rect
	if r.IsSingleLine() {
		if w.Contains(r.Start.Line) {
			out = append(out, span(r.Start.Line, startX, endX))
		}
		return out
	}

	if w.Contains(r.Start.Line) {
		out = append(out, span(r.Start.Line, startX, area.Max.X))
	}
	if r.End.Line-r.Start.Line > 1 {
		top := max(r.Start.Line+1, w.First)
		bottom := min(r.End.Line-1, w.Last-1)
		if top <= bottom {
			out = append(out, core.Rect{
				Min: core.Pt(area.Min.X, m.LineY(top)),
				Max: core.Pt(area.Max.X, m.LineY(bottom)+lh),
			})
		}
	}
	if w.Contains(r.End.Line) {
		out = append(out, span(r.End.Line, area.Min.X, endX))
	}
	return out
}

// Brackets returns one cell-sized rectangle per bracket when both are
// visible, and nothing otherwise.
func Brackets(m *viewport.Mapper, opening, closing buffer.Position) []core.Rect {
	w := m.Window()
	if !w.Contains(opening.Line) || !w.Contains(closing.Line) {
		return nil
	}
	return []core.Rect{cell(m, opening), cell(m, closing)}
}

// Words returns one rectangle per visible occurrence.
func Words(m *viewport.Mapper, occurrences []buffer.Range) []core.Rect {
	w := m.Window()
	out := make([]core.Rect, 0, len(occurrences))
	for _, occ := range occurrences {
		if !w.Contains(occ.Start.Line) {
			continue
		}
		x0, y := m.IndexToPixel(occ.Start)
		x1, _ := m.IndexToPixel(occ.End)
		out = append(out, core.Rect{Min: core.Pt(x0, y), Max: core.Pt(x1, y+m.Geometry().LineHeight)})
	}
	return out
}

func cell(m *viewport.Mapper, pos buffer.Position) core.Rect {
	x, y := m.IndexToPixel(pos)
	g := m.Geometry()
	return core.RectFromMinSize(x, y, g.CharWidth, g.LineHeight)
}
