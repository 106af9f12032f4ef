package selection

import (
	"github.com/dshills/caret/internal/engine/buffer"
	"github.com/dshills/caret/internal/engine/cursor"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Kind classifies a selection by the number of lines it spans.
type Kind uint8

const (
	// KindNone means there is no selection.
	KindNone Kind = iota
	// KindSingleLine means start and end are on the same line.
	KindSingleLine
	// KindAdjacentLines means end is on the line directly after start.
	KindAdjacentLines
	// KindMultiLine means at least one whole line lies between start and end.
	KindMultiLine
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSingleLine:
		return "single-line"
	case KindAdjacentLines:
		return "adjacent-lines"
	case KindMultiLine:
		return "multi-line"
	default:
		return "none"
	}
}

// Classify returns the kind of a normalized range.
func Classify(r buffer.Range) Kind {
	switch r.End.Line - r.Start.Line {
	case 0:
		return KindSingleLine
	case 1:
		return KindAdjacentLines
	default:
		return KindMultiLine
	}
}

// Edit describes a completed selection replacement.
type Edit struct {
	Start    Position // start of the replaced range
	Removed  []string // removed text, one element per touched line
	Inserted string   // replacement text spliced in at Start
}

// Model holds the selection state of one editor.
type Model struct {
	buf *buffer.Buffer
	cur *cursor.Cursor

	anchor      Position
	hasAnchor   bool
	endpoint    Position
	hasEndpoint bool

	sel    buffer.Range
	active bool

	word string
}

// New creates an empty selection model.
func New(buf *buffer.Buffer, cur *cursor.Cursor) *Model {
	return &Model{buf: buf, cur: cur}
}

// BeginDrag records the drag anchor and clears any previous endpoint.
func (m *Model) BeginDrag(pos Position) {
	m.anchor = pos
	m.hasAnchor = true
	m.hasEndpoint = false
}

// HasAnchor reports whether a drag anchor is set.
func (m *Model) HasAnchor() bool {
	return m.hasAnchor
}

// UpdateDrag records the drag endpoint and republishes the selection.
// Without an anchor it does nothing.
func (m *Model) UpdateDrag(pos Position) {
	if !m.hasAnchor {
		return
	}
	m.endpoint = pos
	m.hasEndpoint = true
	m.publish()
}

// EndDrag clears the drag anchor and endpoint but keeps the published
// selection.
func (m *Model) EndDrag() {
	m.hasAnchor = false
	m.hasEndpoint = false
}

func (m *Model) publish() {
	start, end := m.anchor, m.endpoint
	if start.Line > end.Line {
		start, end = end, start
	}
	if start.Line == end.Line && start.Char > end.Char {
		start.Char, end.Char = end.Char, start.Char
	}
	m.sel = buffer.Range{Start: m.buf.Clamp(start), End: m.buf.Clamp(end)}
	m.active = true
}

// Set publishes r as the selection, normalizing and clamping it.
func (m *Model) Set(r buffer.Range) {
	r = r.Normalize()
	m.sel = buffer.Range{Start: m.buf.Clamp(r.Start), End: m.buf.Clamp(r.End)}
	m.active = true
}

// SelectAll selects the whole document and moves the cursor to its end.
func (m *Model) SelectAll() {
	m.anchor = Position{}
	m.hasAnchor = true
	m.endpoint = m.buf.End()
	m.hasEndpoint = true
	m.publish()
	m.cur.MoveToEnd()
}

// Range returns the current selection and whether one is present.
func (m *Model) Range() (buffer.Range, bool) {
	return m.sel, m.HasSelection()
}

// HasSelection reports whether a non-empty selection is present.
func (m *Model) HasSelection() bool {
	return m.active && !m.sel.IsEmpty()
}

// Kind classifies the current selection.
func (m *Model) Kind() Kind {
	if !m.HasSelection() {
		return KindNone
	}
	return Classify(m.sel)
}

// Text returns the selected text joined with "\n".
func (m *Model) Text() string {
	if !m.HasSelection() {
		return ""
	}
	return m.buf.TextRange(m.sel.Start, m.sel.End)
}

// Replace deletes the selected text and inserts replacement at its start.
// replacement must not contain newlines. The cursor is placed after the
// inserted text and all selection state is cleared. The boolean is false
// when there was no selection, in which case nothing changes.
func (m *Model) Replace(replacement string) (Edit, bool) {
	if !m.HasSelection() {
		return Edit{}, false
	}
	r := m.sel
	removed := m.buf.ReplaceRange(r.Start, r.End, replacement)
	m.Reset()

	m.cur.Sync()
	m.cur.SetPosition(Position{
		Line: r.Start.Line,
		Char: r.Start.Char + buffer.CharCount(replacement),
	})

	return Edit{Start: r.Start, Removed: removed, Inserted: replacement}, true
}

// Reset clears the selection, the drag state and the highlighted word.
func (m *Model) Reset() {
	m.sel = buffer.Range{}
	m.active = false
	m.hasAnchor = false
	m.hasEndpoint = false
	m.word = ""
}

// HighlightedWord returns the word whose occurrences are highlighted.
func (m *Model) HighlightedWord() string {
	return m.word
}

// SelectWordAt selects the word around pos, moves the cursor to its end and,
// when the word is longer than one character, makes it the highlighted word.
// It returns the selected range.
func (m *Model) SelectWordAt(pos Position) buffer.Range {
	pos = m.buf.Clamp(pos)
	start, end := WordBounds(m.buf.Line(pos.Line), pos.Char)

	m.Reset()
	r := buffer.Range{Start: Position{Line: pos.Line, Char: start}, End: Position{Line: pos.Line, Char: end}}
	m.Set(r)
	if end-start > 1 {
		m.word = buffer.SliceChars(m.buf.Line(pos.Line), start, end)
	}
	m.cur.SetPosition(r.End)
	return r
}
