package engine

import (
	"time"

	"github.com/dshills/caret/internal/engine/bracket"
	"github.com/dshills/caret/internal/engine/buffer"
	"github.com/dshills/caret/internal/engine/cursor"
	"github.com/dshills/caret/internal/engine/history"
	"github.com/dshills/caret/internal/engine/selection"
	"github.com/dshills/caret/internal/input"
	"github.com/dshills/caret/internal/renderer/core"
	"github.com/dshills/caret/internal/renderer/highlight"
	"github.com/dshills/caret/internal/renderer/viewport"
)

// Re-export commonly used types for convenience.
type (
	// Position is a line/character position in the document.
	Position = buffer.Position

	// Range is a span between two positions.
	Range = buffer.Range

	// Geometry is the per-frame viewport description.
	Geometry = viewport.Geometry
)

// Frame is the input to one Update call.
type Frame struct {
	// Now is the frame timestamp used for history debouncing.
	Now time.Time

	// Events are applied in order.
	Events []input.Event

	// Geometry describes the viewport. Its Scroll field is ignored: the
	// editor owns the scroll offset and reports it in Output.Scroll.
	Geometry Geometry
}

// Output is everything the painter needs after one frame.
type Output struct {
	// Lines holds the visible lines, the first being buffer line FirstLine.
	Lines     []string
	FirstLine int
	LineCount int
	Window    viewport.Window

	Scroll      core.Point
	GutterWidth float64
	TextArea    core.Rect

	Cursor        core.Rect
	CursorPos     Position
	CursorVisible bool

	Selection []core.Rect
	Brackets  []core.Rect
	Words     []core.Rect

	// SaveRequested is set when Ctrl+S was pressed during the frame.
	SaveRequested bool

	// Copied holds the text of the last Ctrl+C or Ctrl+X in the frame.
	Copied string
}

// Regions returns the highlight rectangles tagged by kind, lowest layer
// first. The cursor is not included.
func (o Output) Regions() []highlight.Region {
	out := make([]highlight.Region, 0, len(o.Words)+len(o.Selection)+len(o.Brackets))
	for _, r := range o.Words {
		out = append(out, highlight.Region{Kind: highlight.KindWord, Rect: r})
	}
	for _, r := range o.Selection {
		out = append(out, highlight.Region{Kind: highlight.KindSelection, Rect: r})
	}
	for _, r := range o.Brackets {
		out = append(out, highlight.Region{Kind: highlight.KindBracket, Rect: r})
	}
	return out
}

// frameState collects side outputs of the events applied in one frame.
type frameState struct {
	save   bool
	copied string
}

// Editor is a single-document editing engine.
type Editor struct {
	buf      *buffer.Buffer
	cur      *cursor.Cursor
	sel      *selection.Model
	brackets *bracket.Matcher
	hist     *history.History
	view     *viewport.Mapper

	log           Logger
	inactivity    time.Duration
	historyLimit  int
	scrollMargin  int
	wordHighlight bool
	cursorWidth   float64
	lineEnding    buffer.LineEnding

	frame frameState
}

// New creates an editor over lines. An empty slice yields a document with
// one empty line.
func New(lines []string, opts ...Option) *Editor {
	e := &Editor{
		log:           nopLogger{},
		inactivity:    DefaultInactivityPeriod,
		historyLimit:  DefaultHistoryLimit,
		scrollMargin:  DefaultScrollMargin,
		wordHighlight: true,
		cursorWidth:   DefaultCursorWidth,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.buf = buffer.NewFromLines(lines, buffer.WithLineEnding(e.lineEnding))
	e.view = viewport.New(e.buf, viewport.WithScrollMargin(e.scrollMargin))
	e.brackets = bracket.New(e.buf)
	e.cur = cursor.New(e.buf,
		cursor.WithProjector(e.view),
		cursor.WithListener(e.brackets.OnCursorMoved),
	)
	e.sel = selection.New(e.buf, e.cur)
	e.hist = history.New(e.buf,
		history.WithThreshold(e.inactivity),
		history.WithLimit(e.historyLimit),
		history.WithFlushHook(e.onFlush),
	)
	return e
}

// NewFromString creates an editor by splitting s on newlines.
func NewFromString(s string, opts ...Option) *Editor {
	return New(buffer.SplitLines(s), opts...)
}

// Buffer returns the document buffer.
func (e *Editor) Buffer() *buffer.Buffer {
	return e.buf
}

// Cursor returns the cursor.
func (e *Editor) Cursor() *cursor.Cursor {
	return e.cur
}

// Selection returns the selection model.
func (e *Editor) Selection() *selection.Model {
	return e.sel
}

// Brackets returns the bracket matcher.
func (e *Editor) Brackets() *bracket.Matcher {
	return e.brackets
}

// History returns the undo history.
func (e *Editor) History() *history.History {
	return e.hist
}

// Viewport returns the viewport mapper.
func (e *Editor) Viewport() *viewport.Mapper {
	return e.view
}

// Lines returns a copy of the document lines.
func (e *Editor) Lines() []string {
	return e.buf.Lines()
}

// Text returns the document joined with the buffer's line ending.
func (e *Editor) Text() string {
	return e.buf.Text()
}

// SetScroll sets the scroll offset in pixels.
func (e *Editor) SetScroll(p core.Point) {
	e.view.SetScroll(p)
	e.cur.Reproject()
}

// SetInactivityPeriod changes the history debounce period.
func (e *Editor) SetInactivityPeriod(d time.Duration) {
	if d > 0 {
		e.inactivity = d
		e.hist.SetThreshold(d)
	}
}

// SetHistoryLimit changes the maximum number of undo entries.
func (e *Editor) SetHistoryLimit(n int) {
	if n >= 0 {
		e.historyLimit = n
		e.hist.SetLimit(n)
	}
}

// SetScrollMargin changes the right-edge scroll margin in characters.
func (e *Editor) SetScrollMargin(chars int) {
	if chars >= 0 {
		e.scrollMargin = chars
		e.view.SetScrollMargin(chars)
	}
}

// SetCursorWidth changes the pixel width of the cursor rectangle.
func (e *Editor) SetCursorWidth(w float64) {
	if w > 0 {
		e.cursorWidth = w
	}
}

// SetWordHighlight enables or disables word-occurrence highlighting.
func (e *Editor) SetWordHighlight(enabled bool) {
	e.wordHighlight = enabled
}

// Update applies one frame: the geometry and the history tick, then every
// event in order, then scroll-into-view and derived highlight state.
func (e *Editor) Update(f Frame) Output {
	g := f.Geometry
	g.Scroll = e.view.Scroll()
	e.view.SetGeometry(g)
	e.cur.Reproject()

	// An idle batch is closed before new input can join it.
	e.hist.Tick(f.Now)

	e.frame = frameState{}
	for _, ev := range f.Events {
		e.apply(ev, f.Now)
	}

	if e.view.ApplyReveal(e.cur.Position()) {
		e.cur.Reproject()
	}
	e.refreshBrackets()

	return e.output()
}

// refreshBrackets rescans the bracket pair against the current window.
// The window moves with scrolling and edits may have removed a partner.
func (e *Editor) refreshBrackets() {
	w := e.view.Window()
	e.brackets.SetWindow(bracket.Window{First: w.First, Last: w.Last})
	e.brackets.OnCursorMoved(e.cur.Position())
}

func (e *Editor) output() Output {
	w := e.view.Window()
	pos := e.cur.Position()

	out := Output{
		Lines:         e.buf.LinesRange(w.First, w.Last),
		FirstLine:     w.First,
		LineCount:     e.buf.LineCount(),
		Window:        w,
		Scroll:        e.view.Scroll(),
		GutterWidth:   e.view.GutterWidth(),
		TextArea:      e.view.TextArea(),
		CursorPos:     pos,
		SaveRequested: e.frame.save,
		Copied:        e.frame.copied,
	}
	out.Cursor, out.CursorVisible = highlight.Cursor(e.view, pos, e.cursorWidth)

	if r, ok := e.sel.Range(); ok {
		out.Selection = highlight.Selection(e.view, r)
	}
	if opening, closing, ok := e.brackets.Pair(); ok {
		out.Brackets = highlight.Brackets(e.view, opening.Pos, closing.Pos)
	}
	if word := e.sel.HighlightedWord(); e.wordHighlight && word != "" {
		out.Words = highlight.Words(e.view, selection.Occurrences(e.buf, word, w.First, w.Last))
	}
	return out
}

func (e *Editor) apply(ev input.Event, now time.Time) {
	switch ev.Kind {
	case input.KindKey:
		e.handleKey(ev.Key, now)
	case input.KindText:
		e.Type(ev.Text, now)
	case input.KindPointer:
		e.handlePointer(ev.Pointer)
	}
}

func (e *Editor) onFlush(entry history.Entry) {
	e.log.Debug("history entry recorded",
		"kind", entry.Kind.String(),
		"start", entry.Start,
		"end", entry.End,
		"actions", entry.Actions,
	)
}
