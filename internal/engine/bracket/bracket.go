package bracket

import (
	"fmt"

	"github.com/dshills/caret/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// State is the state of a Matcher.
type State uint8

const (
	Idle State = iota
	SeekingClose
	SeekingOpen
	Matched
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case SeekingClose:
		return "seeking-close"
	case SeekingOpen:
		return "seeking-open"
	case Matched:
		return "matched"
	default:
		return "idle"
	}
}

// Bracket is a bracket character at a buffer position.
type Bracket struct {
	Char rune
	Pos  Position
}

// String returns a human-readable representation of the bracket.
func (b Bracket) String() string {
	return fmt.Sprintf("%q%s", b.Char, b.Pos)
}

// Window is a half-open range of visible line indexes [First, Last).
type Window struct {
	First int
	Last  int
}

// Contains reports whether line is inside the window.
func (w Window) Contains(line int) bool {
	return line >= w.First && line < w.Last
}

var pairs = map[rune]rune{
	'{': '}',
	'(': ')',
	'[': ']',
}

var reversePairs = map[rune]rune{
	'}': '{',
	')': '(',
	']': '[',
}

// IsOpening reports whether r is an opening bracket.
func IsOpening(r rune) bool {
	_, ok := pairs[r]
	return ok
}

// IsClosing reports whether r is a closing bracket.
func IsClosing(r rune) bool {
	_, ok := reversePairs[r]
	return ok
}

// Matcher tracks the bracket pair around the cursor of one editor.
type Matcher struct {
	buf    *buffer.Buffer
	window Window

	state   State
	opening Bracket
	closing Bracket
}

// New creates an idle matcher over buf.
func New(buf *buffer.Buffer) *Matcher {
	return &Matcher{buf: buf}
}

// State returns the current state.
func (m *Matcher) State() State {
	return m.state
}

// Opening returns the opening bracket if it is known.
func (m *Matcher) Opening() (Bracket, bool) {
	return m.opening, m.state == SeekingClose || m.state == Matched
}

// Closing returns the closing bracket if it is known.
func (m *Matcher) Closing() (Bracket, bool) {
	return m.closing, m.state == SeekingOpen || m.state == Matched
}

// Pair returns both brackets when a match has been found.
func (m *Matcher) Pair() (opening, closing Bracket, ok bool) {
	if m.state != Matched {
		return Bracket{}, Bracket{}, false
	}
	return m.opening, m.closing, true
}

// Reset returns the matcher to Idle.
func (m *Matcher) Reset() {
	m.state = Idle
	m.opening = Bracket{}
	m.closing = Bracket{}
}

// SetWindow sets the visible line window used by searches.
func (m *Matcher) SetWindow(w Window) {
	m.window = w
}

// Window returns the visible line window used by searches.
func (m *Matcher) Window() Window {
	return m.window
}

// OnCursorMoved re-evaluates the character left of pos and searches the
// current window for its partner.
func (m *Matcher) OnCursorMoved(pos Position) {
	m.Reset()
	if pos.Char == 0 {
		return
	}
	at := Position{Line: pos.Line, Char: pos.Char - 1}
	r, ok := m.buf.CharAt(at)
	if !ok {
		return
	}

	switch {
	case IsOpening(r):
		m.state = SeekingClose
		m.opening = Bracket{Char: r, Pos: at}
	case IsClosing(r):
		m.state = SeekingOpen
		m.closing = Bracket{Char: r, Pos: at}
	default:
		return
	}
	m.Scan()
}

// Scan searches the current window for the missing partner. It is a no-op
// unless the matcher is seeking. It reports whether the matcher is Matched
// afterwards.
func (m *Matcher) Scan() bool {
	switch m.state {
	case SeekingClose:
		if p, ok := m.scanForward(m.opening); ok {
			m.closing = p
			m.state = Matched
		}
	case SeekingOpen:
		if p, ok := m.scanBackward(m.closing); ok {
			m.opening = p
			m.state = Matched
		}
	}
	return m.state == Matched
}

func (m *Matcher) scanForward(from Bracket) (Bracket, bool) {
	if !m.window.Contains(from.Pos.Line) {
		return Bracket{}, false
	}
	want := pairs[from.Char]
	last := min(m.window.Last, m.buf.LineCount())

	depth := 0
	for line := from.Pos.Line; line < last; line++ {
		char := 0
		for _, r := range m.buf.Line(line) {
			if line == from.Pos.Line && char < from.Pos.Char {
				char++
				continue
			}
			switch r {
			case from.Char:
				depth++
			case want:
				depth--
				if depth == 0 {
					return Bracket{Char: r, Pos: Position{Line: line, Char: char}}, true
				}
			}
			char++
		}
	}
	return Bracket{}, false
}

func (m *Matcher) scanBackward(from Bracket) (Bracket, bool) {
	if !m.window.Contains(from.Pos.Line) {
		return Bracket{}, false
	}
	want := reversePairs[from.Char]
	first := max(m.window.First, 0)

	depth := 0
	for line := from.Pos.Line; line >= first; line-- {
		runes := []rune(m.buf.Line(line))
		start := len(runes) - 1
		if line == from.Pos.Line {
			start = from.Pos.Char
		}
		for char := start; char >= 0; char-- {
			switch runes[char] {
			case from.Char:
				depth++
			case want:
				depth--
				if depth == 0 {
					return Bracket{Char: want, Pos: Position{Line: line, Char: char}}, true
				}
			}
		}
	}
	return Bracket{}, false
}
