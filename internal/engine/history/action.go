package history

import (
	"fmt"

	"github.com/dshills/caret/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Action is a single primitive edit recorded by the editor.
type Action interface {
	// span reports that lines [at, at+before) were replaced by lines
	// [at, at+after) when the action was applied.
	span() (at, before, after int)

	// invert undoes the action on w, whose line 0 is document line base.
	invert(w *buffer.Buffer, base int)

	fmt.Stringer
}

// InsertChar records text inserted at Pos. Text holds no newlines.
type InsertChar struct {
	Pos  Position
	Text string
}

func (a InsertChar) span() (int, int, int) { return a.Pos.Line, 1, 1 }

func (a InsertChar) invert(w *buffer.Buffer, base int) {
	w.RemoveChars(rebase(a.Pos, base), buffer.CharCount(a.Text))
}

func (a InsertChar) String() string { return fmt.Sprintf("insert %q at %s", a.Text, a.Pos) }

// RemoveChar records Char removed from the left of caret position Pos,
// so the character was at Pos.Char-1.
type RemoveChar struct {
	Pos  Position
	Char rune
}

func (a RemoveChar) span() (int, int, int) { return a.Pos.Line, 1, 1 }

func (a RemoveChar) invert(w *buffer.Buffer, base int) {
	at := rebase(a.Pos, base)
	at.Char--
	w.InsertCharAt(at, string(a.Char))
}

func (a RemoveChar) String() string { return fmt.Sprintf("remove %q before %s", a.Char, a.Pos) }

// SplitLine records a newline inserted at Pos.
type SplitLine struct {
	Pos Position
}

func (a SplitLine) span() (int, int, int) { return a.Pos.Line, 1, 2 }

func (a SplitLine) invert(w *buffer.Buffer, base int) {
	w.MergeLineIntoPrevious(a.Pos.Line - base + 1)
}

func (a SplitLine) String() string { return fmt.Sprintf("split at %s", a.Pos) }

// RemoveLine records line Line being merged into line Line-1. Text is the
// content the removed line carried.
type RemoveLine struct {
	Line int
	Text string
}

func (a RemoveLine) span() (int, int, int) { return a.Line - 1, 2, 1 }

func (a RemoveLine) invert(w *buffer.Buffer, base int) {
	prev := a.Line - 1 - base
	at := w.LineLen(prev) - buffer.CharCount(a.Text)
	w.SplitLineAt(Position{Line: prev, Char: at})
}

func (a RemoveLine) String() string { return fmt.Sprintf("remove line %d", a.Line) }

// ReplaceText records the range starting at Start being replaced by
// Inserted. Removed holds the replaced text, one element per line.
type ReplaceText struct {
	Start    Position
	Removed  []string
	Inserted string
}

func (a ReplaceText) span() (int, int, int) {
	return a.Start.Line, max(len(a.Removed), 1), 1
}

func (a ReplaceText) invert(w *buffer.Buffer, base int) {
	at := rebase(a.Start, base)
	w.RemoveChars(at, buffer.CharCount(a.Inserted))
	w.InsertLinesAt(at, a.Removed)
}

func (a ReplaceText) String() string {
	return fmt.Sprintf("replace %d line(s) at %s with %q", len(a.Removed), a.Start, a.Inserted)
}

func rebase(p Position, base int) Position {
	return Position{Line: p.Line - base, Char: p.Char}
}
