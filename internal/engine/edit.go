package engine

import (
	"time"

	"github.com/dshills/caret/internal/engine/buffer"
	"github.com/dshills/caret/internal/engine/history"
)

// Type inserts text at the cursor, replacing the selection if there is one.
// Newlines in text split the line.
func (e *Editor) Type(text string, now time.Time) {
	if text == "" {
		return
	}
	if e.ReplaceSelection(text, now) {
		return
	}
	e.InsertText(text, now)
}

// InsertText inserts text at the cursor and moves the cursor after it.
// Each newline is recorded as a line split.
func (e *Editor) InsertText(text string, now time.Time) {
	if text == "" {
		return
	}
	e.insertParts(buffer.SplitLines(text), now)
	e.view.RequestReveal()
}

// ReplaceSelection replaces the selected text with text and clears the
// selection. The cursor ends up after the inserted text. It reports false,
// changing nothing, when there is no selection.
func (e *Editor) ReplaceSelection(text string, now time.Time) bool {
	parts := buffer.SplitLines(text)
	before := e.cur.Position()

	edit, ok := e.sel.Replace(parts[0])
	if !ok {
		return false
	}
	e.hist.Record(history.ReplaceText{
		Start:    edit.Start,
		Removed:  edit.Removed,
		Inserted: edit.Inserted,
	}, now, before)

	if len(parts) > 1 {
		parts[0] = ""
		e.insertParts(parts, now)
	}
	e.view.RequestReveal()
	return true
}

// DeleteSelection removes the selected text. It reports whether there was
// a selection.
func (e *Editor) DeleteSelection(now time.Time) bool {
	return e.ReplaceSelection("", now)
}

// insertParts inserts parts separated by line splits.
func (e *Editor) insertParts(parts []string, now time.Time) {
	for i, part := range parts {
		if i > 0 {
			e.splitLine(now)
		}
		if part == "" {
			continue
		}
		pos := e.cur.Position()
		e.buf.InsertCharAt(pos, part)
		e.hist.Record(history.InsertChar{Pos: pos, Text: part}, now, pos)
		e.cur.Sync()
		e.cur.SetChar(pos.Char + buffer.CharCount(part))
	}
}

func (e *Editor) splitLine(now time.Time) {
	pos := e.cur.Position()
	e.buf.SplitLineAt(pos)
	e.hist.Record(history.SplitLine{Pos: pos}, now, pos)
	e.cur.Sync()
	e.cur.SetPosition(Position{Line: pos.Line + 1})
}

// Enter splits the line at the cursor. With a selection it only deletes
// the selection.
func (e *Editor) Enter(now time.Time) {
	if !e.DeleteSelection(now) {
		e.splitLine(now)
	}
	e.view.RequestReveal()
}

// Backspace deletes the selection, or the character left of the cursor,
// or at the start of a line merges it into the previous one.
func (e *Editor) Backspace(now time.Time) {
	if e.DeleteSelection(now) {
		return
	}

	pos := e.cur.Position()
	switch {
	case pos.Char > 0:
		at := Position{Line: pos.Line, Char: pos.Char - 1}
		r, ok := e.buf.RemoveCharAt(at)
		if !ok {
			return
		}
		e.hist.Record(history.RemoveChar{Pos: pos, Char: r}, now, pos)
		e.cur.Sync()
		e.cur.SetPosition(at)
	case pos.Line > 0:
		join, moved := e.buf.MergeLineIntoPrevious(pos.Line)
		e.hist.Record(history.RemoveLine{Line: pos.Line, Text: moved}, now, pos)
		e.cur.Sync()
		e.cur.SetPosition(join)
	default:
		return
	}
	e.view.RequestReveal()
}

// Delete deletes the selection, or the character under the cursor, or at
// the end of a line merges the next line into it. The cursor stays put.
func (e *Editor) Delete(now time.Time) {
	if e.DeleteSelection(now) {
		return
	}

	pos := e.cur.Position()
	if r, ok := e.buf.RemoveCharAt(pos); ok {
		// RemoveChar records the caret right of the removed character.
		e.hist.Record(history.RemoveChar{Pos: Position{Line: pos.Line, Char: pos.Char + 1}, Char: r}, now, pos)
		e.cur.Sync()
		return
	}
	if pos.Line+1 < e.buf.LineCount() {
		_, moved := e.buf.MergeLineIntoPrevious(pos.Line + 1)
		e.hist.Record(history.RemoveLine{Line: pos.Line + 1, Text: moved}, now, pos)
		e.cur.Sync()
	}
}

// Undo reverts the most recent history entry, committing pending actions
// first, and restores the cursor to where the entry started. It reports
// false when there is nothing to undo.
func (e *Editor) Undo() bool {
	entry, ok := e.hist.Undo()
	if !ok {
		return false
	}
	e.sel.Reset()
	e.cur.Sync()
	e.cur.SetPosition(entry.CursorAtStart)
	e.view.RequestReveal()

	e.log.Debug("undo", "kind", entry.Kind.String(), "start", entry.Start, "end", entry.End)
	return true
}

// SelectAll selects the whole document and moves the cursor to its end.
func (e *Editor) SelectAll() {
	e.sel.SelectAll()
	e.view.RequestReveal()
}

// SelectedText returns the selected text joined with "\n".
func (e *Editor) SelectedText() string {
	return e.sel.Text()
}
