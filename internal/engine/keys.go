package engine

import (
	"time"

	"github.com/dshills/caret/internal/input"
	"github.com/dshills/caret/internal/input/key"
	"github.com/dshills/caret/internal/input/mouse"
)

func (e *Editor) handleKey(k key.Event, now time.Time) {
	if k.IsRune() && k.Modifiers.HasCtrl() {
		e.handleChord(k.Rune, now)
		return
	}

	switch k.Key {
	case key.KeyUp, key.KeyDown, key.KeyLeft, key.KeyRight,
		key.KeyHome, key.KeyEnd, key.KeyPageUp, key.KeyPageDown:
		e.move(k.Key, k.Modifiers.HasShift())
	case key.KeyBackspace:
		e.Backspace(now)
	case key.KeyDelete:
		e.Delete(now)
	case key.KeyEnter:
		e.Enter(now)
	case key.KeyTab:
		e.Type("\t", now)
	case key.KeyEscape:
		e.sel.Reset()
	case key.KeyRune:
		if k.Modifiers&(key.ModAlt|key.ModMeta) == 0 {
			e.Type(string(k.Rune), now)
		}
	}
}

func (e *Editor) handleChord(r rune, now time.Time) {
	switch r {
	case 'a':
		e.SelectAll()
	case 'z':
		e.Undo()
	case 's':
		e.frame.save = true
		e.log.Debug("save requested", "lines", e.buf.LineCount())
	case 'c':
		if text := e.sel.Text(); text != "" {
			e.frame.copied = text
		}
	case 'x':
		if text := e.sel.Text(); text != "" {
			e.frame.copied = text
			e.DeleteSelection(now)
		}
	}
}

// move moves the cursor by keyboard. With shift the selection is extended
// from an anchor at the starting position; without it the selection is
// cleared.
func (e *Editor) move(k key.Key, shift bool) {
	if shift {
		if !e.sel.HasAnchor() {
			e.sel.BeginDrag(e.cur.Position())
		}
	} else {
		e.sel.Reset()
	}

	page := max(e.view.Window().Len(), 1)
	switch k {
	case key.KeyUp:
		e.cur.MoveUp()
	case key.KeyDown:
		e.cur.MoveDown()
	case key.KeyLeft:
		e.cur.MoveLeft()
	case key.KeyRight:
		e.cur.MoveRight()
	case key.KeyHome:
		e.cur.SetChar(0)
	case key.KeyEnd:
		e.cur.SetChar(e.buf.LineLen(e.cur.Line()))
	case key.KeyPageUp:
		e.cur.SetLine(e.cur.Line() - page)
	case key.KeyPageDown:
		e.cur.SetLine(e.cur.Line() + page)
	}

	if shift {
		e.sel.UpdateDrag(e.cur.Position())
	}
	e.view.RequestReveal()
}

func (e *Editor) handlePointer(p input.Pointer) {
	pos := e.view.PixelToIndex(p.Pos)

	switch p.Action {
	case mouse.ActionClick:
		e.sel.Reset()
		e.cur.SetPosition(pos)
	case mouse.ActionDoubleClick:
		e.sel.SelectWordAt(pos)
	case mouse.ActionDragStart:
		e.sel.BeginDrag(pos)
	case mouse.ActionDrag:
		e.sel.UpdateDrag(pos)
		e.cur.SetPosition(pos)
	case mouse.ActionDragEnd:
		e.sel.EndDrag()
	case mouse.ActionWheel:
		e.scroll(p.Lines, p.Chars)
	}
}

func (e *Editor) scroll(lines, chars int) {
	if lines != 0 {
		e.view.ScrollLines(lines)
	}
	if chars != 0 {
		s := e.view.Scroll()
		s.X += float64(chars) * e.view.Geometry().CharWidth
		e.view.SetScroll(s)
	}
	e.cur.Reproject()
}
