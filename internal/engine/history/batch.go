package history

import (
	"time"

	"github.com/dshills/caret/internal/engine/buffer"
)

// Batch is the pending group of actions not yet flushed into an Entry.
type Batch struct {
	StartedAt     time.Time
	LastActivity  time.Time
	CursorAtStart Position
	Actions       []Action
}

// touched returns the inclusive line range affected by the batch, in the
// numbering of the document after every action was applied.
func (b *Batch) touched() (lo, hi int) {
	lo, hi = -1, -1
	for _, a := range b.Actions {
		at, before, after := a.span()
		if lo >= 0 {
			lo = remap(lo, at, before, after, false)
			hi = remap(hi, at, before, after, true)
		}
		end := at + after - 1
		if lo < 0 || at < lo {
			lo = at
		}
		if end > hi {
			hi = end
		}
	}
	return lo, hi
}

// remap moves line x across an edit that replaced lines [at, at+before)
// with lines [at, at+after). Lines inside the edited block map to its first
// line (low end) or last line (high end).
func remap(x, at, before, after int, high bool) int {
	switch {
	case x < at:
		return x
	case x >= at+before:
		return x + after - before
	case high:
		return at + after - 1
	default:
		return at
	}
}

// coalesce builds the entry for the batch against the current buffer.
func (b *Batch) coalesce(buf *buffer.Buffer) Entry {
	lo, hi := b.touched()
	after := buf.LinesRange(lo, hi+1)

	w := buffer.NewFromLines(after)
	for i := len(b.Actions) - 1; i >= 0; i-- {
		b.Actions[i].invert(w, lo)
	}
	before := w.Lines()

	kind := AddText
	if len(before) > len(after) {
		kind = RemoveText
	}

	return Entry{
		Timestamp:     b.LastActivity,
		CursorAtStart: b.CursorAtStart,
		Kind:          kind,
		Start:         lo,
		End:           hi,
		Lines:         before,
		Actions:       len(b.Actions),
	}
}
