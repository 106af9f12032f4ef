package history

import (
	"time"

	"github.com/dshills/caret/internal/engine/buffer"
)

// DefaultThreshold is the inactivity period after which a pending batch is
// flushed.
const DefaultThreshold = 2 * time.Second

// DefaultLimit is the default maximum number of entries kept.
const DefaultLimit = 1000

// Kind classifies an entry by its net effect on the line count.
type Kind uint8

const (
	// AddText means the batch did not reduce the line count.
	AddText Kind = iota
	// RemoveText means the batch reduced the line count.
	RemoveText
)

// String returns the name of the kind.
func (k Kind) String() string {
	if k == RemoveText {
		return "remove-text"
	}
	return "add-text"
}

// Entry is one coalesced, undoable batch.
type Entry struct {
	Timestamp     time.Time
	CursorAtStart Position
	Kind          Kind

	// Start and End are the inclusive line range the batch produced, in
	// document numbering at flush time.
	Start int
	End   int

	// Lines holds the content of the range before the batch.
	Lines []string

	// Actions is the number of atomic actions coalesced into the entry.
	Actions int
}

// Option configures a History.
type Option func(*History)

// WithThreshold sets the inactivity threshold.
func WithThreshold(d time.Duration) Option {
	return func(h *History) {
		h.SetThreshold(d)
	}
}

// WithLimit sets the maximum number of entries kept. Zero means unlimited.
func WithLimit(n int) Option {
	return func(h *History) {
		h.SetLimit(n)
	}
}

// WithFlushHook registers fn to be called with every entry pushed.
func WithFlushHook(fn func(Entry)) Option {
	return func(h *History) {
		h.onFlush = fn
	}
}

// History is the undo stack of one buffer.
type History struct {
	buf *buffer.Buffer

	entries []Entry
	pending *Batch

	threshold time.Duration
	limit     int
	onFlush   func(Entry)
}

// New creates an empty history over buf.
func New(buf *buffer.Buffer, opts ...Option) *History {
	h := &History{
		buf:       buf,
		threshold: DefaultThreshold,
		limit:     DefaultLimit,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Threshold returns the inactivity threshold.
func (h *History) Threshold() time.Duration {
	return h.threshold
}

// SetThreshold sets the inactivity threshold. Non-positive values are
// ignored.
func (h *History) SetThreshold(d time.Duration) {
	if d > 0 {
		h.threshold = d
	}
}

// SetLimit sets the maximum number of entries kept. Zero means unlimited.
func (h *History) SetLimit(n int) {
	if n < 0 {
		return
	}
	h.limit = n
	h.trim()
}

// Len returns the number of entries on the undo stack.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the undo stack, oldest first.
func (h *History) Entries() []Entry {
	return append([]Entry(nil), h.entries...)
}

// Pending returns the open batch, or nil.
func (h *History) Pending() *Batch {
	return h.pending
}

// Record appends a to the pending batch, creating the batch if needed with
// cursor as the position to restore on undo. If the batch has already been
// idle for the threshold, it is flushed right away.
func (h *History) Record(a Action, now time.Time, cursor Position) {
	if h.pending == nil {
		h.pending = &Batch{
			StartedAt:     now,
			LastActivity:  now,
			CursorAtStart: cursor,
		}
	}
	h.pending.Actions = append(h.pending.Actions, a)

	if now.Sub(h.pending.LastActivity) >= h.threshold {
		h.flush()
		return
	}
	h.pending.LastActivity = now
}

// Tick flushes the pending batch once it has been idle for the threshold.
// It must be called once per frame. It reports whether an entry was pushed.
func (h *History) Tick(now time.Time) bool {
	if h.pending == nil || now.Sub(h.pending.LastActivity) < h.threshold {
		return false
	}
	h.flush()
	return true
}

// Commit flushes the pending batch regardless of the threshold.
// It reports whether an entry was pushed.
func (h *History) Commit() bool {
	if h.pending == nil {
		return false
	}
	h.flush()
	return true
}

// Undo commits any pending batch, then pops the newest entry and restores
// the lines it covered. It returns the entry so the caller can restore the
// cursor. Undo on an empty stack is a no-op and reports false.
func (h *History) Undo() (Entry, bool) {
	h.Commit()
	if len(h.entries) == 0 {
		return Entry{}, false
	}

	e := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]

	h.buf.SpliceLines(e.Start, e.End+1, e.Lines)
	return e, true
}

// Clear drops all entries and any pending batch.
func (h *History) Clear() {
	h.entries = nil
	h.pending = nil
}

func (h *History) flush() {
	b := h.pending
	h.pending = nil
	if len(b.Actions) == 0 {
		return
	}

	e := b.coalesce(h.buf)
	h.entries = append(h.entries, e)
	h.trim()

	if h.onFlush != nil {
		h.onFlush(e)
	}
}

func (h *History) trim() {
	if h.limit > 0 && len(h.entries) > h.limit {
		excess := len(h.entries) - h.limit
		h.entries = h.entries[excess:]
	}
}
