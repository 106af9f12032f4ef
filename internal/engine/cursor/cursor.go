package cursor

import (
	"fmt"

	"github.com/dshills/caret/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Projector maps a buffer position to its pixel location.
type Projector interface {
	IndexToPixel(pos Position) (x, y float64)
}

// MoveListener is called after the cursor position changes.
type MoveListener func(pos Position)

// Option configures a Cursor.
type Option func(*Cursor)

// WithProjector sets the projector used for the cached pixel position.
func WithProjector(p Projector) Option {
	return func(c *Cursor) {
		c.projector = p
	}
}

// WithListener registers a move listener at construction.
func WithListener(fn MoveListener) Option {
	return func(c *Cursor) {
		c.listeners = append(c.listeners, fn)
	}
}

// Cursor is the caret of a single editor.
type Cursor struct {
	buf       *buffer.Buffer
	pos       Position
	x, y      float64
	projector Projector
	listeners []MoveListener
}

// New creates a cursor at (0,0) over buf.
func New(buf *buffer.Buffer, opts ...Option) *Cursor {
	c := &Cursor{buf: buf}
	for _, opt := range opts {
		opt(c)
	}
	c.project()
	return c
}

// Position returns the current caret position.
func (c *Cursor) Position() Position {
	return c.pos
}

// Line returns the current line index.
func (c *Cursor) Line() int {
	return c.pos.Line
}

// Char returns the current character index.
func (c *Cursor) Char() int {
	return c.pos.Char
}

// Pixel returns the cached pixel projection of the caret.
func (c *Cursor) Pixel() (x, y float64) {
	return c.x, c.y
}

// String returns a string representation of the cursor.
func (c *Cursor) String() string {
	return fmt.Sprintf("Cursor%s", c.pos)
}

// SetLine moves the caret to line n. Setting the current value is a no-op.
func (c *Cursor) SetLine(n int) {
	if n == c.pos.Line {
		return
	}
	c.apply(Position{Line: n, Char: c.pos.Char})
}

// SetChar moves the caret to character n on the current line.
// Setting the current value is a no-op.
func (c *Cursor) SetChar(n int) {
	if n == c.pos.Char {
		return
	}
	c.apply(Position{Line: c.pos.Line, Char: n})
}

// SetPosition moves the caret to pos in a single update.
func (c *Cursor) SetPosition(pos Position) {
	if pos == c.pos {
		return
	}
	c.apply(pos)
}

// Sync re-clamps and re-projects the caret and notifies listeners even when
// the position is unchanged. Call it after the buffer content changed
// underneath the cursor.
func (c *Cursor) Sync() {
	c.pos = c.buf.Clamp(c.pos)
	c.project()
	c.notify()
}

// Reproject refreshes the cached pixel position without notifying
// listeners. Call it when the viewport geometry changes.
func (c *Cursor) Reproject() {
	c.project()
}

// MoveUp moves one line up. It reports whether the line changed.
func (c *Cursor) MoveUp() bool {
	if c.pos.Line == 0 {
		return false
	}
	c.SetLine(c.pos.Line - 1)
	return true
}

// MoveDown moves one line down, keeping the character index subject to the
// new line's length. It reports whether the line changed.
func (c *Cursor) MoveDown() bool {
	before := c.pos.Line
	c.SetLine(c.pos.Line + 1)
	return c.pos.Line != before
}

// MoveLeft moves one character left. It does not wrap to the previous line.
func (c *Cursor) MoveLeft() bool {
	if c.pos.Char == 0 {
		return false
	}
	c.SetChar(c.pos.Char - 1)
	return true
}

// MoveRight moves one character right. It does not wrap to the next line.
func (c *Cursor) MoveRight() bool {
	before := c.pos.Char
	c.SetChar(c.pos.Char + 1)
	return c.pos.Char != before
}

// MoveToEnd moves the caret to the end of the document.
func (c *Cursor) MoveToEnd() {
	c.SetPosition(c.buf.End())
}

func (c *Cursor) apply(target Position) {
	prev := c.pos
	c.pos = c.buf.Clamp(target)
	c.project()
	if c.pos != prev {
		c.notify()
	}
}

func (c *Cursor) project() {
	if c.projector == nil {
		c.x, c.y = 0, 0
		return
	}
	c.x, c.y = c.projector.IndexToPixel(c.pos)
}

func (c *Cursor) notify() {
	for _, fn := range c.listeners {
		fn(c.pos)
	}
}
