package mouse

import (
	"time"

	"github.com/dshills/caret/internal/input/key"
)

// Button represents the button state in a raw mouse report.
type Button uint8

const (
	// ButtonNone means no button is held; it ends a press.
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonScrollUp
	ButtonScrollDown
	ButtonScrollLeft
	ButtonScrollRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonScrollUp:
		return "scroll-up"
	case ButtonScrollDown:
		return "scroll-down"
	case ButtonScrollLeft:
		return "scroll-left"
	case ButtonScrollRight:
		return "scroll-right"
	default:
		return "none"
	}
}

// IsScroll returns true if this is a scroll button.
func (b Button) IsScroll() bool {
	return b >= ButtonScrollUp && b <= ButtonScrollRight
}

// Action is the gesture a tracked event represents.
type Action uint8

const (
	ActionNone Action = iota
	ActionClick
	ActionDoubleClick
	ActionDragStart
	ActionDrag
	ActionDragEnd
	ActionWheel
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionClick:
		return "click"
	case ActionDoubleClick:
		return "double-click"
	case ActionDragStart:
		return "drag-start"
	case ActionDrag:
		return "drag"
	case ActionDragEnd:
		return "drag-end"
	case ActionWheel:
		return "wheel"
	default:
		return "none"
	}
}

// Position represents a screen coordinate in cells.
type Position struct {
	X int
	Y int
}

// Distance returns the Manhattan distance (|dx| + |dy|) between two positions.
func (p Position) Distance(other Position) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Report is one raw mouse sample from the terminal.
type Report struct {
	Position  Position
	Button    Button
	Modifiers key.Modifier
	Timestamp time.Time
}

// Event is a recognised pointer gesture.
type Event struct {
	Action    Action
	Position  Position
	Modifiers key.Modifier

	// DX and DY are the wheel distance in lines (rows) and characters
	// (columns) for ActionWheel. Positive values scroll towards the end of
	// the document.
	DX, DY int
}

// Config configures gesture recognition.
type Config struct {
	// DoubleClickTime is the maximum time between clicks for a double-click.
	DoubleClickTime time.Duration

	// DoubleClickDistance is the maximum distance between clicks for a double-click.
	DoubleClickDistance int

	// ScrollLines is the number of lines to scroll per wheel tick.
	ScrollLines int

	// ScrollLinesShift is the number of lines when Shift is held.
	ScrollLinesShift int
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		DoubleClickTime:     400 * time.Millisecond,
		DoubleClickDistance: 1,
		ScrollLines:         3,
		ScrollLinesShift:    1,
	}
}

// Tracker folds raw reports into gestures. It is not safe for concurrent
// use; the host feeds it from its event loop.
type Tracker struct {
	config Config
	click  *clickTracker
	drag   *dragTracker
}

// NewTracker creates a tracker with the given configuration.
func NewTracker(config Config) *Tracker {
	return &Tracker{
		config: config,
		click:  newClickTracker(config.DoubleClickTime, config.DoubleClickDistance),
		drag:   newDragTracker(),
	}
}

// Feed processes one report and returns the gestures it completes, in
// order. Most reports produce zero or one event; a left press produces
// Click and DragStart.
func (t *Tracker) Feed(r Report) []Event {
	if r.Button.IsScroll() {
		return t.wheel(r)
	}

	switch {
	case r.Button == ButtonLeft && !t.drag.active:
		return t.press(r)

	case r.Button == ButtonLeft:
		if !t.drag.update(r.Position) {
			return nil
		}
		return []Event{{Action: ActionDrag, Position: r.Position, Modifiers: r.Modifiers}}

	case r.Button == ButtonNone && t.drag.active:
		t.drag.end()
		return []Event{{Action: ActionDragEnd, Position: r.Position, Modifiers: r.Modifiers}}

	case r.Button == ButtonNone && t.drag.suppressed:
		t.drag.suppressed = false
	}
	return nil
}

func (t *Tracker) press(r Report) []Event {
	if t.drag.suppressed {
		// Still held after a double-click.
		return nil
	}
	if t.click.recordClick(r.Position, r.Timestamp) == 2 {
		t.drag.suppressed = true
		return []Event{{Action: ActionDoubleClick, Position: r.Position, Modifiers: r.Modifiers}}
	}
	t.drag.start(r.Position)
	return []Event{
		{Action: ActionClick, Position: r.Position, Modifiers: r.Modifiers},
		{Action: ActionDragStart, Position: r.Position, Modifiers: r.Modifiers},
	}
}

func (t *Tracker) wheel(r Report) []Event {
	lines := t.config.ScrollLines
	if r.Modifiers.HasShift() {
		lines = t.config.ScrollLinesShift
	}

	ev := Event{Action: ActionWheel, Position: r.Position, Modifiers: r.Modifiers}
	switch r.Button {
	case ButtonScrollUp:
		ev.DY = -lines
	case ButtonScrollDown:
		ev.DY = lines
	case ButtonScrollLeft:
		ev.DX = -lines
	case ButtonScrollRight:
		ev.DX = lines
	}
	return []Event{ev}
}

// Reset clears all tracking state.
func (t *Tracker) Reset() {
	t.click.reset()
	t.drag.end()
	t.drag.suppressed = false
}

// IsDragging returns true if a drag operation is in progress.
func (t *Tracker) IsDragging() bool {
	return t.drag.active
}
