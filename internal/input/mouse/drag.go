package mouse

// dragTracker tracks the held left button.
type dragTracker struct {
	active     bool
	startPos   Position
	currentPos Position

	// suppressed is set while the button that produced a double-click is
	// still held; movement then does not drag.
	suppressed bool
}

func newDragTracker() *dragTracker {
	return &dragTracker{}
}

func (t *dragTracker) start(pos Position) {
	t.active = true
	t.startPos = pos
	t.currentPos = pos
}

// update moves the drag to pos and reports whether the position changed.
func (t *dragTracker) update(pos Position) bool {
	if !t.active || pos == t.currentPos {
		return false
	}
	t.currentPos = pos
	return true
}

func (t *dragTracker) end() {
	t.active = false
	t.startPos = Position{}
	t.currentPos = Position{}
}
