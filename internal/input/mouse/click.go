package mouse

import "time"

// clickTracker counts clicks for double-click detection.
type clickTracker struct {
	maxTime     time.Duration
	maxDistance int

	lastPos   Position
	lastTime  time.Time
	lastCount int
}

func newClickTracker(maxTime time.Duration, maxDistance int) *clickTracker {
	return &clickTracker{
		maxTime:     maxTime,
		maxDistance: maxDistance,
	}
}

// recordClick records a click and returns the click count, 1 or 2. A click
// after a double-click starts a new sequence. A zero timestamp is replaced
// with time.Now().
func (t *clickTracker) recordClick(pos Position, timestamp time.Time) int {
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	if t.lastCount == 1 && t.isPartOfSequence(pos, timestamp) {
		t.lastCount = 2
	} else {
		t.lastCount = 1
	}

	t.lastPos = pos
	t.lastTime = timestamp
	return t.lastCount
}

func (t *clickTracker) isPartOfSequence(pos Position, timestamp time.Time) bool {
	if t.lastTime.IsZero() {
		return false
	}

	// Negative elapsed time means the clock went backwards.
	elapsed := timestamp.Sub(t.lastTime)
	if elapsed < 0 || elapsed > t.maxTime {
		return false
	}

	return pos.Distance(t.lastPos) <= t.maxDistance
}

func (t *clickTracker) reset() {
	t.lastCount = 0
	t.lastTime = time.Time{}
	t.lastPos = Position{}
}
