package buffer

import (
	"fmt"
	"sync/atomic"
)

// Position represents a line and character position.
// Both Line and Char are 0-indexed.
// Char is measured in Unicode scalar values from the start of the line;
// Char == length(line) is the valid end-of-line position.
type Position struct {
	Line int // 0-indexed line number
	Char int // 0-indexed character (rune) index within the line
}

// Pos is shorthand for Position{Line: line, Char: char}.
func Pos(line, char int) Position {
	return Position{Line: line, Char: char}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Char)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
// Ordering is lexicographic on (Line, Char).
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Char < other.Char {
		return -1
	}
	if p.Char > other.Char {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the zero position (0:0).
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Char == 0
}

// RevisionID identifies a buffer revision.
// Each modification to the buffer creates a new revision.
type RevisionID uint64

// revisionCounter is used to generate unique revision IDs.
var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}
