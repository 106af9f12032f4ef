package buffer

import "fmt"

// Range represents a span between two positions.
// Start is inclusive and End is exclusive.
type Range struct {
	Start Position
	End   Position
}

// NewRange returns a normalized range between a and b.
func NewRange(a, b Position) Range {
	return Range{Start: a, End: b}.Normalize()
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s-%s)", r.Start, r.End)
}

// Normalize returns r with Start <= End in (line, char) order.
func (r Range) Normalize() Range {
	if r.End.Before(r.Start) {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsSingleLine returns true if the range starts and ends on the same line.
func (r Range) IsSingleLine() bool {
	return r.Start.Line == r.End.Line
}

// LineCount returns the number of lines the range touches.
func (r Range) LineCount() int {
	return r.End.Line - r.Start.Line + 1
}

// Contains returns true if pos lies within [Start, End).
func (r Range) Contains(pos Position) bool {
	return !pos.Before(r.Start) && pos.Before(r.End)
}
