package buffer

import (
	"fmt"
	"strings"
)

// LineEnding specifies the line ending style used when the buffer is
// serialized. Lines are always stored without terminators.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// Buffer holds a document as an ordered sequence of lines.
// A Buffer always contains at least one line.
type Buffer struct {
	lines      []string
	revisionID RevisionID
	lineEnding LineEnding
}

// New creates a buffer holding a single empty line.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		lines:      []string{""},
		revisionID: NewRevisionID(),
		lineEnding: LineEndingLF,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewFromLines creates a buffer from an existing line sequence.
// The slice is copied. An empty slice yields a single empty line.
func NewFromLines(lines []string, opts ...Option) *Buffer {
	b := New(opts...)
	if len(lines) > 0 {
		b.lines = append([]string(nil), lines...)
	}
	return b
}

// NewFromString creates a buffer by splitting s on newlines.
// CRLF and CR terminators are normalized first.
func NewFromString(s string, opts ...Option) *Buffer {
	return NewFromLines(SplitLines(s), opts...)
}

// SplitLines normalizes line endings in s and splits it into lines.
// The result always has at least one element.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// Read Operations

// LineCount returns the number of lines. It is always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of a line without its terminator.
// Out-of-range lines return the empty string.
func (b *Buffer) Line(line int) string {
	if line < 0 || line >= len(b.lines) {
		return ""
	}
	return b.lines[line]
}

// LineLen returns the length of a line in characters.
func (b *Buffer) LineLen(line int) int {
	return CharCount(b.Line(line))
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// LinesRange returns a copy of lines [from, to). Bounds are clamped.
func (b *Buffer) LinesRange(from, to int) []string {
	from = clampInt(from, 0, len(b.lines))
	to = clampInt(to, from, len(b.lines))
	return append([]string(nil), b.lines[from:to]...)
}

// Text returns the full buffer content joined with the buffer's line ending.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, b.lineEnding.Sequence())
}

// TextRange returns the text between start and end, joined with "\n".
// The positions are clamped and ordered before slicing.
func (b *Buffer) TextRange(start, end Position) string {
	return strings.Join(b.RangeLines(start, end), "\n")
}

// RangeLines returns the text between start and end as one element per line
// touched: the tail of the start line, every line in between, and the head of
// the end line.
func (b *Buffer) RangeLines(start, end Position) []string {
	r := Range{Start: b.Clamp(start), End: b.Clamp(end)}.Normalize()
	if r.IsSingleLine() {
		return []string{SliceChars(b.lines[r.Start.Line], r.Start.Char, r.End.Char)}
	}
	out := make([]string, 0, r.LineCount())
	_, head := SplitChars(b.lines[r.Start.Line], r.Start.Char)
	out = append(out, head)
	out = append(out, b.lines[r.Start.Line+1:r.End.Line]...)
	tail, _ := SplitChars(b.lines[r.End.Line], r.End.Char)
	return append(out, tail)
}

// End returns the position after the last character of the last line.
func (b *Buffer) End() Position {
	last := len(b.lines) - 1
	return Position{Line: last, Char: CharCount(b.lines[last])}
}

// Clamp returns pos moved into document bounds: line into [0, LineCount-1]
// and char into [0, LineLen(line)].
func (b *Buffer) Clamp(pos Position) Position {
	pos.Line = clampInt(pos.Line, 0, len(b.lines)-1)
	pos.Char = clampInt(pos.Char, 0, CharCount(b.lines[pos.Line]))
	return pos
}

// CharAt returns the character at pos and whether one exists there.
func (b *Buffer) CharAt(pos Position) (rune, bool) {
	if pos.Line < 0 || pos.Line >= len(b.lines) {
		return 0, false
	}
	return CharAt(b.lines[pos.Line], pos.Char)
}

// IsEmpty returns true if the buffer holds a single empty line.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && b.lines[0] == ""
}

// Write Operations

// InsertCharAt inserts text into line pos.Line at character offset pos.Char.
// text must not contain newlines; use SplitLineAt for those.
// It panics if pos.Line is out of range, which well-formed callers never do.
func (b *Buffer) InsertCharAt(pos Position, text string) {
	b.mustLine(pos.Line)
	b.lines[pos.Line] = InsertChars(b.lines[pos.Line], pos.Char, text)
	b.touch()
}

// RemoveCharAt removes the character at pos and returns it.
// The boolean is false when no character exists at pos.
func (b *Buffer) RemoveCharAt(pos Position) (rune, bool) {
	if pos.Line < 0 || pos.Line >= len(b.lines) {
		return 0, false
	}
	r, ok := CharAt(b.lines[pos.Line], pos.Char)
	if !ok {
		return 0, false
	}
	b.lines[pos.Line], _ = RemoveChars(b.lines[pos.Line], pos.Char, 1)
	b.touch()
	return r, true
}

// RemoveChars removes n characters starting at pos and returns them.
func (b *Buffer) RemoveChars(pos Position, n int) string {
	b.mustLine(pos.Line)
	var removed string
	b.lines[pos.Line], removed = RemoveChars(b.lines[pos.Line], pos.Char, n)
	b.touch()
	return removed
}

// SplitLineAt truncates line pos.Line at pos.Char and inserts the remainder
// as a new line directly after it.
func (b *Buffer) SplitLineAt(pos Position) {
	b.mustLine(pos.Line)
	head, tail := SplitChars(b.lines[pos.Line], pos.Char)
	b.lines[pos.Line] = head
	b.lines = insertAt(b.lines, pos.Line+1, tail)
	b.touch()
}

// MergeLineIntoPrevious appends line to line-1 and removes line.
// It returns the join position in the merged line and the text that was
// moved. Merging line 0 is a no-op.
func (b *Buffer) MergeLineIntoPrevious(line int) (Position, string) {
	if line <= 0 || line >= len(b.lines) {
		return Position{}, ""
	}
	moved := b.lines[line]
	join := Position{Line: line - 1, Char: CharCount(b.lines[line-1])}
	b.lines[line-1] += moved
	b.lines = removeAt(b.lines, line)
	b.touch()
	return join, moved
}

// RemoveLine removes a line and returns its text.
// Removing the only line leaves a single empty line.
func (b *Buffer) RemoveLine(line int) string {
	b.mustLine(line)
	text := b.lines[line]
	if len(b.lines) == 1 {
		b.lines[0] = ""
	} else {
		b.lines = removeAt(b.lines, line)
	}
	b.touch()
	return text
}

// InsertLine inserts text as a new line at index line.
// line may equal LineCount to append.
func (b *Buffer) InsertLine(line int, text string) {
	if line < 0 || line > len(b.lines) {
		panic(fmt.Sprintf("buffer: insert line %d out of range [0,%d]", line, len(b.lines)))
	}
	b.lines = insertAt(b.lines, line, text)
	b.touch()
}

// InsertLinesAt inserts multi-line text at pos. parts holds one element per
// line: parts[0] is joined to the text before pos, and the last part is
// joined to the text after pos. It returns the position after the inserted
// text.
func (b *Buffer) InsertLinesAt(pos Position, parts []string) Position {
	b.mustLine(pos.Line)
	if len(parts) == 0 {
		return pos
	}
	if len(parts) == 1 {
		b.InsertCharAt(pos, parts[0])
		return Position{Line: pos.Line, Char: pos.Char + CharCount(parts[0])}
	}
	head, tail := SplitChars(b.lines[pos.Line], pos.Char)
	last := parts[len(parts)-1]
	repl := make([]string, 0, len(parts))
	repl = append(repl, head+parts[0])
	repl = append(repl, parts[1:len(parts)-1]...)
	repl = append(repl, last+tail)
	b.SpliceLines(pos.Line, pos.Line+1, repl)
	return Position{Line: pos.Line + len(parts) - 1, Char: CharCount(last)}
}

// ReplaceRange deletes the text spanning [start, end) and inserts
// replacement at start. replacement must not contain newlines.
// It returns the removed text as one element per touched line (see
// RangeLines).
func (b *Buffer) ReplaceRange(start, end Position, replacement string) []string {
	r := Range{Start: b.Clamp(start), End: b.Clamp(end)}.Normalize()
	removed := b.RangeLines(r.Start, r.End)

	prefix, _ := SplitChars(b.lines[r.Start.Line], r.Start.Char)
	_, suffix := SplitChars(b.lines[r.End.Line], r.End.Char)
	merged := prefix + replacement + suffix

	switch {
	case r.IsSingleLine():
		b.lines[r.Start.Line] = merged
	case r.Start.Line+1 == r.End.Line:
		// The end line shifts up into the start line's slot.
		b.lines = removeAt(b.lines, r.Start.Line)
		b.lines[r.Start.Line] = merged
	default:
		b.lines = append(b.lines[:r.Start.Line], b.lines[r.End.Line:]...)
		b.lines[r.Start.Line] = merged
	}
	b.touch()
	return removed
}

// SpliceLines replaces lines [from, to) with repl.
// If the result would be empty, the buffer is reset to a single empty line.
func (b *Buffer) SpliceLines(from, to int, repl []string) {
	from = clampInt(from, 0, len(b.lines))
	to = clampInt(to, from, len(b.lines))

	out := make([]string, 0, len(b.lines)-(to-from)+len(repl))
	out = append(out, b.lines[:from]...)
	out = append(out, repl...)
	out = append(out, b.lines[to:]...)
	if len(out) == 0 {
		out = []string{""}
	}
	b.lines = out
	b.touch()
}

// Metadata

// RevisionID returns the current revision identifier.
// It changes after every mutation.
func (b *Buffer) RevisionID() RevisionID {
	return b.revisionID
}

// LineEnding returns the line ending used by Text.
func (b *Buffer) LineEnding() LineEnding {
	return b.lineEnding
}

func (b *Buffer) touch() {
	b.revisionID = NewRevisionID()
}

func (b *Buffer) mustLine(line int) {
	if line < 0 || line >= len(b.lines) {
		panic(fmt.Sprintf("buffer: line %d out of range [0,%d)", line, len(b.lines)))
	}
}

func insertAt(lines []string, i int, s string) []string {
	lines = append(lines, "")
	copy(lines[i+1:], lines[i:])
	lines[i] = s
	return lines
}

func removeAt(lines []string, i int) []string {
	return append(lines[:i], lines[i+1:]...)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
