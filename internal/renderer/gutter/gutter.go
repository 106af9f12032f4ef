// Package gutter lays out the line-number column to the left of the text.
//
// The column is exactly as wide as the decimal digit count of the document's
// line count, with numbers right-aligned and 1-based. The line holding the
// cursor is reported with its own style so the painter can emphasize it.
package gutter

import "strconv"

// CellStyle identifies how a gutter cell should be drawn.
type CellStyle uint8

const (
	StyleNormal CellStyle = iota
	StyleCurrentLine
)

// Cell is one gutter column.
type Cell struct {
	Rune  rune
	Style CellStyle
}

// Gutter renders line numbers for a document.
type Gutter struct {
	lineCount   int
	currentLine int
}

// New creates a gutter for a document with lineCount lines.
func New(lineCount int) *Gutter {
	return &Gutter{lineCount: max(lineCount, 1)}
}

// SetLineCount updates the document size, which may change the width.
func (g *Gutter) SetLineCount(count int) {
	g.lineCount = max(count, 1)
}

// SetCurrentLine marks the line holding the cursor.
func (g *Gutter) SetCurrentLine(line int) {
	g.currentLine = line
}

// Width returns the number of columns the gutter occupies.
func (g *Gutter) Width() int {
	return countDigits(g.lineCount)
}

// RenderLine returns the cells for a 0-based buffer line. Lines past the
// end of the document render blank.
func (g *Gutter) RenderLine(line int) []Cell {
	width := g.Width()
	cells := make([]Cell, width)
	style := StyleNormal
	if line == g.currentLine {
		style = StyleCurrentLine
	}
	for i := range cells {
		cells[i] = Cell{Rune: ' ', Style: style}
	}
	if line < 0 || line >= g.lineCount {
		return cells
	}

	num := strconv.Itoa(line + 1)
	offset := width - len(num)
	for i, r := range num {
		cells[offset+i].Rune = r
	}
	return cells
}

func countDigits(n int) int {
	digits := 1
	for n >= 10 {
		digits++
		n /= 10
	}
	return digits
}
