package backend

import (
	"github.com/dshills/caret/internal/renderer/core"
)

// ScreenBuffer provides double-buffered rendering with change tracking.
// The painter draws a whole frame into the back buffer; Flush sends only
// the cells that differ from the previously flushed frame.
type ScreenBuffer struct {
	width, height int
	front         [][]core.Cell
	back          [][]core.Cell
	fullRedraw    bool
}

// NewScreenBuffer creates a screen buffer with the given dimensions.
func NewScreenBuffer(width, height int) *ScreenBuffer {
	sb := &ScreenBuffer{
		width:      max(width, 0),
		height:     max(height, 0),
		fullRedraw: true,
	}
	sb.allocate()
	return sb
}

func (sb *ScreenBuffer) allocate() {
	sb.front = make([][]core.Cell, sb.height)
	sb.back = make([][]core.Cell, sb.height)

	for y := 0; y < sb.height; y++ {
		sb.front[y] = make([]core.Cell, sb.width)
		sb.back[y] = make([]core.Cell, sb.width)
		for x := 0; x < sb.width; x++ {
			sb.front[y][x] = core.EmptyCell()
			sb.back[y][x] = core.EmptyCell()
		}
	}
}

// Resize resizes the buffer. Content is discarded and the next flush
// redraws every cell.
func (sb *ScreenBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == sb.width && height == sb.height {
		return
	}
	sb.width = width
	sb.height = height
	sb.allocate()
	sb.fullRedraw = true
}

// Size returns the buffer dimensions.
func (sb *ScreenBuffer) Size() (width, height int) {
	return sb.width, sb.height
}

// SetCell sets a cell in the back buffer.
func (sb *ScreenBuffer) SetCell(x, y int, cell core.Cell) {
	if x < 0 || x >= sb.width || y < 0 || y >= sb.height {
		return
	}
	sb.back[y][x] = cell
}

// Cell returns a cell from the back buffer.
func (sb *ScreenBuffer) Cell(x, y int) core.Cell {
	if x < 0 || x >= sb.width || y < 0 || y >= sb.height {
		return core.EmptyCell()
	}
	return sb.back[y][x]
}

// Fill fills a rectangle with the given cell.
func (sb *ScreenBuffer) Fill(rect core.ScreenRect, cell core.Cell) {
	for y := max(rect.Top, 0); y < rect.Bottom && y < sb.height; y++ {
		for x := max(rect.Left, 0); x < rect.Right && x < sb.width; x++ {
			sb.back[y][x] = cell
		}
	}
}

// Restyle applies fn to the style of every cell in rect, keeping content.
func (sb *ScreenBuffer) Restyle(rect core.ScreenRect, fn func(core.Style) core.Style) {
	for y := max(rect.Top, 0); y < rect.Bottom && y < sb.height; y++ {
		for x := max(rect.Left, 0); x < rect.Right && x < sb.width; x++ {
			sb.back[y][x].Style = fn(sb.back[y][x].Style)
		}
	}
}

// Clear clears the back buffer with empty cells.
func (sb *ScreenBuffer) Clear() {
	sb.Fill(core.ScreenRect{Bottom: sb.height, Right: sb.width}, core.EmptyCell())
}

// DiffChange represents a cell change for synchronization.
type DiffChange struct {
	X, Y int
	Cell core.Cell
}

// ComputeDiff returns the changes needed to update the display, or nil when
// the back buffer matches what was last flushed.
func (sb *ScreenBuffer) ComputeDiff() []DiffChange {
	var changes []DiffChange
	for y := 0; y < sb.height; y++ {
		for x := 0; x < sb.width; x++ {
			if sb.fullRedraw || !sb.back[y][x].Equals(sb.front[y][x]) {
				changes = append(changes, DiffChange{X: x, Y: y, Cell: sb.back[y][x]})
			}
		}
	}
	return changes
}

// Flush writes the changed cells to b, shows them, and makes the back
// buffer the new reference frame. It returns the number of cells written.
func (sb *ScreenBuffer) Flush(b Backend) int {
	changes := sb.ComputeDiff()
	for _, ch := range changes {
		b.SetCell(ch.X, ch.Y, ch.Cell)
	}
	for y := 0; y < sb.height; y++ {
		copy(sb.front[y], sb.back[y])
	}
	sb.fullRedraw = false
	b.Show()
	return len(changes)
}

// MarkFullRedraw forces a complete redraw on the next flush.
func (sb *ScreenBuffer) MarkFullRedraw() {
	sb.fullRedraw = true
}
