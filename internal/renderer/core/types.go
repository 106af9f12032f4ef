// Package core provides shared types for the renderer subsystem.
// This package breaks import cycles between renderer, backend and the
// editing engine's highlight output.
package core

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Point is a position in pixel space. In a terminal host one pixel is one
// cell.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle in pixel space. Min is inclusive and
// Max is exclusive.
type Rect struct {
	Min, Max Point
}

// RectFromMinSize builds a rect from its top-left corner and size.
func RectFromMinSize(x, y, width, height float64) Rect {
	return Rect{Min: Point{X: x, Y: y}, Max: Point{X: x + width, Y: y + height}}
}

// Width returns the rect width.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the rect height.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// IsEmpty returns true if the rect has no area.
func (r Rect) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Contains returns true if p lies inside the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Intersect returns the overlap of two rects, or an empty rect.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		Min: Point{X: math.Max(r.Min.X, other.Min.X), Y: math.Max(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Min(r.Max.X, other.Max.X), Y: math.Min(r.Max.Y, other.Max.Y)},
	}
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}

// Cells converts the rect into the integer cell range it covers.
func (r Rect) Cells() ScreenRect {
	return ScreenRect{
		Top:    int(math.Floor(r.Min.Y)),
		Left:   int(math.Floor(r.Min.X)),
		Bottom: int(math.Ceil(r.Max.Y)),
		Right:  int(math.Ceil(r.Max.X)),
	}
}

// String returns a human-readable representation of the rect.
func (r Rect) String() string {
	return fmt.Sprintf("[%s-%s]", r.Min, r.Max)
}

// ScreenRect is a rectangle of terminal cells. Top/Left are inclusive and
// Bottom/Right are exclusive.
type ScreenRect struct {
	Top, Left, Bottom, Right int
}

// Width returns the number of columns.
func (r ScreenRect) Width() int {
	if r.Right <= r.Left {
		return 0
	}
	return r.Right - r.Left
}

// Height returns the number of rows.
func (r ScreenRect) Height() int {
	if r.Bottom <= r.Top {
		return 0
	}
	return r.Bottom - r.Top
}

// Attribute represents text attributes (bold, italic, etc.).
type Attribute uint16

// Text attribute flags.
const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << iota
	AttrDim                 // Faint/dim text
	AttrItalic              // Italic text
	AttrUnderline           // Underlined text
	AttrReverse             // Reverse video (swap fg/bg)
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Color is a true color value or the terminal's default color.
type Color struct {
	R, G, B uint8
	// Default indicates this is the terminal's default color.
	Default bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{Default: true}

// ColorFromRGB creates a true color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromHex parses "#rrggbb" or "#rgb".
func ColorFromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color: %s", hex)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// IsDefault returns true if this is the default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// String returns the color as "#rrggbb" or "default".
func (c Color) String() string {
	if c.Default {
		return "default"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Style represents the visual style of text.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle returns the default terminal style.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// WithForeground returns a new style with the given foreground color.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns a new style with the given background color.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// WithAttributes returns a new style with attrs added.
func (s Style) WithAttributes(attrs Attribute) Style {
	s.Attributes |= attrs
	return s
}

// Cell represents a single terminal cell.
type Cell struct {
	// Rune is the first rune of the grapheme shown in the cell.
	Rune rune

	// Combining holds any further runes of the grapheme.
	Combining []rune

	// Width is the display width of this cell. Continuation cells of wide
	// graphemes have width 0.
	Width int

	// Style is the visual style for this cell.
	Style Style
}

// EmptyCell returns a blank cell with default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: DefaultStyle()}
}

// ContinuationCell returns the placeholder stored to the right of a wide
// grapheme.
func ContinuationCell() Cell {
	return Cell{}
}

// Equals reports whether two cells render identically.
func (c Cell) Equals(other Cell) bool {
	if c.Rune != other.Rune || c.Width != other.Width || c.Style != other.Style {
		return false
	}
	return slices.Equal(c.Combining, other.Combining)
}

// IsContinuation returns true if this cell is covered by a wide grapheme to
// its left.
func (c Cell) IsContinuation() bool {
	return c.Width == 0 && c.Rune == 0
}

// String returns the grapheme shown in the cell.
func (c Cell) String() string {
	if c.IsContinuation() {
		return ""
	}
	return string(c.Rune) + string(c.Combining)
}
