package renderer

import (
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/dshills/caret/internal/renderer/core"
)

// Glyph is one grapheme cluster of a line together with the character
// index of its first rune.
type Glyph struct {
	Char  int
	Runes []rune
	Width int
}

// Segment splits line into grapheme clusters. A cluster spans as many
// character indexes as it has runes; the painter places it at the column of
// its first rune.
func Segment(line string) []Glyph {
	glyphs := make([]Glyph, 0, len(line))
	state := -1
	char := 0
	for len(line) > 0 {
		var cluster string
		var width int
		cluster, line, width, state = uniseg.FirstGraphemeClusterInString(line, state)
		runes := []rune(cluster)
		glyphs = append(glyphs, Glyph{Char: char, Runes: runes, Width: width})
		char += len(runes)
	}
	return glyphs
}

// Cell converts the glyph to a terminal cell. Tabs and other control
// characters are drawn as a blank.
func (g Glyph) Cell(style core.Style) core.Cell {
	if len(g.Runes) == 0 || unicode.IsControl(g.Runes[0]) {
		return core.Cell{Rune: ' ', Width: 1, Style: style}
	}
	c := core.Cell{Rune: g.Runes[0], Width: max(g.Width, 1), Style: style}
	if len(g.Runes) > 1 {
		c.Combining = g.Runes[1:]
	}
	return c
}
