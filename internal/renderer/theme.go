package renderer

import "github.com/dshills/caret/internal/renderer/core"

// Theme holds the styles used for each part of a frame.
type Theme struct {
	Text        core.Style
	Gutter      core.Style
	CurrentLine core.Style // gutter number of the cursor line
	Selection   core.Style
	Bracket     core.Style
	Word        core.Style
}

// DefaultTheme returns a dark theme that works on 24-bit terminals.
func DefaultTheme() Theme {
	text := core.DefaultStyle()
	return Theme{
		Text:        text,
		Gutter:      text.WithForeground(mustHex("#858585")),
		CurrentLine: text.WithForeground(mustHex("#c6c6c6")).WithAttributes(core.AttrBold),
		Selection:   text.WithBackground(mustHex("#264f78")),
		Bracket:     text.WithBackground(mustHex("#515151")).WithAttributes(core.AttrBold),
		Word:        text.WithBackground(mustHex("#3a3d41")),
	}
}

func mustHex(hex string) core.Color {
	c, err := core.ColorFromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// overlay returns the style a highlight layer gives a cell already drawn
// with base. Only the non-default parts of layer replace base.
func overlay(base, layer core.Style) core.Style {
	if !layer.Foreground.IsDefault() {
		base.Foreground = layer.Foreground
	}
	if !layer.Background.IsDefault() {
		base.Background = layer.Background
	}
	base.Attributes |= layer.Attributes
	return base
}
