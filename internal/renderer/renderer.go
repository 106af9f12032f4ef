package renderer

import (
	"math"
	"sync"

	"github.com/dshills/caret/internal/renderer/backend"
	"github.com/dshills/caret/internal/renderer/core"
	"github.com/dshills/caret/internal/renderer/gutter"
	"github.com/dshills/caret/internal/renderer/highlight"
)

// Options configures the renderer.
type Options struct {
	CursorStyle backend.CursorStyle
	Theme       Theme
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		CursorStyle: backend.CursorBar,
		Theme:       DefaultTheme(),
	}
}

// Scene is everything needed to paint one frame. All geometry is in the
// engine's pixel space; LineHeight and CharWidth give the size of one
// terminal cell in those pixels.
type Scene struct {
	// Lines holds the visible lines, the first being buffer line FirstLine.
	Lines     []string
	FirstLine int
	LineCount int

	Viewport    core.Rect
	LineHeight  float64
	CharWidth   float64
	Scroll      core.Point
	GutterWidth float64

	Cursor        core.Rect
	CursorLine    int
	CursorVisible bool

	Regions []highlight.Region
}

// Renderer paints scenes onto a backend.
type Renderer struct {
	mu sync.Mutex

	opts    Options
	backend backend.Backend
	screen  *backend.ScreenBuffer
	gutter  *gutter.Gutter

	frameCount uint64
}

// New creates a renderer drawing to b.
func New(b backend.Backend, opts Options) *Renderer {
	width, height := b.Size()
	b.SetCursorStyle(opts.CursorStyle)
	return &Renderer{
		opts:    opts,
		backend: b,
		screen:  backend.NewScreenBuffer(width, height),
		gutter:  gutter.New(1),
	}
}

// Options returns the current options.
func (r *Renderer) Options() Options {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opts
}

// Invalidate forces the next frame to redraw every cell, e.g. after the
// terminal was resized or cleared.
func (r *Renderer) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.screen.MarkFullRedraw()
}

// FrameCount returns the number of frames rendered.
func (r *Renderer) FrameCount() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frameCount
}

// Render paints the scene and returns the number of cells sent to the
// backend.
func (r *Renderer) Render(s Scene) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	width, height := r.backend.Size()
	r.screen.Resize(width, height)
	r.screen.Clear()

	g := newGrid(s)
	r.paintLines(s, g)
	r.paintRegions(s, g)
	r.placeCursor(s, g)

	r.frameCount++
	return r.screen.Flush(r.backend)
}

// grid is the scene geometry converted to terminal cells.
type grid struct {
	cw, lh     float64
	area       core.ScreenRect // viewport
	textLeft   int
	scrollCols int
}

func newGrid(s Scene) grid {
	g := grid{cw: s.CharWidth, lh: s.LineHeight}
	if g.cw <= 0 {
		g.cw = 1
	}
	if g.lh <= 0 {
		g.lh = 1
	}
	g.area = g.cells(s.Viewport)
	g.textLeft = g.area.Left + int(math.Round(s.GutterWidth/g.cw))
	g.scrollCols = int(math.Floor(s.Scroll.X / g.cw))
	return g
}

// cells converts a pixel rect to the cell range it covers.
func (g grid) cells(r core.Rect) core.ScreenRect {
	return core.Rect{
		Min: core.Pt(r.Min.X/g.cw, r.Min.Y/g.lh),
		Max: core.Pt(r.Max.X/g.cw, r.Max.Y/g.lh),
	}.Cells()
}

// clip limits r to the text area of the viewport.
func (g grid) clip(r core.ScreenRect) core.ScreenRect {
	r.Top = max(r.Top, g.area.Top)
	r.Bottom = min(r.Bottom, g.area.Bottom)
	r.Left = max(r.Left, g.textLeft)
	r.Right = min(r.Right, g.area.Right)
	return r
}

func (r *Renderer) paintLines(s Scene, g grid) {
	theme := r.opts.Theme
	showGutter := g.textLeft > g.area.Left
	if showGutter {
		r.gutter.SetLineCount(s.LineCount)
		r.gutter.SetCurrentLine(s.CursorLine)
	}

	for i, line := range s.Lines {
		row := g.area.Top + i
		if row >= g.area.Bottom {
			break
		}

		if showGutter {
			for j, c := range r.gutter.RenderLine(s.FirstLine + i) {
				col := g.area.Left + j
				if col >= g.textLeft {
					break
				}
				style := theme.Gutter
				if c.Style == gutter.StyleCurrentLine {
					style = theme.CurrentLine
				}
				r.screen.SetCell(col, row, core.Cell{Rune: c.Rune, Width: 1, Style: style})
			}
		}

		for _, glyph := range Segment(line) {
			col := g.textLeft + glyph.Char - g.scrollCols
			if col < g.textLeft {
				continue
			}
			if col >= g.area.Right {
				break
			}
			r.screen.SetCell(col, row, glyph.Cell(theme.Text))
		}
	}
}

func (r *Renderer) paintRegions(s Scene, g grid) {
	theme := r.opts.Theme
	// Later layers win: words under selection under brackets.
	for _, kind := range []highlight.Kind{highlight.KindWord, highlight.KindSelection, highlight.KindBracket} {
		var layer core.Style
		switch kind {
		case highlight.KindWord:
			layer = theme.Word
		case highlight.KindSelection:
			layer = theme.Selection
		case highlight.KindBracket:
			layer = theme.Bracket
		}
		for _, region := range s.Regions {
			if region.Kind != kind {
				continue
			}
			visible := region.Rect.Intersect(s.Viewport)
			if visible.IsEmpty() {
				continue
			}
			rect := g.clip(g.cells(visible))
			r.screen.Restyle(rect, func(base core.Style) core.Style {
				return overlay(base, layer)
			})
		}
	}
}

func (r *Renderer) placeCursor(s Scene, g grid) {
	if !s.CursorVisible {
		r.backend.HideCursor()
		return
	}
	c := g.cells(s.Cursor)
	if c.Left < g.textLeft || c.Left >= g.area.Right || c.Top < g.area.Top || c.Top >= g.area.Bottom {
		r.backend.HideCursor()
		return
	}
	r.backend.ShowCursor(c.Left, c.Top)
}
