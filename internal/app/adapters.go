package app

import (
	"github.com/dshills/caret/internal/config"
	"github.com/dshills/caret/internal/engine"
	"github.com/dshills/caret/internal/renderer"
	"github.com/dshills/caret/internal/renderer/core"
)

// GeometryFor describes a terminal of width by height cells in the pixel
// space set by the view configuration.
func GeometryFor(view config.ViewConfig, width, height int) engine.Geometry {
	cw, lh := view.CharWidth, view.LineHeight
	return engine.Geometry{
		Viewport: core.Rect{
			Min: core.Pt(0, 0),
			Max: core.Pt(float64(width)*cw, float64(height)*lh),
		},
		LineHeight: lh,
		CharWidth:  cw,
		Gutter:     view.Gutter,
	}
}

// SceneFromOutput converts an editor frame into a paintable scene.
func SceneFromOutput(out engine.Output, geo engine.Geometry) renderer.Scene {
	return renderer.Scene{
		Lines:     out.Lines,
		FirstLine: out.FirstLine,
		LineCount: out.LineCount,

		Viewport:    geo.Viewport,
		LineHeight:  geo.LineHeight,
		CharWidth:   geo.CharWidth,
		Scroll:      out.Scroll,
		GutterWidth: out.GutterWidth,

		Cursor:        out.Cursor,
		CursorLine:    out.CursorPos.Line,
		CursorVisible: out.CursorVisible,

		Regions: out.Regions(),
	}
}
