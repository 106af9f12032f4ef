// Package renderer paints editor frames onto a terminal backend.
//
// The editing engine produces a description of each frame in pixel space:
// the visible lines, the viewport geometry and the highlight rectangles for
// the cursor, selection, matched brackets and word occurrences. The
// renderer converts that description into terminal cells:
//
//	engine Output ──> Scene ──> ScreenBuffer ──> Backend (tcell)
//
// Text is segmented into grapheme clusters so combining marks stay attached
// to their base character. Each frame is drawn into a double-buffered
// ScreenBuffer and only changed cells are sent to the backend.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultOptions())
//	r.Render(scene)
package renderer
