// Package engine provides the editing core of caret.
//
// The engine package is a facade that ties the document buffer, the cursor,
// the selection, bracket matching and undo history together behind a
// single frame-driven entry point, Editor.Update.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - buffer: the document as an ordered sequence of lines, with character
//     offset to byte offset conversion
//   - cursor: the caret, clamped into the buffer, with move listeners
//   - selection: drag anchor and endpoint, the normalized selection and
//     word-occurrence highlighting
//   - bracket: the bracket matcher state machine
//   - history: atomic edit actions coalesced into undoable entries
//
// Pixel geometry is delegated to renderer/viewport and highlight
// rectangles to renderer/highlight.
//
// # Frames
//
// The host calls Update once per frame with the events received since the
// previous frame and the current viewport geometry:
//
//	ed := engine.New(lines)
//	out := ed.Update(engine.Frame{
//		Now:      time.Now(),
//		Events:   events,
//		Geometry: geo,
//	})
//
// The history is ticked first so an idle batch becomes an undo entry. Events
// are then applied strictly in order. Afterwards the cursor is scrolled into
// view if it moved by keyboard, and the bracket pair and word occurrences
// are recomputed for the visible window. The returned Output carries
// everything a painter needs.
//
// # Errors
//
// Editing never fails. Out-of-range positions are clamped, missing bracket
// partners and word occurrences are empty results, and undo with an empty
// history reports false.
//
// # Thread Safety
//
// An Editor is not safe for concurrent use. The host owns it and calls it
// from a single goroutine.
package engine
