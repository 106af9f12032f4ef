// Package cursor provides the caret model for text editing.
//
// The cursor package handles:
//
//   - A single caret Position kept inside document bounds
//   - A cached pixel projection of the caret, derived through a Projector
//   - Arrow-key movement with ragged-line clamping
//   - Move notifications for derived state such as bracket matching
//
// Clamping:
//
// Every mutation re-clamps both coordinates: the line into
// [0, LineCount-1] and the character into [0, LineLen(line)]. Vertical
// movement keeps the character index rather than a visual column, so moving
// from a long line onto a short one lands at the short line's end and stays
// there.
//
// Basic usage:
//
//	buf := buffer.NewFromString("hello\nhi")
//	c := cursor.New(buf)
//
//	c.SetChar(5)   // (0:5)
//	c.MoveDown()   // (1:2), clamped to the shorter line
//
// Thread Safety:
//
// A Cursor is owned by a single editor and is not safe for concurrent use.
package cursor
