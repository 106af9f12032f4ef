// Package history provides debounced, undo-only edit history for the text
// editor engine.
//
// # Actions
//
// Every primitive buffer mutation is described by an Action:
//   - InsertChar: text inserted into one line
//   - RemoveChar: one character removed left of a caret position
//   - SplitLine: a newline inserted, splitting one line in two
//   - RemoveLine: a line merged into the line above it
//   - ReplaceText: a selection replaced by single-line text
//
// # Batches
//
// Actions are collected into a pending Batch. A batch stays open while
// actions keep arriving within the inactivity threshold (two seconds by
// default). Once the editor has been idle for at least the threshold, the
// batch is flushed into one Entry:
//
//	h := history.New(buf)
//
//	h.Record(history.InsertChar{Pos: pos, Text: "x"}, now, cursorBefore)
//	...
//	h.Tick(now) // called once per frame
//
// Flushing snapshots the touched lines as they are now, then replays the
// inverse of each action in reverse order to rebuild the lines as they were
// before the batch. The entry keeps the before-lines; undo splices them back
// over the touched range.
//
// # Undo
//
// Undo commits any pending batch first, so the most recent edits are always
// undone first. There is no redo: an undone entry is discarded.
package history
