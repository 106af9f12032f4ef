// Package mouse turns raw button reports into editor pointer gestures.
//
// Terminals report the mouse as a stream of "buttons currently held at
// (x, y)" samples. Tracker folds that stream into the gestures the editor
// understands:
//
//   - Click: left press; moves the cursor and clears the selection
//   - DoubleClick: second left press within the double-click window
//   - DragStart / Drag / DragEnd: left button held and moved
//   - Wheel: scroll ticks, scaled by the configured line count
//
// A left press always produces Click followed by DragStart so that a
// drag can begin from the press position. A double-click does not start
// a drag, leaving the word selection it creates in place.
package mouse
