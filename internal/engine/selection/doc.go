// Package selection tracks pointer and keyboard selections.
//
// A selection is built from a drag anchor (recorded at pointer-down or at
// the first shift-modified arrow) and a drag endpoint (updated on every
// pointer move). Each endpoint update republishes a normalized Range whose
// Start is never after its End.
//
// Replacing a selection deletes its text, optionally splices replacement
// text in at the start, moves the cursor, and clears all selection state.
// The selection, the drag anchor and endpoint, and the highlighted word
// share a lifecycle: Reset clears all of them together.
//
// word.go holds the word rules used for double-click selection and for
// locating whole-word occurrences in the visible lines.
package selection
