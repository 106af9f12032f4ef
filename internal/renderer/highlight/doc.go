// Package highlight builds the pixel rectangles the host paints under the
// text: the cursor, the selection, a matched bracket pair and occurrences of
// the highlighted word.
//
// Every builder works against a viewport.Mapper and only produces
// rectangles for lines inside the visible window.
package highlight
