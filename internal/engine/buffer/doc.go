// Package buffer provides the line-oriented text buffer at the bottom of the
// editing engine.
//
// The document is an ordered sequence of lines. It is never empty: an empty
// document is a single empty line, and every mutation preserves that.
//
// The buffer package provides:
//
//   - Character-indexed mutation primitives (insert, remove, split, merge)
//   - Multi-line range replacement used by selection edits
//   - Line splicing used by undo
//   - Position clamping into document bounds
//   - A single conversion utility between character indexes and byte offsets
//
// Basic usage:
//
//	buf := buffer.NewFromString("hello\nworld")
//
//	buf.InsertCharAt(buffer.Position{Line: 0, Char: 5}, "!") // "hello!"
//	buf.SplitLineAt(buffer.Position{Line: 1, Char: 2})        // "wo", "rld"
//
// Position Types:
//
// Position.Char counts Unicode scalar values (runes), not bytes. Byte offsets
// are only computed inside charindex.go at the point where a line string is
// sliced.
//
// Ownership:
//
// A Buffer is owned by a single editor instance and is not safe for
// concurrent use. All mutations run to completion inside one input tick.
package buffer
