package buffer

import "unicode/utf8"

// This file is the only place where character indexes are converted to byte
// offsets. Everything else in the engine speaks characters.

// CharCount returns the number of characters (runes) in s.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// ByteIndex converts a character index into a byte offset within s.
// Indexes past the end clamp to len(s); negative indexes clamp to 0.
func ByteIndex(s string, char int) int {
	if char <= 0 {
		return 0
	}
	n := 0
	for i := range s {
		if n == char {
			return i
		}
		n++
	}
	return len(s)
}

// SliceChars returns the substring of s covering characters [from, to).
func SliceChars(s string, from, to int) string {
	if to < from {
		to = from
	}
	return s[ByteIndex(s, from):ByteIndex(s, to)]
}

// SplitChars splits s at character index char.
func SplitChars(s string, char int) (prefix, suffix string) {
	i := ByteIndex(s, char)
	return s[:i], s[i:]
}

// InsertChars inserts text into s at character index char.
func InsertChars(s string, char int, text string) string {
	i := ByteIndex(s, char)
	return s[:i] + text + s[i:]
}

// RemoveChars removes n characters from s starting at character index char.
// It returns the new string and the removed text.
func RemoveChars(s string, char, n int) (string, string) {
	if n <= 0 {
		return s, ""
	}
	start := ByteIndex(s, char)
	end := ByteIndex(s, char+n)
	return s[:start] + s[end:], s[start:end]
}

// CharAt returns the character at index char and whether it exists.
func CharAt(s string, char int) (rune, bool) {
	if char < 0 {
		return utf8.RuneError, false
	}
	n := 0
	for _, r := range s {
		if n == char {
			return r, true
		}
		n++
	}
	return utf8.RuneError, false
}
