package selection

import (
	"unicode"

	"github.com/dshills/caret/internal/engine/buffer"
)

// IsWordChar reports whether r belongs to a word: letters, digits,
// underscore and hyphen.
func IsWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || r == '-'
}

// WordBounds returns the character range [start, end) of the word touching
// index char in line. The end is the first non-word character at or after
// char; the start follows the last non-word character before char.
func WordBounds(line string, char int) (start, end int) {
	end = -1
	i := 0
	for _, r := range line {
		if !IsWordChar(r) {
			if i >= char {
				end = i
				break
			}
			start = i + 1
		}
		i++
	}
	if end < 0 {
		end = buffer.CharCount(line)
	}
	return start, end
}

// Occurrences returns every whole-word occurrence of word in lines
// [first, last) of buf. An occurrence must be bounded on both sides by a
// non-word character or a line boundary.
func Occurrences(buf *buffer.Buffer, word string, first, last int) []buffer.Range {
	if word == "" {
		return nil
	}
	needle := []rune(word)
	if first < 0 {
		first = 0
	}
	if last > buf.LineCount() {
		last = buf.LineCount()
	}

	var out []buffer.Range
	for line := first; line < last; line++ {
		for _, char := range findWord([]rune(buf.Line(line)), needle) {
			out = append(out, buffer.Range{
				Start: buffer.Position{Line: line, Char: char},
				End:   buffer.Position{Line: line, Char: char + len(needle)},
			})
		}
	}
	return out
}

func findWord(hay, needle []rune) []int {
	var hits []int
	for i := 0; i+len(needle) <= len(hay); i++ {
		if i > 0 && IsWordChar(hay[i-1]) {
			continue
		}
		if !runesEqual(hay[i:i+len(needle)], needle) {
			continue
		}
		if j := i + len(needle); j < len(hay) && IsWordChar(hay[j]) {
			continue
		}
		hits = append(hits, i)
		i += len(needle) - 1
	}
	return hits
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
