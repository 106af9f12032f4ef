package buffer

import "strings"

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithLineEnding sets the buffer's line ending style.
func WithLineEnding(le LineEnding) Option {
	return func(b *Buffer) {
		b.lineEnding = le
	}
}

// DetectLineEnding returns the most frequent terminator in text. Ties
// prefer CRLF, then CR. Text without terminators is LF.
func DetectLineEnding(text string) LineEnding {
	crlf := strings.Count(text, LineEndingCRLF.Sequence())
	cr := strings.Count(text, LineEndingCR.Sequence()) - crlf
	lf := strings.Count(text, LineEndingLF.Sequence()) - crlf

	switch {
	case crlf > 0 && crlf >= lf && crlf >= cr:
		return LineEndingCRLF
	case cr > 0 && cr >= lf:
		return LineEndingCR
	default:
		return LineEndingLF
	}
}
