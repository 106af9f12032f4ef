package viewport

// Digits returns the number of decimal digits needed to print n.
func Digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// GutterWidth returns the pixel width of the line-number gutter: one
// character width per digit of the line count, or zero when disabled.
func (m *Mapper) GutterWidth() float64 {
	if !m.geo.Gutter {
		return 0
	}
	return float64(Digits(m.buf.LineCount())) * m.geo.CharWidth
}

// ScrollMargin returns the right-edge margin in pixels.
func (m *Mapper) ScrollMargin() float64 {
	return float64(m.marginChars) * m.geo.CharWidth
}

// SetScrollMargin sets the right-edge margin in character widths.
// Negative values are ignored.
func (m *Mapper) SetScrollMargin(chars int) {
	if chars >= 0 {
		m.marginChars = chars
	}
}
