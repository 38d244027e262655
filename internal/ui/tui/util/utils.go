package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// TruncateString cuts a string to fit within maxWidth visual width
func TruncateString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= len(ellipsis) {
		return strings.Repeat(".", maxWidth)
	}

	width := 0
	for i, r := range s {
		charWidth := runewidth.RuneWidth(r)
		// Check if adding this rune would exceed maxWidth
		if width+charWidth > maxWidth-len(ellipsis) { // Reserve space for "..."
			return s[:i] + ellipsis
		}
		width += charWidth
	}
	return s
}

// PadRight truncates or pads s with spaces to exactly width visual columns
func PadRight(s string, width int) string {
	s = TruncateString(s, width)
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// Bar renders value as a horizontal bar, scaled so that maxValue fills width.  Non-zero values always get at least
// one cell.
func Bar(value, maxValue, width int) string {
	if value <= 0 || maxValue <= 0 || width <= 0 {
		return ""
	}
	cells := value * width / maxValue
	if cells == 0 {
		cells = 1
	}
	return strings.Repeat("█", min(cells, width))
}
