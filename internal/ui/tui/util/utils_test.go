package util

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{name: "Fits", input: "Mushishi", maxWidth: 10, want: "Mushishi"},
		{name: "ExactFit", input: "Mushishi", maxWidth: 8, want: "Mushishi"},
		{name: "Truncated", input: "Neon Genesis Evangelion", maxWidth: 10, want: "Neon Ge..."},
		{name: "WideRunes", input: "蟲師続章", maxWidth: 7, want: "蟲師..."},
		{name: "Tiny", input: "Mushishi", maxWidth: 2, want: ".."},
		{name: "Zero", input: "Mushishi", maxWidth: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateString(tt.input, tt.maxWidth)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, runewidth.StringWidth(got), max(tt.maxWidth, 0))
		})
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "abc   ", PadRight("abc", 6))
	assert.Equal(t, "蟲師  ", PadRight("蟲師", 6))
	assert.Equal(t, "abcdefg...", PadRight("abcdefghijklmnop", 10))
	assert.Equal(t, 10, runewidth.StringWidth(PadRight("蟲師続章蟲師続章", 10)))
}

func TestBar(t *testing.T) {
	assert.Equal(t, "█████", Bar(10, 10, 5))
	assert.Equal(t, "██", Bar(5, 10, 5))
	assert.Equal(t, "█", Bar(1, 100, 5))
	assert.Equal(t, "", Bar(0, 10, 5))
	assert.Equal(t, "", Bar(3, 0, 5))
}
