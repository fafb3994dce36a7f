package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripAnsi(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no ansi", "kubernetes", "kubernetes"},
		{"single color", "\x1b[31mGo\x1b[0m", "Go"},
		{"multiple colors", "\x1b[33mGo\x1b[0m \x1b[36mRust\x1b[0m", "Go Rust"},
		{"compound attributes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripAnsi(tt.input))
		})
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty", "", 0},
		{"ascii", "alpha", 5},
		{"with ansi", "\x1b[31mbeta\x1b[0m", 4},
		{"wide chars", "日本語", 6},
		{"mixed", "repo-世界", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayWidth(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"fits", "alpha", 10, "alpha"},
		{"exact fit", "alpha", 5, "alpha"},
		{"truncated", "tensorflow-models", 10, "tensorf..."},
		{"wide runes", "日本語日本語", 7, "日本..."},
		{"width of ellipsis", "alpha", 3, "..."},
		{"narrower than ellipsis", "alpha", 2, ".."},
		{"zero width", "alpha", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.width)
			assert.Equal(t, tt.expected, got)
			assert.LessOrEqual(t, DisplayWidth(got), tt.width)
		})
	}
}

func TestPadding(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"pad right", PadRight("Go", 5), "Go   "},
		{"pad right exceeds", PadRight("Python", 3), "Python"},
		{"pad right ansi", PadRight("\x1b[31mGo\x1b[0m", 4), "\x1b[31mGo\x1b[0m  "},
		{"pad left", PadLeft("42", 5), "   42"},
		{"cell text", Cell("gamma", 7, false), "gamma  "},
		{"cell numeric", Cell("1,234", 7, true), "  1,234"},
		{"cell truncates", Cell("kubernetes", 6, false), "kub..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}
