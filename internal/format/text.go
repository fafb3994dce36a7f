// Package format provides shared text formatting utilities for terminal output.
package format

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis is appended to truncated cells.
const Ellipsis = "..."

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripAnsi removes ANSI escape sequences from a string.
func StripAnsi(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// DisplayWidth returns the visible width of s in terminal columns, ignoring
// ANSI escape sequences and counting wide runes as two columns.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(StripAnsi(s))
}

// Truncate shortens plain text to at most width columns, ending in
// Ellipsis when anything was cut. Style the result after truncating.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= len(Ellipsis) {
		return Ellipsis[:width]
	}
	return runewidth.Truncate(s, width, Ellipsis)
}

// PadRight left-aligns s in a cell of width columns.
func PadRight(s string, width int) string {
	w := DisplayWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// PadLeft right-aligns s in a cell of width columns.
func PadLeft(s string, width int) string {
	w := DisplayWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}

// Cell truncates s to width and pads it, aligned right when numeric is set.
func Cell(s string, width int, numeric bool) string {
	s = Truncate(s, width)
	if numeric {
		return PadLeft(s, width)
	}
	return PadRight(s, width)
}
