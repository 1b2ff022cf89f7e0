// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to at most maxWidth columns, ending in an ellipsis when
// anything was removed.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	available := maxWidth - VisualWidth(TruncateEllipsis)
	if available < 0 {
		return TruncateEllipsis
	}
	return takeLeft(s, available) + TruncateEllipsis
}

// TruncateMiddle cuts s to at most maxWidth columns by replacing its middle
// with an ellipsis, keeping both ends. Used for URLs, where the host and the
// file name are the informative parts.
func TruncateMiddle(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	available := maxWidth - VisualWidth(TruncateEllipsis)
	if available <= 0 {
		return Truncate(s, maxWidth)
	}
	head := available - available/2
	tail := available / 2
	return takeLeft(s, head) + TruncateEllipsis + takeRight(s, tail)
}

// takeLeft returns the longest prefix of s that fits in width columns.
func takeLeft(s string, width int) string {
	runes := []rune(s)
	used := 0
	for i, r := range runes {
		w := runewidth.RuneWidth(r)
		if used+w > width {
			return string(runes[:i])
		}
		used += w
	}
	return s
}

// takeRight returns the longest suffix of s that fits in width columns.
func takeRight(s string, width int) string {
	runes := []rune(s)
	used := 0
	for i := len(runes) - 1; i >= 0; i-- {
		w := runewidth.RuneWidth(runes[i])
		if used+w > width {
			return string(runes[i+1:])
		}
		used += w
	}
	return s
}
