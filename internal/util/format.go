package util

import (
	"fmt"
	"strings"
)

// FormatPercent formats an extension value as a whole percentage.
func FormatPercent(v float64) string {
	if v < 0 {
		v = 0
	}
	return fmt.Sprintf("%3.0f%%", v)
}

// FormatOffset formats a pixel offset with one decimal place.
func FormatOffset(px float64) string {
	if px < 0 {
		px = 0
	}
	return fmt.Sprintf("%5.1f px", px)
}

// Spaces returns n spaces, or "" for n <= 0.
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
