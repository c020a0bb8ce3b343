// Package heuristics holds the independent field detectors that scan a
// document's raw text lines. Each detector takes the line list and returns a
// value or nothing; none of them mutate shared state, so they can run in any
// order or concurrently.
package heuristics

import "strings"

// SplitLines breaks raw OCR text into trimmed, non-empty lines.
func SplitLines(raw string) []string {
	parts := strings.Split(raw, "\n")
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}
