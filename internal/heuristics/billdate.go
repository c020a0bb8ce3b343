package heuristics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDateRe   = regexp.MustCompile(`\b(\d{4})[-/](\d{1,2})[-/](\d{1,2})\b`)
	slashDateRe = regexp.MustCompile(`\b(\d{1,2})[-/](\d{1,2})[-/](\d{2,4})\b`)
	textualDMY  = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s+(\d{2,4})\b`)
	textualMDY  = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(\d{1,2})(?:st|nd|rd|th)?\s*,?\s+(\d{2,4})\b`)
)

var monthAbbrevs = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// DetectBillDate finds the document date and normalizes it to YYYY-MM-DD.
// Forms are tried in order: ISO year-first, then slash dates (ambiguous
// MM/DD vs DD/MM: a first number above 12 forces day-first), then textual
// month names. Two-digit years map to the 1900s when >= 70, else the 2000s.
func DetectBillDate(lines []string) string {
	for _, line := range lines {
		if m := isoDateRe.FindStringSubmatch(line); m != nil {
			if d := isoDate(atoi(m[1]), atoi(m[2]), atoi(m[3])); d != "" {
				return d
			}
		}
	}
	for _, line := range lines {
		if m := slashDateRe.FindStringSubmatch(line); m != nil {
			first, second, year := atoi(m[1]), atoi(m[2]), normalizeYear(atoi(m[3]))
			var month, day int
			if first > 12 {
				day, month = first, second
			} else {
				month, day = first, second
			}
			if d := isoDate(year, month, day); d != "" {
				return d
			}
		}
	}
	for _, line := range lines {
		if m := textualDMY.FindStringSubmatch(line); m != nil {
			month := monthAbbrevs[strings.ToLower(m[2])]
			if d := isoDate(normalizeYear(atoi(m[3])), month, atoi(m[1])); d != "" {
				return d
			}
		}
		if m := textualMDY.FindStringSubmatch(line); m != nil {
			month := monthAbbrevs[strings.ToLower(m[1])]
			if d := isoDate(normalizeYear(atoi(m[3])), month, atoi(m[2])); d != "" {
				return d
			}
		}
	}
	return ""
}

// isoDate validates the components against the calendar and formats them.
// Overflows like Feb 31 (which time.Date silently rolls over) are rejected.
func isoDate(year, month, day int) string {
	if year < 1900 || year > 2100 || month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func normalizeYear(y int) int {
	if y >= 100 {
		return y
	}
	if y >= 70 {
		return 1900 + y
	}
	return 2000 + y
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
