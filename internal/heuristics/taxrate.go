package heuristics

import (
	"regexp"
	"strconv"
)

var taxRateRe = regexp.MustCompile(`(?i)\b(GST|Tax|VAT)\s*(Rate|%)?\s*[:\-]?\s*(\d+(?:\.\d+)?)\s*%?`)

// DetectTaxRate returns the GST/tax/VAT percentage from the first line that
// carries one.
func DetectTaxRate(lines []string) (float64, bool) {
	for _, line := range lines {
		if m := taxRateRe.FindStringSubmatch(line); m != nil {
			if rate, err := strconv.ParseFloat(m[3], 64); err == nil {
				return rate, true
			}
		}
	}
	return 0, false
}
