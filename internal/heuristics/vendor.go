package heuristics

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	vendorScanLines  = 30 // only the top of the document can name the vendor
	vendorEarlyLines = 5
	maxAddressLines  = 7
)

var (
	emailRe   = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	urlRe     = regexp.MustCompile(`(?i)\b(https?://|www\.)\S+`)
	adminRe   = regexp.MustCompile(`(?i)\b(bill to|ship to|invoice|packing|statement|date|phone|fax|gst|hst|pst|total|amount|customer)\b`)
	companyRe = regexp.MustCompile(`(?i)\b(inc|ltd|llc|llp|corp|corporation|limited|co|company|enterprises|industries|manufacturing|supply|supplies|distributors|group)\b\.?`)
	// allowed character set for an all-caps company banner line
	capsRe   = regexp.MustCompile(`^[A-Z0-9&.,'\-\s]+$`)
	streetRe = regexp.MustCompile(`(?i)\b(street|st|avenue|ave|road|rd|blvd|boulevard|drive|dr|lane|ln|way|suite|ste|unit|floor|po box|box)\b\.?`)
	postalRe = regexp.MustCompile(`(?i)\b([A-Z]\d[A-Z]\s?\d[A-Z]\d|\d{5}(-\d{4})?)\b`)
)

// DetectVendor scores the top lines of the document and picks the most
// company-looking one as the vendor name. It returns the winning line, its
// index (-1 when nothing qualifies), and the address block collected from the
// lines below it.
func DetectVendor(lines []string) (string, int, string) {
	limit := len(lines)
	if limit > vendorScanLines {
		limit = vendorScanLines
	}

	bestScore, bestIdx := 0, -1
	for i := 0; i < limit; i++ {
		line := lines[i]
		if emailRe.MatchString(line) || urlRe.MatchString(line) || adminRe.MatchString(line) {
			continue
		}
		score := scoreVendorLine(line, i)
		if score > bestScore {
			bestScore, bestIdx = score, i
		}
	}

	if bestIdx < 0 {
		// fall back to the first line free of email/URL noise
		for i := 0; i < limit; i++ {
			if !emailRe.MatchString(lines[i]) && !urlRe.MatchString(lines[i]) {
				bestIdx = i
				break
			}
		}
		if bestIdx < 0 {
			return "", -1, ""
		}
	}

	return lines[bestIdx], bestIdx, collectAddress(lines, bestIdx+1)
}

func scoreVendorLine(line string, idx int) int {
	score := 0
	if companyRe.MatchString(line) {
		score += 3
	}
	if capsRe.MatchString(line) && containsLetter(line) {
		score += 2
	}
	if containsLetter(line) {
		score++
	}
	if len(strings.Fields(line)) <= 6 {
		score++
	}
	if idx < vendorEarlyLines {
		score++
	}
	if containsDigit(line) && !containsLetter(line) {
		score -= 2
	}
	return score
}

// collectAddress gathers up to maxAddressLines address-shaped lines below the
// vendor name. It stops at administrative keywords, at email/URL lines that
// are not themselves address-shaped, and at the first non-address line once
// address lines have started.
func collectAddress(lines []string, start int) string {
	var collected []string
	for i := start; i < len(lines) && len(collected) < maxAddressLines; i++ {
		line := lines[i]
		if adminRe.MatchString(line) {
			break
		}
		shaped := addressShaped(line)
		if (emailRe.MatchString(line) || urlRe.MatchString(line)) && !shaped {
			break
		}
		if !shaped {
			if len(collected) > 0 {
				break
			}
			continue
		}
		collected = append(collected, line)
	}
	return strings.Join(collected, ", ")
}

// addressShaped is a loose test for street/city/postal lines: digits mixed
// with letters, a street or postal token, or a "City, Province" comma form.
func addressShaped(line string) bool {
	if streetRe.MatchString(line) || postalRe.MatchString(line) {
		return true
	}
	if containsDigit(line) && containsLetter(line) {
		return true
	}
	return strings.Contains(line, ",") && containsLetter(line)
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
