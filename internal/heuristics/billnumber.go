package heuristics

import (
	"regexp"
	"strings"
)

// billNumberPatterns are tried in order across the whole document; the first
// non-rejected capture wins. The captured token is already constrained to
// [A-Za-z0-9-/_].
var billNumberPatterns = []*regexp.Regexp{
	// direct "Invoice #: INV-2024-007" / "Invoice# 4521"
	regexp.MustCompile(`(?i)\binvoice\s*[:#\-]+\s*([A-Za-z0-9][A-Za-z0-9\-/_]*)`),
	// structured "<kind> number/no./# <token>"
	regexp.MustCompile(`(?i)\b(invoice|bill|packing\s+slip|packing\s+list|reference)\s+(number|no\.?|#)\s*[:#\-]?\s*([A-Za-z0-9][A-Za-z0-9\-/_]*)`),
	// bare "invoice: X" / "bill: X"
	regexp.MustCompile(`(?i)\b(invoice|bill)\s*:\s*([A-Za-z0-9][A-Za-z0-9\-/_]*)`),
	// "ref: X" / "reference: X" / "number: X"
	regexp.MustCompile(`(?i)\b(ref|reference|number)\s*:\s*([A-Za-z0-9][A-Za-z0-9\-/_]*)`),
}

// DetectBillNumber extracts the document's bill/invoice number. Matches on
// lines that also mention "total" are rejected so that "Total Invoice Amount"
// style summary lines never supply a bill number.
func DetectBillNumber(lines []string) string {
	for _, re := range billNumberPatterns {
		for _, line := range lines {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if strings.Contains(strings.ToLower(line), "total") {
				continue
			}
			return m[len(m)-1]
		}
	}
	return ""
}
