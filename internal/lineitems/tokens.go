// Package lineitems reconstructs candidate purchase-order line items from OCR
// output. The row-based strategy works off word bounding boxes grouped into
// visual rows; a text-line column-split strategy is the fallback when no rows
// are available or nothing row-shaped parses.
package lineitems

import (
	"regexp"
	"strings"

	"github.com/procurehq/po-intake/internal/numparse"
)

var (
	// confusable-tolerant digit class shared by the token shape tests
	numericShapeRe = regexp.MustCompile(`^[0-9OoIl|!SsBGZz]+(?:\.[0-9OoIl|!SsBGZz]+)?$`)
	centsTailRe    = regexp.MustCompile(`[.,][0-9OoIl|!SsBGZz]{2}\)?$`)
	digitRe        = regexp.MustCompile(`[0-9]`)

	partShapeRe    = regexp.MustCompile(`(?i)^[A-Z0-9][A-Z0-9\-_./]{1,24}$`)
	partFallbackRe = regexp.MustCompile(`^[A-Z0-9]{4,}$`)

	// a totals block ends the item table; only marker-led rows count so that
	// column headers mentioning "Total" don't cut the table short
	stopMarkerRe = regexp.MustCompile(`(?i)^\s*(sub\s*-?total|total|gst|hst|pst|tax|balance|amount\s+due)\b`)
)

// isMoneyToken reports whether a token looks like a monetary amount: a
// currency-symbol prefix, or a cents tail (two decimal digits, confusables
// allowed). Plain integers are not money; they stay eligible as quantities.
func isMoneyToken(tok string) bool {
	t := strings.TrimSpace(tok)
	if t == "" || !digitRe.MatchString(t) {
		return false
	}
	if _, ok := numparse.ParseNumber(t); !ok {
		return false
	}
	if strings.HasPrefix(t, "$") || strings.HasPrefix(t, "($") || strings.HasPrefix(t, "-$") {
		return true
	}
	return centsTailRe.MatchString(t)
}

// isQuantityToken reports whether a token is purely numeric (confusables
// allowed) with at least one real digit.
func isQuantityToken(tok string) bool {
	t := strings.TrimSpace(tok)
	if t == "" || !digitRe.MatchString(t) || !numericShapeRe.MatchString(t) {
		return false
	}
	_, ok := numparse.ParseNumber(t)
	return ok
}

// isPartToken reports whether a token is shaped like a part code. The shape
// regex alone would match ordinary words, so a code must also carry a digit
// or a code separator.
func isPartToken(tok string) bool {
	if !partShapeRe.MatchString(tok) {
		return false
	}
	return digitRe.MatchString(tok) || strings.ContainsAny(tok, "-_./")
}

// isPartFallbackToken matches the looser fallback shape: an all-caps or
// all-digit token of length >= 4.
func isPartFallbackToken(tok string) bool {
	return partFallbackRe.MatchString(tok)
}

func parseMoney(tok string) *float64 {
	if v, ok := numparse.ParseNumber(tok); ok {
		return &v
	}
	return nil
}
