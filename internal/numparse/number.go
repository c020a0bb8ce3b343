// Package numparse converts noisy OCR tokens into numbers, correcting
// characters that OCR engines commonly substitute for digits.
package numparse

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// confusables maps glyphs an OCR engine commonly misreads to the digit they
// stand for. Keys are the base characters left after NFKD decomposition and
// combining-mark stripping, so accented variants (ï, ì, º) resolve through
// their base form.
var confusables = map[rune]rune{
	'O': '0', 'o': '0', 'Ø': '0', 'ø': '0', '°': '0', 'D': '0', 'Q': '0',
	'I': '1', 'i': '1', 'l': '1', 'L': '1', '|': '1', '!': '1',
	'S': '5', 's': '5',
	'B': '8',
	'G': '6',
	'g': '9',
	'Z': '2', 'z': '2',
}

// fallbackConfusables extends the table for the whole-token single-character
// fallback, used only when no digit survives the first pass.
var fallbackConfusables = map[rune]rune{
	'a': '1', 'A': '1',
}

// dashes are the dash glyphs OCR produces for a minus sign.
var dashes = map[rune]bool{
	'-': true, '—': true, '–': true, '−': true, '‑': true,
}

// decomposer strips combining marks after NFKD decomposition so confusable
// mapping sees base characters only.
var decomposer = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// ParseNumber converts a raw OCR token into a number. It strips currency
// symbols, thousands separators and whitespace, maps confusable glyphs to the
// digits they stand for, and normalizes dash and dot runs. Returns false when
// nothing number-shaped survives.
func ParseNumber(token string) (float64, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, false
	}

	decomposed, _, err := transform.String(decomposer, token)
	if err != nil {
		decomposed = token
	}

	var b strings.Builder
	hasDigit := false
	for _, r := range decomposed {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			hasDigit = true
		case r == '.':
			if last(&b) != '.' {
				b.WriteRune(r)
			}
		case dashes[r]:
			// keep a leading minus only
			if b.Len() == 0 {
				b.WriteRune('-')
			}
		case r == ',' || unicode.IsSpace(r):
			// thousands separator / whitespace noise
		case r == '$' || r == '€' || r == '£' || r == '¥':
			// currency noise
		default:
			if d, ok := confusables[r]; ok {
				b.WriteRune(d)
				hasDigit = true
			}
		}
	}

	s := b.String()
	if !hasDigit {
		s = singleCharFallback(token)
		if s == "" {
			return 0, false
		}
	}

	if strings.HasPrefix(s, ".") {
		s = "0" + s
	} else if strings.HasPrefix(s, "-.") {
		s = "-0" + s[1:]
	}
	if s == "" || s == "-" || s == "." {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// singleCharFallback maps a whole token consisting of one confusable rune to
// its digit, e.g. a lone "O" read where a 0 was printed.
func singleCharFallback(token string) string {
	rs := []rune(strings.TrimSpace(token))
	if len(rs) != 1 {
		return ""
	}
	if d, ok := confusables[rs[0]]; ok {
		return string(d)
	}
	if d, ok := fallbackConfusables[rs[0]]; ok {
		return string(d)
	}
	return ""
}

func last(b *strings.Builder) byte {
	s := b.String()
	if s == "" {
		return 0
	}
	return s[len(s)-1]
}

// DeriveQuantity infers a quantity from unit and total cost when the quantity
// column was lost. Ratios within 0.02 of an integer snap to that integer;
// anything else is kept at two decimals. Returns false when no sane quantity
// can be derived (zero unit cost, or a ratio that rounds to zero).
func DeriveQuantity(unitCost, totalCost float64) (float64, bool) {
	if unitCost == 0 {
		return 0, false
	}
	ratio := totalCost / unitCost
	rounded := math.Round(ratio)
	if math.Abs(ratio-rounded) <= 0.02 {
		if rounded == 0 {
			return 0, false
		}
		return rounded, true
	}
	q := math.Round(ratio*100) / 100
	if q == 0 {
		return 0, false
	}
	return q, true
}
