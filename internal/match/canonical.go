package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/procurehq/po-intake/internal/common"
)

var deaccenter = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// CanonicalizeName produces the comparison key for a vendor or description
// string: diacritics stripped, lowercased, punctuation collapsed to single
// spaces.
func CanonicalizeName(s string) (string, error) {
	folded, _, err := transform.String(deaccenter, s)
	if err != nil {
		return "", common.WrapError(common.ErrCanonicalization, "canonicalize name")
	}
	var b strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(folded) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String()), nil
}

// CanonicalizePartNumber produces the comparison key for a part number:
// diacritics stripped, lowercased, every non-alphanumeric removed.
func CanonicalizePartNumber(s string) (string, error) {
	folded, _, err := transform.String(deaccenter, s)
	if err != nil {
		return "", common.WrapError(common.ErrCanonicalization, "canonicalize part number")
	}
	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}
