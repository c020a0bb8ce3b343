package heuristics

import (
	"strings"

	"github.com/procurehq/po-intake/constants"
)

// DetectCurrency finds the first known currency code mentioned in the
// document, honoring the fixed priority order in constants.CurrencyCodes.
func DetectCurrency(lines []string) string {
	text := " " + strings.ToUpper(strings.Join(lines, " ")) + " "
	for _, code := range constants.CurrencyCodes {
		if strings.Contains(text, " "+code) || strings.Contains(text, code+" ") {
			return code
		}
	}
	return ""
}
