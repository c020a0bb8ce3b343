package heuristics

import (
	"strings"

	"github.com/procurehq/po-intake/constants"
)

// DetectDocumentType classifies the document from keyword occurrence and
// returns the matched keywords. Priority is fixed: packing slip overrides
// invoice overrides receipt.
func DetectDocumentType(lines []string) (constants.DocumentType, []string) {
	text := strings.ToLower(strings.Join(lines, "\n"))

	docType := constants.DocTypeUnknown
	var keywords []string
	switch {
	case strings.Contains(text, "packing slip"), strings.Contains(text, "packing list"):
		docType = constants.DocTypePackingSlip
		keywords = append(keywords, "packing slip")
	case strings.Contains(text, "invoice"):
		docType = constants.DocTypeInvoice
		keywords = append(keywords, "invoice")
	case strings.Contains(text, "receipt"):
		docType = constants.DocTypeReceipt
		keywords = append(keywords, "receipt")
	}

	if strings.Contains(text, "purchase order") {
		keywords = append(keywords, "purchase order")
	}
	if strings.Contains(text, "delivery") {
		keywords = append(keywords, "delivery")
	}
	return docType, keywords
}
