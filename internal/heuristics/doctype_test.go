package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/procurehq/po-intake/constants"
)

func TestDetectDocumentType(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		want     constants.DocumentType
		keywords []string
	}{
		{
			name:  "packing slip beats invoice",
			lines: []string{"PACKING SLIP", "Invoice #: 100"},
			want:  constants.DocTypePackingSlip, keywords: []string{"packing slip"},
		},
		{
			name:  "packing list variant",
			lines: []string{"Packing List for order 7"},
			want:  constants.DocTypePackingSlip, keywords: []string{"packing slip"},
		},
		{
			name:  "invoice",
			lines: []string{"INVOICE", "Acme Co"},
			want:  constants.DocTypeInvoice, keywords: []string{"invoice"},
		},
		{
			name:  "receipt",
			lines: []string{"Cash Receipt"},
			want:  constants.DocTypeReceipt, keywords: []string{"receipt"},
		},
		{
			name:  "unknown",
			lines: []string{"Quote for services"},
			want:  constants.DocTypeUnknown,
		},
		{
			name:  "extra keywords flagged",
			lines: []string{"Invoice", "Purchase Order 99", "Delivery to dock 4"},
			want:  constants.DocTypeInvoice,
			keywords: []string{"invoice", "purchase order", "delivery"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, keywords := DetectDocumentType(tt.lines)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.keywords, keywords)
		})
	}
}
