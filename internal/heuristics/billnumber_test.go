package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectBillNumber(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"direct hash colon", []string{"Invoice #: INV-2024-007"}, "INV-2024-007"},
		{"direct hash", []string{"Invoice# 4521"}, "4521"},
		{"structured number word", []string{"Invoice Number: 88310"}, "88310"},
		{"packing slip number", []string{"Packing Slip No. PS-99"}, "PS-99"},
		{"bare bill colon", []string{"Bill: B-771"}, "B-771"},
		{"reference colon", []string{"Reference: REF/2024/12"}, "REF/2024/12"},
		{"total context rejected", []string{"Total Invoice Amount: 500"}, ""},
		{"total rejected but later line wins", []string{"Total Invoice # 500", "Invoice #: 4521"}, "4521"},
		{"nothing", []string{"ACME SUPPLY INC", "123 Main St"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectBillNumber(tt.lines))
		})
	}
}
