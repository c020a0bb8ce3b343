package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectBillDate(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"iso dashes", []string{"Date: 2024-05-01"}, "2024-05-01"},
		{"iso slashes", []string{"2024/5/1"}, "2024-05-01"},
		{"month first when ambiguous", []string{"03/04/2024"}, "2024-03-04"},
		{"day first when first number above 12", []string{"13/04/2024"}, "2024-04-13"},
		{"two digit year 1900s", []string{"01/02/99"}, "1999-01-02"},
		{"two digit year 2000s", []string{"01/02/24"}, "2024-01-02"},
		{"month name day year", []string{"march 3, 2024"}, "2024-03-03"},
		{"day month name year", []string{"3 March 2024"}, "2024-03-03"},
		{"abbreviated month", []string{"Dated 15 Sep. 2023"}, "2023-09-15"},
		{"invalid calendar date skipped", []string{"2024-02-31"}, ""},
		{"nothing", []string{"no dates here"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectBillDate(tt.lines))
		})
	}
}
