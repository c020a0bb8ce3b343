package numparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  float64
		ok    bool
	}{
		{"plain integer", "42", 42, true},
		{"decimal", "10.50", 10.5, true},
		{"thousands separator", "1,234.56", 1234.56, true},
		{"currency prefix", "$99.95", 99.95, true},
		{"confusable O for zero", "O5O", 50, true},
		{"confusable I for one", "I2I", 121, true},
		{"confusable mix", "1O.5O", 10.5, true},
		{"confusable S for five", "S0", 50, true},
		{"confusable B for eight", "B1", 81, true},
		{"em dash minus", "—5", -5, true},
		{"leading bare dot", ".5", 0.5, true},
		{"leading minus dot", "-.5", -0.5, true},
		{"repeated dots collapse", "1..5", 1.5, true},
		{"accented confusable", "ï2", 12, true},
		{"single char fallback O", "O", 0, true},
		{"single char fallback a", "a", 1, true},
		{"empty", "", 0, false},
		{"bare minus", "-", 0, false},
		{"bare dot", ".", 0, false},
		{"word", "Widget", 0, false},
		{"whitespace only", "   ", 0, false},
		{"two decimal points", "1.2.3", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumber(tt.token)
			require.Equal(t, tt.ok, ok, "ok mismatch for %q", tt.token)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestDeriveQuantity(t *testing.T) {
	tests := []struct {
		name      string
		unitCost  float64
		totalCost float64
		want      float64
		ok        bool
	}{
		{"clean ratio", 10, 20, 2, true},
		{"within tolerance", 9.98, 20.1, 2, true},
		{"near-integer snaps", 3.33, 10, 3, true},
		{"fractional kept at 2 decimals", 4, 10.5, 2.63, true},
		{"zero unit cost", 0, 20, 0, false},
		{"ratio rounds to zero", 10, 0.05, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DeriveQuantity(tt.unitCost, tt.totalCost)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}
