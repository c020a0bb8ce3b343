package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectTaxRate(t *testing.T) {
	rate, ok := DetectTaxRate([]string{"Subtotal 100.00", "GST 5%"})
	require.True(t, ok)
	assert.Equal(t, 5.0, rate)

	rate, ok = DetectTaxRate([]string{"Tax Rate: 13"})
	require.True(t, ok)
	assert.Equal(t, 13.0, rate)

	rate, ok = DetectTaxRate([]string{"VAT: 7.5%"})
	require.True(t, ok)
	assert.Equal(t, 7.5, rate)

	_, ok = DetectTaxRate([]string{"no tax lines"})
	assert.False(t, ok)
}

func TestDetectCurrency(t *testing.T) {
	assert.Equal(t, "CAD", DetectCurrency([]string{"Total 100.00 CAD"}))
	assert.Equal(t, "USD", DetectCurrency([]string{"All amounts in USD unless stated"}))
	assert.Equal(t, "EUR", DetectCurrency([]string{"EUR 50.00"}))
	// priority order is fixed even when both appear
	assert.Equal(t, "CAD", DetectCurrency([]string{"USD prices", "CAD billing"}))
	assert.Empty(t, DetectCurrency([]string{"no currency"}))
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("  ACME \n\n 123 Main St \n")
	assert.Equal(t, []string{"ACME", "123 Main St"}, lines)
}
