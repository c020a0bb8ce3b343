package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectVendor(t *testing.T) {
	t.Run("company line beats address and invoice lines", func(t *testing.T) {
		name, idx, addr := DetectVendor([]string{
			"ACME SUPPLY INC",
			"123 Main St",
			"Invoice #1002",
		})
		assert.Equal(t, "ACME SUPPLY INC", name)
		assert.Equal(t, 0, idx)
		assert.Equal(t, "123 Main St", addr)
	})

	t.Run("email and url lines are disqualified", func(t *testing.T) {
		name, _, _ := DetectVendor([]string{
			"orders@supplier.example.com",
			"www.supplier.example.com",
			"Northern Fasteners Ltd",
		})
		assert.Equal(t, "Northern Fasteners Ltd", name)
	})

	t.Run("tie broken by earliest line", func(t *testing.T) {
		name, idx, _ := DetectVendor([]string{
			"Brightway Tools Inc",
			"Sunrise Metals Inc",
		})
		assert.Equal(t, "Brightway Tools Inc", name)
		assert.Equal(t, 0, idx)
	})

	t.Run("fallback to first clean line when nothing scores", func(t *testing.T) {
		name, idx, _ := DetectVendor([]string{
			"sales@nowhere.example.org",
			"12345 67890",
		})
		assert.Equal(t, "12345 67890", name)
		assert.Equal(t, 1, idx)
	})

	t.Run("nothing usable", func(t *testing.T) {
		name, idx, addr := DetectVendor(nil)
		assert.Empty(t, name)
		assert.Equal(t, -1, idx)
		assert.Empty(t, addr)
	})

	t.Run("address stops at administrative keyword", func(t *testing.T) {
		_, _, addr := DetectVendor([]string{
			"ACME SUPPLY INC",
			"Unit 4, 123 Main St",
			"Toronto, ON M5V 1A1",
			"Bill To: Customer Co",
			"456 Other Rd",
		})
		assert.Equal(t, "Unit 4, 123 Main St, Toronto, ON M5V 1A1", addr)
	})
}
