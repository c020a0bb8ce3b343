package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVendorDetails(t *testing.T) {
	lines := []string{
		"ACME SUPPLY INC",
		"123 Main St",
		"Toronto, ON M5V 1A1",
		"Phone: (416) 555-0192",
		"orders@acme.example.com",
	}
	d := ExtractVendorDetails(lines, 0, "123 Main St, Toronto, ON M5V 1A1")
	require.NotNil(t, d)
	assert.Equal(t, "123 Main St, Toronto, ON M5V 1A1", d.Address)
	assert.Equal(t, "orders@acme.example.com", d.Email)
	assert.Equal(t, "(416) 555-0192", d.Phone)
	assert.Equal(t, "M5V 1A1", d.PostalCode)
}

func TestExtractVendorDetailsUSPostal(t *testing.T) {
	d := ExtractVendorDetails([]string{"Acme Corp", "Buffalo NY 14201"}, 0, "")
	require.NotNil(t, d)
	assert.Equal(t, "14201", d.PostalCode)
}

func TestExtractVendorDetailsOutOfRangeAnchor(t *testing.T) {
	assert.Nil(t, ExtractVendorDetails([]string{"x"}, -1, ""))
	assert.Nil(t, ExtractVendorDetails([]string{"x"}, 5, ""))
}

func TestExtractVendorDetailsNothingFound(t *testing.T) {
	assert.Nil(t, ExtractVendorDetails([]string{"plain text only"}, 0, ""))
}
