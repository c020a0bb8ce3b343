package lineitems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTextLinesColumnTable(t *testing.T) {
	lines := []string{
		"ACME SUPPLY INC",
		"Part        Description       Qty   Unit Price   Amount",
		"WIDGET-1    Steel Widget      3     10.00        30.00",
		"GASKET-3    Rubber Gasket     2     1.50         3.00",
		"Subtotal    33.00",
	}
	items := FromTextLines(lines)
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "WIDGET-1", first.PartNumber)
	assert.Equal(t, "Steel Widget", first.Description)
	require.NotNil(t, first.Quantity)
	assert.Equal(t, 3.0, *first.Quantity)
	require.NotNil(t, first.UnitCost)
	assert.Equal(t, 10.0, *first.UnitCost)
	require.NotNil(t, first.TotalCost)
	assert.Equal(t, 30.0, *first.TotalCost)

	assert.Equal(t, "GASKET-3", items[1].PartNumber)
}

func TestFromTextLinesRequiresHeader(t *testing.T) {
	assert.Nil(t, FromTextLines([]string{
		"WIDGET-1    Steel Widget      3     10.00        30.00",
	}))
}

func TestFromTextLinesTabSeparated(t *testing.T) {
	lines := []string{
		"Item\tQty\tPrice",
		"BRKT-9\tMounting Bracket\t5\t2.00\t10.00",
	}
	items := FromTextLines(lines)
	require.Len(t, items, 1)
	assert.Equal(t, "BRKT-9", items[0].PartNumber)
	assert.Equal(t, "Mounting Bracket", items[0].Description)
	require.NotNil(t, items[0].Quantity)
	assert.Equal(t, 5.0, *items[0].Quantity)
}

func TestFromTextLinesDescriptionOnlyFirstColumn(t *testing.T) {
	lines := []string{
		"Description              Qty   Amount",
		"Delivery surcharge       1     15.00",
	}
	items := FromTextLines(lines)
	require.Len(t, items, 1)
	assert.Empty(t, items[0].PartNumber)
	assert.Equal(t, "Delivery surcharge", items[0].Description)
	require.NotNil(t, items[0].TotalCost)
	assert.Equal(t, 15.0, *items[0].TotalCost)
}

func TestFromTextLinesSkipsNonNumericRows(t *testing.T) {
	lines := []string{
		"Part   Qty   Price",
		"continued on next page",
		"WIDGET-1    Steel Widget    3    10.00    30.00",
	}
	items := FromTextLines(lines)
	require.Len(t, items, 1)
	assert.Equal(t, "WIDGET-1", items[0].PartNumber)
}

func TestFromTextLinesUnitColumn(t *testing.T) {
	lines := []string{
		"Part   Description   Qty   UOM   Price   Amount",
		"PLY-12    Plywood Sheet    32    sqft    2.50    80.00",
	}
	items := FromTextLines(lines)
	require.Len(t, items, 1)
	assert.Equal(t, "ft^2", items[0].Unit)
}
