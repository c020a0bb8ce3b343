package lineitems

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procurehq/po-intake/internal/entity"
)

// rowOf builds an OCRRow from space-separated tokens with synthetic geometry.
func rowOf(top float64, line string) entity.OCRRow {
	toks := strings.Fields(line)
	words := make([]entity.OCRWord, len(toks))
	x := 0.0
	for i, tok := range toks {
		words[i] = entity.OCRWord{
			Text: tok, Confidence: 0.9,
			X: x, Y: top, Width: float64(len(tok)) * 8, Height: 12,
		}
		x += float64(len(tok))*8 + 10
	}
	return entity.OCRRow{Words: words, Top: top}
}

func TestFromRowsFullRow(t *testing.T) {
	items := FromRows([]entity.OCRRow{
		rowOf(10, "WIDGET-1 Steel Widget 3 EA 10.00 30.00"),
	})
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "WIDGET-1", item.PartNumber)
	assert.Equal(t, "Steel Widget", item.Description)
	assert.Equal(t, "ea", item.Unit)
	require.NotNil(t, item.Quantity)
	assert.Equal(t, 3.0, *item.Quantity)
	require.NotNil(t, item.UnitCost)
	assert.Equal(t, 10.0, *item.UnitCost)
	require.NotNil(t, item.TotalCost)
	assert.Equal(t, 30.0, *item.TotalCost)
}

func TestFromRowsStopsAtTotalsBlock(t *testing.T) {
	items := FromRows([]entity.OCRRow{
		rowOf(10, "WIDGET-1 Steel Widget 3 EA 10.00 30.00"),
		rowOf(20, "Subtotal 30.00"),
		rowOf(30, "GASKET-3 Gasket 2 EA 1.00 2.00"),
	})
	require.Len(t, items, 1)
	assert.Equal(t, "WIDGET-1", items[0].PartNumber)
}

func TestFromRowsSkipsRowsWithoutMoney(t *testing.T) {
	items := FromRows([]entity.OCRRow{
		rowOf(10, "Part Description Qty Unit Price"),
		rowOf(20, "WIDGET-1 Steel Widget 3 EA 10.00 30.00"),
	})
	require.Len(t, items, 1)
}

func TestFromRowsDefaultsQuantityForCountableUnit(t *testing.T) {
	items := FromRows([]entity.OCRRow{
		rowOf(10, "BRKT-9 Mounting Bracket EA 5.00"),
	})
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Quantity)
	assert.Equal(t, 1.0, *items[0].Quantity)
	assert.Equal(t, "ea", items[0].Unit)
}

func TestFromRowsDerivesQuantityFromCosts(t *testing.T) {
	items := FromRows([]entity.OCRRow{
		rowOf(10, "GASKET-3 Rubber Gasket 10.00 30.00"),
	})
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Quantity)
	assert.Equal(t, 3.0, *items[0].Quantity)
}

func TestFromRowsConfusableMoneyTokens(t *testing.T) {
	items := FromRows([]entity.OCRRow{
		rowOf(10, "BOLT-M8 Hex Bolt 4 1O.5O 42.OO"),
	})
	require.Len(t, items, 1)
	require.NotNil(t, items[0].UnitCost)
	assert.Equal(t, 10.5, *items[0].UnitCost)
	require.NotNil(t, items[0].TotalCost)
	assert.Equal(t, 42.0, *items[0].TotalCost)
	require.NotNil(t, items[0].Quantity)
	assert.Equal(t, 4.0, *items[0].Quantity)
}

func TestFromRowsSuppressesDuplicates(t *testing.T) {
	items := FromRows([]entity.OCRRow{
		rowOf(10, "WIDGET-1 Steel Widget 3 EA 10.00 30.00"),
		rowOf(20, "WIDGET-1 Steel Widget 3 EA 10.00 30.00"),
	})
	require.Len(t, items, 1)
}

func TestFromRowsRejectsBareMoneyRow(t *testing.T) {
	items := FromRows([]entity.OCRRow{
		rowOf(10, "30.00"),
	})
	assert.Empty(t, items)
}

func TestFromRowsFt2Normalization(t *testing.T) {
	items := FromRows([]entity.OCRRow{
		rowOf(10, "PLY-12 Plywood Sheet 32 ft2 2.50 80.00"),
	})
	require.Len(t, items, 1)
	assert.Equal(t, "ft^2", items[0].Unit)
}

func TestFromRowsPartFallbackShape(t *testing.T) {
	items := FromRows([]entity.OCRRow{
		rowOf(10, "XKJQ heavy duty clamp 2 3.00 6.00"),
	})
	require.Len(t, items, 1)
	assert.Equal(t, "XKJQ", items[0].PartNumber)
	assert.Equal(t, "heavy duty clamp", items[0].Description)
}
