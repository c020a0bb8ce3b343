package lineitems

import (
	"fmt"
	"strings"

	"github.com/procurehq/po-intake/constants"
	"github.com/procurehq/po-intake/internal/entity"
	"github.com/procurehq/po-intake/internal/numparse"
)

// FromRows reconstructs line items from visual rows. Token scan order per row:
// rightmost money token is the total, the next money token to its left is the
// unit cost, and the first purely-numeric token further left is the quantity.
// Processing stops at the first totals/GST/balance row; everything below a
// totals block is summary, not items.
func FromRows(rows []entity.OCRRow) []entity.LineItem {
	var items []entity.LineItem
	seen := make(map[string]struct{})

	for _, row := range rows {
		text := row.Text()
		if stopMarkerRe.MatchString(text) {
			break
		}
		item, ok := itemFromTokens(tokensOf(row), text)
		if !ok {
			continue
		}
		key := dedupKey(item)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		items = append(items, item)
	}
	return items
}

func tokensOf(row entity.OCRRow) []string {
	toks := make([]string, 0, len(row.Words))
	for _, w := range row.Words {
		if t := strings.TrimSpace(w.Text); t != "" {
			toks = append(toks, t)
		}
	}
	return toks
}

// itemFromTokens applies the right-to-left field scan to one row's tokens.
func itemFromTokens(toks []string, rawLine string) (entity.LineItem, bool) {
	totalIdx := -1
	for i := len(toks) - 1; i >= 0; i-- {
		if isMoneyToken(toks[i]) {
			totalIdx = i
			break
		}
	}
	if totalIdx < 0 {
		// no trailing money token, not an item row
		return entity.LineItem{}, false
	}

	unitIdx := -1
	for i := totalIdx - 1; i >= 0; i-- {
		if isMoneyToken(toks[i]) {
			unitIdx = i
			break
		}
	}

	firstMoney := totalIdx
	if unitIdx >= 0 {
		firstMoney = unitIdx
	}

	qtyIdx := -1
	for i := firstMoney - 1; i >= 0; i-- {
		if isQuantityToken(toks[i]) {
			qtyIdx = i
			break
		}
	}

	unit, unitTokIdx := findUnit(toks, firstMoney, qtyIdx)

	// description ends at the first numeric field
	boundary := firstMoney
	if qtyIdx >= 0 {
		boundary = qtyIdx
	}

	partIdx := -1
	for i := 0; i < boundary; i++ {
		if i == unitTokIdx {
			continue
		}
		if isPartToken(toks[i]) {
			partIdx = i
			break
		}
	}
	if partIdx < 0 {
		for i := 0; i < boundary; i++ {
			if i == unitTokIdx {
				continue
			}
			if isPartFallbackToken(toks[i]) {
				partIdx = i
				break
			}
		}
	}

	var descParts []string
	for i := partIdx + 1; i < boundary; i++ {
		if i == unitTokIdx || isMoneyToken(toks[i]) {
			continue
		}
		descParts = append(descParts, toks[i])
	}
	desc := strings.Join(descParts, " ")

	part := ""
	if partIdx >= 0 {
		part = toks[partIdx]
	}
	if part == "" && len(desc) < 3 {
		return entity.LineItem{}, false
	}

	item := entity.LineItem{
		RawLine:     rawLine,
		PartNumber:  part,
		Description: desc,
		Unit:        unit,
		TotalCost:   parseMoney(toks[totalIdx]),
	}
	if unitIdx >= 0 {
		item.UnitCost = parseMoney(toks[unitIdx])
	}
	if qtyIdx >= 0 {
		if v, ok := numparse.ParseNumber(toks[qtyIdx]); ok {
			item.Quantity = &v
		}
	}
	fillQuantity(&item)
	return item, true
}

// findUnit locates a unit-of-measure token between the quantity and the money
// columns, falling back to anywhere left of the money columns.
func findUnit(toks []string, firstMoney, qtyIdx int) (string, int) {
	lo := 0
	if qtyIdx >= 0 {
		lo = qtyIdx + 1
	}
	for i := firstMoney - 1; i >= lo; i-- {
		if u, ok := constants.NormalizeUnit(toks[i]); ok {
			return u, i
		}
	}
	if qtyIdx >= 0 {
		for i := qtyIdx - 1; i >= 0; i-- {
			if u, ok := constants.NormalizeUnit(toks[i]); ok {
				return u, i
			}
		}
	}
	return "", -1
}

// fillQuantity defaults a missing quantity to 1 for countable units, else
// derives it from unit and total cost.
func fillQuantity(item *entity.LineItem) {
	if item.Quantity != nil {
		return
	}
	if item.Unit != "" && constants.IsCountableUnit(item.Unit) {
		one := 1.0
		item.Quantity = &one
		return
	}
	if item.UnitCost != nil && item.TotalCost != nil {
		if q, ok := numparse.DeriveQuantity(*item.UnitCost, *item.TotalCost); ok {
			item.Quantity = &q
		}
	}
}

func dedupKey(item entity.LineItem) string {
	f := func(p *float64) string {
		if p == nil {
			return "-"
		}
		return fmt.Sprintf("%.4f", *p)
	}
	return strings.Join([]string{
		item.PartNumber, item.Description,
		f(item.Quantity), f(item.UnitCost), f(item.TotalCost),
	}, "|")
}
