package lineitems

import (
	"regexp"
	"strings"

	"github.com/procurehq/po-intake/constants"
	"github.com/procurehq/po-intake/internal/entity"
	"github.com/procurehq/po-intake/internal/numparse"
)

var (
	headerPartRe  = regexp.MustCompile(`(?i)\b(part|item|sku|description)\b`)
	headerQtyRe   = regexp.MustCompile(`(?i)\b(qty|quantity)\b`)
	headerPriceRe = regexp.MustCompile(`(?i)\b(price|cost|amount|total)\b`)
	columnSplitRe = regexp.MustCompile(`\t+| {2,}`)
)

// FromTextLines is the fallback reconstructor for documents without word
// geometry: find a header line naming part/qty/price columns, then split each
// subsequent line on runs of two or more spaces.
func FromTextLines(lines []string) []entity.LineItem {
	header := -1
	for i, line := range lines {
		if headerPartRe.MatchString(line) && headerQtyRe.MatchString(line) && headerPriceRe.MatchString(line) {
			header = i
			break
		}
	}
	if header < 0 {
		return nil
	}

	var items []entity.LineItem
	seen := make(map[string]struct{})
	for _, line := range lines[header+1:] {
		if stopMarkerRe.MatchString(line) {
			break
		}
		item, ok := itemFromColumns(line)
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

func itemFromColumns(line string) (entity.LineItem, bool) {
	cols := columnSplitRe.Split(strings.TrimSpace(line), -1)
	if len(cols) < 3 {
		return entity.LineItem{}, false
	}
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}

	// require a parseable quantity or total somewhere in the last three columns
	tail := cols[len(cols)-3:]
	hasNumeric := false
	for _, c := range tail {
		if isQuantityToken(c) || isMoneyToken(c) {
			hasNumeric = true
			break
		}
	}
	if !hasNumeric {
		return entity.LineItem{}, false
	}

	item := entity.LineItem{RawLine: line}

	// money columns right to left: total first, then unit cost
	rest := make([]bool, len(cols)) // marks columns consumed by numeric fields
	for i := len(cols) - 1; i >= 1; i-- {
		if !isMoneyToken(cols[i]) {
			continue
		}
		v := parseMoney(cols[i])
		if item.TotalCost == nil {
			item.TotalCost, rest[i] = v, true
		} else if item.UnitCost == nil {
			item.UnitCost, rest[i] = v, true
			break
		}
	}
	for i := len(cols) - 1; i >= 1; i-- {
		if rest[i] || !isQuantityToken(cols[i]) {
			continue
		}
		if v, ok := numparse.ParseNumber(cols[i]); ok {
			item.Quantity, rest[i] = &v, true
			break
		}
	}
	for i := 1; i < len(cols); i++ {
		if rest[i] {
			continue
		}
		if u, ok := constants.NormalizeUnit(cols[i]); ok {
			item.Unit, rest[i] = u, true
			break
		}
	}

	// first column is a part number only when it is code-like and a separate
	// description column exists
	descStart := 0
	if (isPartToken(cols[0]) || isPartFallbackToken(cols[0])) && hasTextColumn(cols[1:], rest[1:]) {
		item.PartNumber = cols[0]
		descStart = 1
	}
	var descParts []string
	for i := descStart; i < len(cols); i++ {
		if rest[i] || (i == 0 && item.PartNumber != "") {
			continue
		}
		if isMoneyToken(cols[i]) || isQuantityToken(cols[i]) {
			continue
		}
		if cols[i] != "" {
			descParts = append(descParts, cols[i])
		}
	}
	item.Description = strings.Join(descParts, " ")

	if item.PartNumber == "" && len(item.Description) < 3 {
		return entity.LineItem{}, false
	}
	fillQuantity(&item)
	return item, true
}

func hasTextColumn(cols []string, consumed []bool) bool {
	for i, c := range cols {
		if consumed[i] || c == "" {
			continue
		}
		if !isMoneyToken(c) && !isQuantityToken(c) {
			return true
		}
	}
	return false
}
