package constants

import "strings"

// unitAliases maps every unit-of-measure spelling we accept to its canonical form.
// Square-footage spellings all collapse to "ft^2".
var unitAliases = map[string]string{
	"ea":          "ea",
	"each":        "ea",
	"pc":          "pc",
	"pcs":         "pc",
	"piece":       "pc",
	"pieces":      "pc",
	"box":         "box",
	"bx":          "box",
	"case":        "case",
	"cs":          "case",
	"pr":          "pr",
	"pair":        "pr",
	"doz":         "doz",
	"dozen":       "doz",
	"set":         "set",
	"kit":         "kit",
	"roll":        "roll",
	"rl":          "roll",
	"bag":         "bag",
	"ft":          "ft",
	"feet":        "ft",
	"ft2":         "ft^2",
	"ft^2":        "ft^2",
	"sqft":        "ft^2",
	"sq ft":       "ft^2",
	"square feet": "ft^2",
	"m":           "m",
	"mm":          "mm",
	"cm":          "cm",
	"in":          "in",
	"kg":          "kg",
	"g":           "g",
	"lb":          "lb",
	"lbs":         "lb",
	"l":           "l",
	"ltr":         "l",
	"gal":         "gal",
	"hr":          "hr",
	"hrs":         "hr",
	"hour":        "hr",
	"hours":       "hr",
}

// countableUnits are the units that imply a default quantity of 1 when a row has
// a unit token but no quantity token.
var countableUnits = map[string]struct{}{
	"ea": {}, "pc": {}, "box": {}, "case": {}, "pr": {}, "set": {}, "kit": {}, "roll": {}, "bag": {},
}

// NormalizeUnit maps a raw token to its canonical unit of measure.
// Returns ("", false) when the token is not a recognized unit.
func NormalizeUnit(token string) (string, bool) {
	u, ok := unitAliases[strings.ToLower(strings.TrimSpace(token))]
	return u, ok
}

// IsCountableUnit reports whether a canonical unit counts discrete items.
func IsCountableUnit(unit string) bool {
	_, ok := countableUnits[unit]
	return ok
}
