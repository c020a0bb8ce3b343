package constants

// CurrencyCodes lists the currency codes the detector recognizes, in priority
// order. The first code found in the document text wins.
var CurrencyCodes = []string{"CAD", "USD", "EUR"}
