package entity

import "github.com/procurehq/po-intake/constants"

// NormalizedDocument is the structured result of running extraction over one
// scanned purchase document. Fields are written once by the pipeline stage that
// owns them and never mutated concurrently.
type NormalizedDocument struct {
	VendorName       string                 `json:"vendor_name"`
	VendorAddress    string                 `json:"vendor_address"`
	BillNumber       string                 `json:"bill_number"`
	BillDate         string                 `json:"bill_date,omitempty"` // ISO YYYY-MM-DD, empty when undetected
	GSTRate          *float64               `json:"gst_rate,omitempty"`  // percent
	Currency         string                 `json:"currency,omitempty"`
	DocumentType     constants.DocumentType `json:"document_type"`
	DetectedKeywords []string               `json:"detected_keywords,omitempty"`
	LineItems        []LineItem             `json:"line_items"`
	VendorMatch      *VendorMatch           `json:"vendor_match,omitempty"`
}

// LineItem is one reconstructed row of the document's item table.
type LineItem struct {
	RawLine              string         `json:"raw_line"`
	PartNumber           string         `json:"part_number,omitempty"`
	Description          string         `json:"description"`
	Quantity             *float64       `json:"quantity,omitempty"`
	Unit                 string         `json:"unit,omitempty"`
	UnitCost             *float64       `json:"unit_cost,omitempty"`
	TotalCost            *float64       `json:"total_cost,omitempty"`
	NormalizedPartNumber string         `json:"normalized_part_number,omitempty"`
	Match                *LineItemMatch `json:"match,omitempty"`
}

// VendorMatch records the outcome of reconciling the detected vendor name
// against master data. Status existing always carries a non-nil VendorID.
type VendorMatch struct {
	Status               constants.MatchStatus `json:"status"`
	VendorID             *int                  `json:"vendor_id,omitempty"`
	VendorName           string                `json:"vendor_name"`
	NormalizedVendorName string                `json:"normalized_vendor_name"`
	MatchedVendorName    string                `json:"matched_vendor_name,omitempty"`
	Confidence           float64               `json:"confidence"` // [0,1]
	Details              *VendorDetails        `json:"details,omitempty"`
}

// VendorDetails carries contact fields scraped from the lines around the vendor
// name anchor.
type VendorDetails struct {
	Address    string `json:"address,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

// LineItemMatch records the outcome of reconciling one line item's part number
// against master data. Status existing always carries a non-nil PartID.
type LineItemMatch struct {
	Status               constants.MatchStatus `json:"status"`
	NormalizedPartNumber string                `json:"normalized_part_number"`
	MatchedPartNumber    string                `json:"matched_part_number,omitempty"`
	PartID               *int                  `json:"part_id,omitempty"`
	PartDescription      string                `json:"part_description,omitempty"`
	Unit                 string                `json:"unit,omitempty"`
	LastUnitCost         *float64              `json:"last_unit_cost,omitempty"`
	DescriptionMatches   *bool                 `json:"description_matches,omitempty"`
	SuggestedPartNumber  string                `json:"suggested_part_number,omitempty"`
}

// Issue is a typed, machine-actionable annotation describing a specific
// extraction or matching gap. Distinct from free-text warnings.
type Issue struct {
	ID            string                  `json:"id"`
	Type          constants.IssueType     `json:"type"`
	Severity      constants.IssueSeverity `json:"severity"`
	Message       string                  `json:"message"`
	LineItemIndex *int                    `json:"line_item_index,omitempty"`
	VendorID      *int                    `json:"vendor_id,omitempty"`
	PartID        *int                    `json:"part_id,omitempty"`
	SuggestedIDs  []int                   `json:"suggested_ids,omitempty"`
}
