package entity

// VendorRecord is a master-data vendor row for data transfer between layers.
type VendorRecord struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	CanonicalName string `json:"canonical_name"`
	Address       string `json:"address,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
}

// PartRecord is a master-data part row for data transfer between layers.
type PartRecord struct {
	ID              int      `json:"id"`
	PartNumber      string   `json:"part_number"`
	CanonicalNumber string   `json:"canonical_number"`
	Description     string   `json:"description,omitempty"`
	Unit            string   `json:"unit,omitempty"`
	LastUnitCost    *float64 `json:"last_unit_cost,omitempty"`
}
