package constants

// DocumentType is the canonical classification for a scanned purchase document.
type DocumentType string

// Stable values (serialized as-is in results).
const (
	DocTypeInvoice     DocumentType = "invoice"
	DocTypePackingSlip DocumentType = "packing_slip"
	DocTypeReceipt     DocumentType = "receipt"
	DocTypeUnknown     DocumentType = "unknown"
)
