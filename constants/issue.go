package constants

// IssueType is the canonical type for machine-actionable extraction issues.
type IssueType string

// Stable values (store these exact strings in results).
const (
	IssueVendorMissing       IssueType = "vendor_missing"
	IssueVendorFuzzyMatch    IssueType = "vendor_fuzzy_match"
	IssuePartMissing         IssueType = "part_missing"
	IssueDescriptionMismatch IssueType = "description_mismatch"
)

// IssueSeverity distinguishes blocking problems from review hints.
type IssueSeverity string

const (
	SeverityWarning IssueSeverity = "warning"
	SeverityError   IssueSeverity = "error"
)

// MatchStatus is the outcome of a master-data reconciliation attempt.
type MatchStatus string

const (
	MatchExisting MatchStatus = "existing"
	MatchMissing  MatchStatus = "missing"
)
