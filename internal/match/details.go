package match

import (
	"regexp"

	"github.com/procurehq/po-intake/internal/entity"
)

// detailWindow is how many lines below the vendor-name anchor are scanned for
// contact details.
const detailWindow = 8

var (
	detailEmailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	detailPhoneRe = regexp.MustCompile(`(\+?1[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	// Canadian alphanumeric and US 5/9-digit postal shapes
	detailPostalRe = regexp.MustCompile(`\b([A-Za-z]\d[A-Za-z]\s?\d[A-Za-z]\d|\d{5}(?:-\d{4})?)\b`)
)

// ExtractVendorDetails scans a small window of lines around the vendor name
// anchor for email, phone, and postal-code shapes. The address block comes
// from the vendor detector; it is passed through untouched.
func ExtractVendorDetails(lines []string, anchor int, address string) *entity.VendorDetails {
	if anchor < 0 || anchor >= len(lines) {
		return nil
	}
	start := anchor - 1
	if start < 0 {
		start = 0
	}
	end := anchor + detailWindow
	if end > len(lines) {
		end = len(lines)
	}

	d := entity.VendorDetails{Address: address}
	for _, line := range lines[start:end] {
		if d.Email == "" {
			d.Email = detailEmailRe.FindString(line)
		}
		if d.Phone == "" {
			d.Phone = detailPhoneRe.FindString(line)
		}
		if d.PostalCode == "" {
			d.PostalCode = detailPostalRe.FindString(line)
		}
	}
	if d == (entity.VendorDetails{}) {
		return nil
	}
	return &d
}
