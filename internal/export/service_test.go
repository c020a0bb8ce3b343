package export

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/procurehq/po-intake/constants"
	"github.com/procurehq/po-intake/internal/entity"
	"github.com/procurehq/po-intake/internal/pipeline"
)

func TestBuildXLSX(t *testing.T) {
	qty, unitCost, total := 3.0, 10.0, 30.0
	gst := 5.0
	partID := 11
	res := &pipeline.Result{
		Document: entity.NormalizedDocument{
			VendorName:   "ACME SUPPLY INC",
			BillNumber:   "4521",
			BillDate:     "2024-05-01",
			GSTRate:      &gst,
			Currency:     "CAD",
			DocumentType: constants.DocTypeInvoice,
			LineItems: []entity.LineItem{{
				PartNumber:  "WIDGET-1",
				Description: "Steel Widget",
				Quantity:    &qty,
				Unit:        "ea",
				UnitCost:    &unitCost,
				TotalCost:   &total,
				Match: &entity.LineItemMatch{
					Status:            constants.MatchExisting,
					MatchedPartNumber: "WIDGET-1",
					PartID:            &partID,
				},
			}},
		},
		Issues: []entity.Issue{{
			Type:     constants.IssueVendorMissing,
			Severity: constants.SeverityWarning,
			Message:  `vendor "ACME SUPPLY INC" not found in master data`,
		}},
	}

	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
	out, err := svc.BuildXLSX(res)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Line Items", "B1")
	require.NoError(t, err)
	assert.Equal(t, "ACME SUPPLY INC", v)

	v, err = f.GetCellValue("Line Items", "A11")
	require.NoError(t, err)
	assert.Equal(t, "WIDGET-1", v)

	v, err = f.GetCellValue("Line Items", "G11")
	require.NoError(t, err)
	assert.Equal(t, "existing (WIDGET-1)", v)

	v, err = f.GetCellValue("Issues", "A2")
	require.NoError(t, err)
	assert.Equal(t, "vendor_missing", v)
}

func TestBuildXLSXEmptyResult(t *testing.T) {
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
	out, err := svc.BuildXLSX(&pipeline.Result{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
