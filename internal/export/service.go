// Package export renders an extraction result as an XLSX review sheet: a
// header block for the document fields, the line-item table with match
// annotations, and an issues sheet.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/procurehq/po-intake/internal/entity"
	"github.com/procurehq/po-intake/internal/pipeline"
)

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

const (
	itemsSheet  = "Line Items"
	issuesSheet = "Issues"
)

// BuildXLSX returns an XLSX workbook (as bytes) for one extraction result.
func (s *Service) BuildXLSX(res *pipeline.Result) ([]byte, error) {
	start := time.Now()
	f := excelize.NewFile()

	if _, err := f.NewSheet(itemsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(issuesSheet); err != nil {
		return nil, err
	}
	_ = f.DeleteSheet("Sheet1")
	idx, _ := f.GetSheetIndex(itemsSheet)
	f.SetActiveSheet(idx)

	s.writeHeaderBlock(f, &res.Document)
	s.writeLineItems(f, res.Document.LineItems)
	s.writeIssues(f, res.Issues)

	_ = f.SetColWidth(itemsSheet, "A", "A", 18) // part
	_ = f.SetColWidth(itemsSheet, "B", "B", 42) // description
	_ = f.SetColWidth(itemsSheet, "C", "E", 12) // qty/unit/cost
	_ = f.SetColWidth(itemsSheet, "F", "G", 14) // total/status
	_ = f.SetColWidth(issuesSheet, "A", "A", 24)
	_ = f.SetColWidth(issuesSheet, "B", "B", 10)
	_ = f.SetColWidth(issuesSheet, "C", "C", 80)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"line_items", len(res.Document.LineItems),
		"issues", len(res.Issues),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (s *Service) writeHeaderBlock(f *excelize.File, doc *entity.NormalizedDocument) {
	set := func(row int, label string, v any) {
		_ = f.SetCellValue(itemsSheet, fmt.Sprintf("A%d", row), label)
		_ = f.SetCellValue(itemsSheet, fmt.Sprintf("B%d", row), v)
	}
	set(1, "Vendor", doc.VendorName)
	set(2, "Vendor Address", doc.VendorAddress)
	set(3, "Bill Number", doc.BillNumber)
	set(4, "Bill Date", doc.BillDate)
	if doc.GSTRate != nil {
		set(5, "GST Rate (%)", *doc.GSTRate)
	} else {
		set(5, "GST Rate (%)", "")
	}
	set(6, "Currency", doc.Currency)
	set(7, "Document Type", string(doc.DocumentType))
	if doc.VendorMatch != nil {
		status := string(doc.VendorMatch.Status)
		if doc.VendorMatch.MatchedVendorName != "" {
			status += " (" + doc.VendorMatch.MatchedVendorName + ")"
		}
		set(8, "Vendor Match", status)
	}
}

func (s *Service) writeLineItems(f *excelize.File, items []entity.LineItem) {
	const startRow = 10
	headers := []string{"Part Number", "Description", "Quantity", "Unit", "Unit Cost", "Total", "Match"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, startRow)
		_ = f.SetCellValue(itemsSheet, cell, h)
	}

	num := func(p *float64) any {
		if p == nil {
			return ""
		}
		return *p
	}
	for i, item := range items {
		row := startRow + 1 + i
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(itemsSheet, cell, v)
		}
		write(1, item.PartNumber)
		write(2, item.Description)
		write(3, num(item.Quantity))
		write(4, item.Unit)
		write(5, num(item.UnitCost))
		write(6, num(item.TotalCost))
		if item.Match != nil {
			status := string(item.Match.Status)
			if item.Match.MatchedPartNumber != "" {
				status += " (" + item.Match.MatchedPartNumber + ")"
			}
			write(7, status)
		}
	}
}

func (s *Service) writeIssues(f *excelize.File, issues []entity.Issue) {
	headers := []string{"Type", "Severity", "Message"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(issuesSheet, cell, h)
	}
	for i, is := range issues {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(issuesSheet, cell, v)
		}
		write(1, string(is.Type))
		write(2, string(is.Severity))
		write(3, is.Message)
	}
}
