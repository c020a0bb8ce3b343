// Package pipeline orchestrates extraction: field heuristics and line-item
// reconstruction build a NormalizedDocument, then the association engine
// enriches it with master-data matches and typed issues.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/procurehq/po-intake/constants"
	"github.com/procurehq/po-intake/internal/common"
	"github.com/procurehq/po-intake/internal/entity"
	"github.com/procurehq/po-intake/internal/heuristics"
	"github.com/procurehq/po-intake/internal/lineitems"
	"github.com/procurehq/po-intake/internal/match"
	"github.com/procurehq/po-intake/internal/ocr"
)

// Result is the full output of processing one document: the enriched document
// plus user-visible warnings, informational notes, and machine-actionable
// issues.
type Result struct {
	Document entity.NormalizedDocument `json:"document"`
	Warnings []string                  `json:"warnings,omitempty"`
	Notes    []string                  `json:"notes,omitempty"`
	Issues   []entity.Issue            `json:"issues,omitempty"`
}

// Pipeline runs extraction for one document at a time. It is stateless across
// documents; the per-document fuzzy cache lives inside the matching call.
type Pipeline struct {
	Logger *slog.Logger
	Engine *match.Engine
}

func NewPipeline(engine *match.Engine, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{Logger: logger, Engine: engine}
}

// Extract processes one OCR input end to end. Detector misses degrade to
// warnings; the only hard failure below is a document with no text at all.
func (p *Pipeline) Extract(ctx context.Context, in *ocr.Input) (*Result, error) {
	lines := heuristics.SplitLines(in.Text)
	if len(lines) == 0 && len(in.Words) == 0 {
		return nil, common.ErrEmptyDocument
	}

	p.Logger.Info("pipeline.extract.start", "lines", len(lines), "words", len(in.Words))

	res := &Result{}
	doc := &res.Document

	// Detectors are independent pure functions over the line list; run them
	// together and join before association, which needs the full document.
	var (
		vendorName  string
		vendorIdx   int
		vendorAddr  string
		docType     constants.DocumentType
		keywords    []string
		billNumber  string
		billDate    string
		taxRate     float64
		hasTaxRate  bool
		currency    string
		rowItems    []entity.LineItem
		textItems   []entity.LineItem
		usedTextual bool
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		vendorName, vendorIdx, vendorAddr = heuristics.DetectVendor(lines)
		return nil
	})
	g.Go(func() error {
		docType, keywords = heuristics.DetectDocumentType(lines)
		return nil
	})
	g.Go(func() error {
		billNumber = heuristics.DetectBillNumber(lines)
		return nil
	})
	g.Go(func() error {
		billDate = heuristics.DetectBillDate(lines)
		return nil
	})
	g.Go(func() error {
		taxRate, hasTaxRate = heuristics.DetectTaxRate(lines)
		return nil
	})
	g.Go(func() error {
		currency = heuristics.DetectCurrency(lines)
		return nil
	})
	g.Go(func() error {
		rowItems = lineitems.FromRows(in.Rows())
		return nil
	})
	g.Go(func() error {
		textItems = lineitems.FromTextLines(lines)
		return nil
	})
	_ = g.Wait()

	doc.VendorName = vendorName
	doc.VendorAddress = vendorAddr
	doc.DocumentType = docType
	doc.DetectedKeywords = keywords
	doc.BillNumber = billNumber
	doc.BillDate = billDate
	doc.Currency = currency
	if hasTaxRate {
		doc.GSTRate = &taxRate
	}

	doc.LineItems = rowItems
	if len(doc.LineItems) == 0 {
		doc.LineItems = textItems
		usedTextual = len(textItems) > 0
	}
	if usedTextual {
		res.Notes = append(res.Notes, "line items reconstructed from text columns (no usable word geometry)")
	}

	p.warnMissing(res, doc)

	if p.Engine != nil {
		if err := p.associate(ctx, res, doc, lines, vendorIdx); err != nil {
			return nil, err
		}
	}

	p.Logger.Info("pipeline.extract.ok",
		"vendor", doc.VendorName,
		"bill_number", doc.BillNumber,
		"bill_date", doc.BillDate,
		"doc_type", doc.DocumentType,
		"line_items", len(doc.LineItems),
		"warnings", len(res.Warnings),
		"issues", len(res.Issues),
	)
	return res, nil
}

func (p *Pipeline) warnMissing(res *Result, doc *entity.NormalizedDocument) {
	if doc.VendorName == "" {
		res.Warnings = append(res.Warnings, "vendor name could not be detected")
	}
	if doc.BillNumber == "" {
		res.Warnings = append(res.Warnings, "bill number could not be detected")
	}
	if doc.BillDate == "" {
		res.Warnings = append(res.Warnings, "bill date could not be detected")
	}
	if doc.GSTRate == nil {
		res.Warnings = append(res.Warnings, "GST/tax rate could not be detected")
	}
	if doc.Currency == "" {
		res.Notes = append(res.Notes, "no currency code detected")
	}
	if len(doc.LineItems) == 0 {
		res.Warnings = append(res.Warnings, "no line items could be reconstructed")
	}
}

// associate runs the matching engine over the normalized document. Lookup and
// fuzzy failures inside the engine degrade to missing status; only
// canonicalization failures propagate.
func (p *Pipeline) associate(ctx context.Context, res *Result, doc *entity.NormalizedDocument, lines []string, vendorIdx int) error {
	if doc.VendorName != "" {
		vm, issues, err := p.Engine.MatchVendor(ctx, doc.VendorName)
		if err != nil {
			return fmt.Errorf("match vendor: %w", err)
		}
		if vm != nil {
			vm.Details = match.ExtractVendorDetails(lines, vendorIdx, doc.VendorAddress)
			doc.VendorMatch = vm
			if vm.Status == constants.MatchMissing {
				res.Warnings = append(res.Warnings, fmt.Sprintf("vendor %q is not in master data", doc.VendorName))
			}
		}
		res.Issues = append(res.Issues, issues...)
	}

	issues, err := p.Engine.MatchParts(ctx, doc.LineItems)
	if err != nil {
		return fmt.Errorf("match parts: %w", err)
	}
	res.Issues = append(res.Issues, issues...)

	for _, is := range issues {
		if is.Type == constants.IssuePartMissing {
			res.Warnings = append(res.Warnings, is.Message)
		}
	}
	return nil
}
