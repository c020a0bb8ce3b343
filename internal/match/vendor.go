package match

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/procurehq/po-intake/constants"
	"github.com/procurehq/po-intake/internal/entity"
)

const maxSuggestions = 3

// MatchVendor reconciles a detected vendor name against master data. An exact
// canonical hit returns confidence 1 without consulting the fuzzy provider;
// otherwise the top fuzzy result auto-accepts at or above MinScoreAuto, and
// anything at or above MinScoreShow is surfaced as a suggestion on the
// vendor_missing issue.
func (e *Engine) MatchVendor(ctx context.Context, vendorName string) (*entity.VendorMatch, []entity.Issue, error) {
	canonical, err := CanonicalizeName(vendorName)
	if err != nil {
		return nil, nil, err
	}
	if canonical == "" {
		return nil, nil, nil
	}

	if rec, err := e.master.FindVendorByCanonicalName(ctx, canonical); err != nil {
		e.logger.Warn("match.vendor.lookup_failed", "canonical", canonical, "error", err)
	} else if rec != nil {
		id := rec.ID
		return &entity.VendorMatch{
			Status:               constants.MatchExisting,
			VendorID:             &id,
			VendorName:           vendorName,
			NormalizedVendorName: canonical,
			MatchedVendorName:    rec.Name,
			Confidence:           1,
		}, nil, nil
	}

	candidates, err := e.fuzzy.Search(ctx, EntityVendor, canonical, e.thresholds.MaxResults, e.thresholds.MinScoreShow)
	if err != nil {
		e.logger.Warn("match.vendor.fuzzy_failed", "canonical", canonical, "error", err)
		candidates = nil
	}

	if len(candidates) > 0 && candidates[0].Score >= e.thresholds.MinScoreAuto {
		top := candidates[0]
		id := top.ID
		e.logger.Info("match.vendor.fuzzy", "canonical", canonical, "matched", top.Label, "score", top.Score)
		issue := entity.Issue{
			ID:       uuid.NewString(),
			Type:     constants.IssueVendorFuzzyMatch,
			Severity: constants.SeverityWarning,
			Message:  fmt.Sprintf("vendor %q matched %q by similarity (%d%%)", vendorName, top.Label, pct(top.Score)),
			VendorID: &id,
		}
		return &entity.VendorMatch{
			Status:               constants.MatchExisting,
			VendorID:             &id,
			VendorName:           vendorName,
			NormalizedVendorName: canonical,
			MatchedVendorName:    top.Label,
			Confidence:           top.Score,
		}, []entity.Issue{issue}, nil
	}

	match := &entity.VendorMatch{
		Status:               constants.MatchMissing,
		VendorName:           vendorName,
		NormalizedVendorName: canonical,
	}
	if len(candidates) > 0 {
		match.Confidence = candidates[0].Score
	}

	issue := entity.Issue{
		ID:       uuid.NewString(),
		Type:     constants.IssueVendorMissing,
		Severity: constants.SeverityWarning,
		Message:  fmt.Sprintf("vendor %q not found in master data", vendorName),
	}
	if labels, ids := suggestions(candidates, e.thresholds.MinScoreShow); len(labels) > 0 {
		issue.Message += "; closest: " + strings.Join(labels, ", ")
		issue.SuggestedIDs = ids
	}
	return match, []entity.Issue{issue}, nil
}

// suggestions formats up to maxSuggestions candidates at or above minScore as
// "label (NN%)" plus their ids.
func suggestions(candidates []Candidate, minScore float64) ([]string, []int) {
	var labels []string
	var ids []int
	for _, c := range candidates {
		if c.Score < minScore {
			continue
		}
		labels = append(labels, fmt.Sprintf("%s (%d%%)", c.Label, pct(c.Score)))
		ids = append(ids, c.ID)
		if len(labels) == maxSuggestions {
			break
		}
	}
	return labels, ids
}

func pct(score float64) int {
	return int(score*100 + 0.5)
}
