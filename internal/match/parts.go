package match

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/procurehq/po-intake/constants"
	"github.com/procurehq/po-intake/internal/entity"
)

// MatchParts reconciles every line item's part number against master data in
// place and returns the issues raised. One batched lookup covers all unique
// canonical numbers; numbers it misses go to the fuzzy provider, one query per
// unique canonical, cached for the document and bounded by the configured
// concurrency. A fuzzy candidate is only eligible for auto-accept when its
// canonicalized label equals the query's canonical number, so a match that
// differs in a single digit never slips through on similarity alone.
func (e *Engine) MatchParts(ctx context.Context, items []entity.LineItem) ([]entity.Issue, error) {
	canonicals := make([]string, len(items))
	uniq := make(map[string]struct{})
	for i := range items {
		if items[i].PartNumber == "" {
			continue
		}
		c, err := CanonicalizePartNumber(items[i].PartNumber)
		if err != nil {
			return nil, err
		}
		canonicals[i] = c
		items[i].NormalizedPartNumber = c
		if c != "" {
			uniq[c] = struct{}{}
		}
	}
	if len(uniq) == 0 {
		return nil, nil
	}

	lookup := make([]string, 0, len(uniq))
	for c := range uniq {
		lookup = append(lookup, c)
	}
	sort.Strings(lookup)

	found := make(map[string]*entity.PartRecord, len(lookup))
	recs, err := e.master.FindPartsByCanonicalNumbers(ctx, lookup)
	if err != nil {
		e.logger.Warn("match.parts.lookup_failed", "count", len(lookup), "error", err)
	} else {
		for _, r := range recs {
			found[r.CanonicalNumber] = r
		}
	}

	cache := e.fuzzyPartQueries(ctx, lookup, found)

	var issues []entity.Issue
	for i := range items {
		canonical := canonicals[i]
		if canonical == "" {
			continue
		}
		idx := i
		if rec, ok := found[canonical]; ok {
			items[i].Match = e.existingPartMatch(rec, canonical, rec.PartNumber)
			issues = append(issues, e.checkDescription(&items[i], rec, idx)...)
			continue
		}

		candidates := cache[canonical]
		if top, ok := bestCanonicalEqual(candidates, canonical); ok && top.Score >= e.thresholds.MinScoreAuto {
			rec := e.partByID(ctx, top.ID)
			if rec != nil {
				items[i].Match = e.existingPartMatch(rec, canonical, top.Label)
				issues = append(issues, e.checkDescription(&items[i], rec, idx)...)
				continue
			}
		}

		suggested := strings.ToUpper(items[i].PartNumber)
		if suggested == "" {
			suggested = canonical
		}
		items[i].Match = &entity.LineItemMatch{
			Status:               constants.MatchMissing,
			NormalizedPartNumber: canonical,
			SuggestedPartNumber:  suggested,
		}
		issue := entity.Issue{
			ID:            uuid.NewString(),
			Type:          constants.IssuePartMissing,
			Severity:      constants.SeverityWarning,
			Message:       fmt.Sprintf("part %q not found in master data", items[i].PartNumber),
			LineItemIndex: &idx,
		}
		if labels, ids := suggestions(candidates, e.thresholds.MinScoreShow); len(labels) > 0 {
			issue.Message += "; closest: " + strings.Join(labels, ", ")
			issue.SuggestedIDs = ids
		}
		issues = append(issues, issue)
	}
	return issues, nil
}

// fuzzyPartQueries runs one fuzzy query per unique unmatched canonical number,
// in parallel up to the configured bound. Failures degrade to no candidates.
func (e *Engine) fuzzyPartQueries(ctx context.Context, lookup []string, found map[string]*entity.PartRecord) map[string][]Candidate {
	missing := make([]string, 0, len(lookup))
	for _, c := range lookup {
		if _, ok := found[c]; !ok {
			missing = append(missing, c)
		}
	}

	cache := make(map[string][]Candidate, len(missing))
	if len(missing) == 0 {
		return cache
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.thresholds.Concurrency)
	for _, canonical := range missing {
		canonical := canonical
		g.Go(func() error {
			candidates, err := e.fuzzy.Search(gctx, EntityPart, canonical, e.thresholds.MaxResults, e.thresholds.MinScoreShow)
			if err != nil {
				e.logger.Warn("match.parts.fuzzy_failed", "canonical", canonical, "error", err)
				return nil
			}
			mu.Lock()
			cache[canonical] = candidates
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return cache
}

// bestCanonicalEqual returns the highest-ranked candidate whose canonicalized
// label equals the query canonical.
func bestCanonicalEqual(candidates []Candidate, canonical string) (Candidate, bool) {
	for _, c := range candidates {
		lc, err := CanonicalizePartNumber(c.Label)
		if err != nil {
			continue
		}
		if lc == canonical {
			return c, true
		}
	}
	return Candidate{}, false
}

func (e *Engine) existingPartMatch(rec *entity.PartRecord, canonical, matchedNumber string) *entity.LineItemMatch {
	id := rec.ID
	return &entity.LineItemMatch{
		Status:               constants.MatchExisting,
		NormalizedPartNumber: canonical,
		MatchedPartNumber:    matchedNumber,
		PartID:               &id,
		PartDescription:      rec.Description,
		Unit:                 rec.Unit,
		LastUnitCost:         rec.LastUnitCost,
	}
}

// checkDescription compares the extracted description against the master
// record's. A mismatch is a review hint, not a rejection; accepted matches
// keep their status.
func (e *Engine) checkDescription(item *entity.LineItem, rec *entity.PartRecord, idx int) []entity.Issue {
	if item.Description == "" || rec.Description == "" {
		return nil
	}
	got, err1 := CanonicalizeName(item.Description)
	want, err2 := CanonicalizeName(rec.Description)
	if err1 != nil || err2 != nil {
		return nil
	}
	matches := got == want
	item.Match.DescriptionMatches = &matches
	if matches {
		return nil
	}
	id := rec.ID
	return []entity.Issue{{
		ID:            uuid.NewString(),
		Type:          constants.IssueDescriptionMismatch,
		Severity:      constants.SeverityWarning,
		Message:       fmt.Sprintf("description %q differs from master record %q for part %s", item.Description, rec.Description, rec.PartNumber),
		LineItemIndex: &idx,
		PartID:        &id,
	}}
}

func (e *Engine) partByID(ctx context.Context, id int) *entity.PartRecord {
	rec, err := e.master.FindPartByID(ctx, id)
	if err != nil {
		e.logger.Warn("match.parts.by_id_failed", "part_id", id, "error", err)
		return nil
	}
	return rec
}
