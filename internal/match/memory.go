package match

import (
	"context"
	"sort"

	"github.com/agext/levenshtein"

	"github.com/procurehq/po-intake/internal/entity"
)

var levParams = levenshtein.NewParams()

type memoryEntry struct {
	id        int
	label     string
	canonical string
	extra     map[string]string
}

// MemorySearcher is an in-process FuzzySearcher over loaded master-data
// records, scored by Levenshtein similarity. It backs local/offline runs and
// tests; production deployments use the trigram-backed store instead.
type MemorySearcher struct {
	entries map[EntityType][]memoryEntry
}

func NewMemorySearcher() *MemorySearcher {
	return &MemorySearcher{entries: make(map[EntityType][]memoryEntry)}
}

// AddVendor indexes one vendor record. Records with empty canonical names are
// ignored.
func (s *MemorySearcher) AddVendor(v *entity.VendorRecord) {
	if v == nil || v.CanonicalName == "" {
		return
	}
	s.entries[EntityVendor] = append(s.entries[EntityVendor], memoryEntry{
		id: v.ID, label: v.Name, canonical: v.CanonicalName,
	})
}

// AddPart indexes one part record.
func (s *MemorySearcher) AddPart(p *entity.PartRecord) {
	if p == nil || p.CanonicalNumber == "" {
		return
	}
	s.entries[EntityPart] = append(s.entries[EntityPart], memoryEntry{
		id: p.ID, label: p.PartNumber, canonical: p.CanonicalNumber,
		extra: map[string]string{"description": p.Description},
	})
}

// Search ranks entries by similarity to the canonical query: exact canonical
// matches first, then descending score, cut at minScore and limit.
func (s *MemorySearcher) Search(_ context.Context, entityType EntityType, query string, limit int, minScore float64) ([]Candidate, error) {
	if query == "" {
		return nil, nil
	}

	var out []Candidate
	exact := make(map[int]bool)
	for _, e := range s.entries[entityType] {
		score := levenshtein.Similarity(query, e.canonical, levParams)
		if e.canonical == query {
			score = 1
			exact[e.id] = true
		}
		if score < minScore {
			continue
		}
		out = append(out, Candidate{ID: e.id, Label: e.label, Score: score, Extra: e.extra})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if exact[out[i].ID] != exact[out[j].ID] {
			return exact[out[i].ID]
		}
		return out[i].Score > out[j].Score
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
