// Package match reconciles extracted vendor names and part numbers against
// master data: exact canonical lookup first, fuzzy similarity search as the
// fallback, with typed issues for every gap.
package match

import (
	"context"
	"log/slog"

	"github.com/procurehq/po-intake/internal/entity"
)

// EntityType selects the namespace a fuzzy query runs against.
type EntityType string

const (
	EntityVendor   EntityType = "vendor"
	EntityCustomer EntityType = "customer"
	EntityPart     EntityType = "part"
)

// Candidate is one ranked fuzzy-search result.
type Candidate struct {
	ID    int               `json:"id"`
	Label string            `json:"label"`
	Score float64           `json:"score"` // [0,1]
	Extra map[string]string `json:"extra,omitempty"`
}

// FuzzySearcher is the external similarity-search contract. Results are
// ordered exact-canonical-match first, then by descending score.
type FuzzySearcher interface {
	Search(ctx context.Context, entityType EntityType, query string, limit int, minScore float64) ([]Candidate, error)
}

// MasterData is the lookup contract over existing vendor and part records.
// Absent records return (nil, nil); errors are reserved for lookup failures.
type MasterData interface {
	FindVendorByCanonicalName(ctx context.Context, name string) (*entity.VendorRecord, error)
	FindVendorByID(ctx context.Context, id int) (*entity.VendorRecord, error)
	FindPartsByCanonicalNumbers(ctx context.Context, numbers []string) ([]*entity.PartRecord, error)
	FindPartByID(ctx context.Context, id int) (*entity.PartRecord, error)
}

// Thresholds holds the similarity cutoffs and fan-out limits for matching.
type Thresholds struct {
	MinScoreAuto float64 // at/above: fuzzy match auto-accepts
	MinScoreShow float64 // at/above: suggestion is surfaced
	MaxResults   int     // fuzzy query limit
	Concurrency  int     // bound on parallel per-part fuzzy queries
}

// Engine is a pure enrichment pass over an already-normalized document. It
// holds no per-document state; the fuzzy cache lives in the matching call.
type Engine struct {
	logger     *slog.Logger
	master     MasterData
	fuzzy      FuzzySearcher
	thresholds Thresholds
}

func NewEngine(master MasterData, fuzzy FuzzySearcher, thresholds Thresholds, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if thresholds.MaxResults <= 0 {
		thresholds.MaxResults = 5
	}
	if thresholds.Concurrency <= 0 {
		thresholds.Concurrency = 4
	}
	return &Engine{logger: logger, master: master, fuzzy: fuzzy, thresholds: thresholds}
}
