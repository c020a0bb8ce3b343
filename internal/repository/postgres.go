package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/procurehq/po-intake/internal/entity"
	"github.com/procurehq/po-intake/internal/match"
)

// PostgresMasterData implements the master-data lookup contract and the fuzzy
// search contract against Postgres. Fuzzy queries use pg_trgm similarity()
// over the canonical columns, so the ordering contract (exact canonical match
// first, then descending score) is expressed directly in SQL.
type PostgresMasterData struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresMasterData(pool *pgxpool.Pool, logger *slog.Logger) *PostgresMasterData {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresMasterData{pool: pool, logger: logger}
}

func (r *PostgresMasterData) FindVendorByCanonicalName(ctx context.Context, name string) (*entity.VendorRecord, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, canonical_name,
		       COALESCE(address, ''), COALESCE(email, ''), COALESCE(phone, ''), COALESCE(postal_code, '')
		FROM vendors WHERE canonical_name = $1`, name)
	return scanVendor(row)
}

func (r *PostgresMasterData) FindVendorByID(ctx context.Context, id int) (*entity.VendorRecord, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, canonical_name,
		       COALESCE(address, ''), COALESCE(email, ''), COALESCE(phone, ''), COALESCE(postal_code, '')
		FROM vendors WHERE id = $1`, id)
	return scanVendor(row)
}

func (r *PostgresMasterData) FindPartsByCanonicalNumbers(ctx context.Context, numbers []string) ([]*entity.PartRecord, error) {
	if len(numbers) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, part_number, canonical_number, COALESCE(description, ''), COALESCE(unit, ''), last_unit_cost
		FROM parts WHERE canonical_number = ANY($1)`, numbers)
	if err != nil {
		r.logger.Error("failed to batch-load parts", "count", len(numbers), "error", err)
		return nil, err
	}
	defer rows.Close()

	var out []*entity.PartRecord
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresMasterData) FindPartByID(ctx context.Context, id int) (*entity.PartRecord, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, part_number, canonical_number, COALESCE(description, ''), COALESCE(unit, ''), last_unit_cost
		FROM parts WHERE id = $1`, id)
	return scanPart(row)
}

// Search implements match.FuzzySearcher over pg_trgm.
func (r *PostgresMasterData) Search(ctx context.Context, entityType match.EntityType, query string, limit int, minScore float64) ([]match.Candidate, error) {
	var sql string
	switch entityType {
	case match.EntityVendor, match.EntityCustomer:
		sql = `
			SELECT id, name, similarity(canonical_name, $1) AS score
			FROM vendors
			WHERE similarity(canonical_name, $1) >= $3
			ORDER BY (canonical_name = $1) DESC, score DESC
			LIMIT $2`
	case match.EntityPart:
		sql = `
			SELECT id, part_number, similarity(canonical_number, $1) AS score
			FROM parts
			WHERE similarity(canonical_number, $1) >= $3
			ORDER BY (canonical_number = $1) DESC, score DESC
			LIMIT $2`
	default:
		return nil, errors.New("unknown entity type: " + string(entityType))
	}

	rows, err := r.pool.Query(ctx, sql, query, limit, minScore)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []match.Candidate
	for rows.Next() {
		var c match.Candidate
		if err := rows.Scan(&c.ID, &c.Label, &c.Score); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVendor(row rowScanner) (*entity.VendorRecord, error) {
	var v entity.VendorRecord
	err := row.Scan(&v.ID, &v.Name, &v.CanonicalName, &v.Address, &v.Email, &v.Phone, &v.PostalCode)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func scanPart(row rowScanner) (*entity.PartRecord, error) {
	var p entity.PartRecord
	err := row.Scan(&p.ID, &p.PartNumber, &p.CanonicalNumber, &p.Description, &p.Unit, &p.LastUnitCost)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
