package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/procurehq/po-intake/internal/entity"
)

// SQLiteMasterData is the file-backed master-data store for local and offline
// runs. SQLite has no trigram similarity, so fuzzy search is handled by the
// in-memory searcher loaded from the same tables; this type only implements
// the lookup contract.
type SQLiteMasterData struct {
	db     *sql.DB
	logger *slog.Logger
}

func OpenSQLite(path string, logger *slog.Logger) (*SQLiteMasterData, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite master data: %w", err)
	}
	logger.Info("opened sqlite master-data store", "path", path)
	return &SQLiteMasterData{db: db, logger: logger}, nil
}

func (r *SQLiteMasterData) Close() error {
	return r.db.Close()
}

func (r *SQLiteMasterData) FindVendorByCanonicalName(ctx context.Context, name string) (*entity.VendorRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, canonical_name,
		       COALESCE(address, ''), COALESCE(email, ''), COALESCE(phone, ''), COALESCE(postal_code, '')
		FROM vendors WHERE canonical_name = ?`, name)
	return scanVendorSQL(row)
}

func (r *SQLiteMasterData) FindVendorByID(ctx context.Context, id int) (*entity.VendorRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, canonical_name,
		       COALESCE(address, ''), COALESCE(email, ''), COALESCE(phone, ''), COALESCE(postal_code, '')
		FROM vendors WHERE id = ?`, id)
	return scanVendorSQL(row)
}

func (r *SQLiteMasterData) FindPartsByCanonicalNumbers(ctx context.Context, numbers []string) ([]*entity.PartRecord, error) {
	if len(numbers) == 0 {
		return nil, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(numbers)), ",")
	args := make([]any, len(numbers))
	for i, n := range numbers {
		args[i] = n
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, part_number, canonical_number, COALESCE(description, ''), COALESCE(unit, ''), last_unit_cost
		FROM parts WHERE canonical_number IN (`+placeholders+`)`, args...)
	if err != nil {
		r.logger.Error("failed to batch-load parts", "count", len(numbers), "error", err)
		return nil, err
	}
	defer rows.Close()

	var out []*entity.PartRecord
	for rows.Next() {
		var p entity.PartRecord
		if err := rows.Scan(&p.ID, &p.PartNumber, &p.CanonicalNumber, &p.Description, &p.Unit, &p.LastUnitCost); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *SQLiteMasterData) FindPartByID(ctx context.Context, id int) (*entity.PartRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, part_number, canonical_number, COALESCE(description, ''), COALESCE(unit, ''), last_unit_cost
		FROM parts WHERE id = ?`, id)
	var p entity.PartRecord
	err := row.Scan(&p.ID, &p.PartNumber, &p.CanonicalNumber, &p.Description, &p.Unit, &p.LastUnitCost)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListVendors loads every vendor row, used to seed the in-memory fuzzy
// searcher for local runs.
func (r *SQLiteMasterData) ListVendors(ctx context.Context) ([]*entity.VendorRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, canonical_name,
		       COALESCE(address, ''), COALESCE(email, ''), COALESCE(phone, ''), COALESCE(postal_code, '')
		FROM vendors`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.VendorRecord
	for rows.Next() {
		var v entity.VendorRecord
		if err := rows.Scan(&v.ID, &v.Name, &v.CanonicalName, &v.Address, &v.Email, &v.Phone, &v.PostalCode); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}

// ListParts loads every part row for the in-memory fuzzy searcher.
func (r *SQLiteMasterData) ListParts(ctx context.Context) ([]*entity.PartRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, part_number, canonical_number, COALESCE(description, ''), COALESCE(unit, ''), last_unit_cost
		FROM parts`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.PartRecord
	for rows.Next() {
		var p entity.PartRecord
		if err := rows.Scan(&p.ID, &p.PartNumber, &p.CanonicalNumber, &p.Description, &p.Unit, &p.LastUnitCost); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func scanVendorSQL(row *sql.Row) (*entity.VendorRecord, error) {
	var v entity.VendorRecord
	err := row.Scan(&v.ID, &v.Name, &v.CanonicalName, &v.Address, &v.Email, &v.Phone, &v.PostalCode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}
