// Package ipos provides the PostgreSQL-backed repository for IPO listing
// rows. Duplicate listings for the same symbol are permitted; the schema
// carries no uniqueness constraint here.
package ipos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dkhamitov/ipotracker/internal/common"
	"github.com/dkhamitov/ipotracker/internal/dbx"
	"github.com/dkhamitov/ipotracker/internal/models"
)

// PostgresRepository implements IPO storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts an IPO row unconditionally and returns the generated
// ipo_id. created_at and updated_at are set by column defaults.
func (r *PostgresRepository) Create(ctx context.Context, ipo *models.IPO) (int64, error) {

	query :=
		`INSERT INTO ipos (name, symbol, company_name, offering_price, total_shares, ipo_date, status, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING ipo_id
		 `

	err := r.db.QueryRowContext(ctx, query,
		ipo.Name, ipo.Symbol, ipo.CompanyName, ipo.OfferingPrice,
		ipo.TotalShares, ipo.IPODate, ipo.Status, ipo.Description).Scan(&ipo.ID)

	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return ipo.ID, nil
}

// Get returns the full IPO row by id, or common.ErrNotFound when no row
// matches.
func (r *PostgresRepository) Get(ctx context.Context, ipoID int64) (*models.IPO, error) {
	query :=
		`SELECT ipo_id, name, symbol, company_name, offering_price, total_shares, ipo_date, status, description, created_at, updated_at FROM ipos
		 WHERE ipo_id = $1
		 `

	ipo := &models.IPO{}
	err := r.db.QueryRowContext(ctx, query, ipoID).Scan(
		&ipo.ID, &ipo.Name, &ipo.Symbol, &ipo.CompanyName, &ipo.OfferingPrice,
		&ipo.TotalShares, &ipo.IPODate, &ipo.Status, &ipo.Description,
		&ipo.CreatedAt, &ipo.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return ipo, nil
}
