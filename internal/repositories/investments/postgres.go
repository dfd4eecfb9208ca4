// Package investments provides the PostgreSQL-backed repository for the
// past_investments ledger and its IPO-joined list query.
package investments

import (
	"context"
	"fmt"
	"time"

	"github.com/dkhamitov/ipotracker/internal/dbx"
	"github.com/dkhamitov/ipotracker/internal/models"
)

// PostgresRepository implements investment storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Add inserts an investment row and returns the generated investment_id.
// When soldDate is nil the column falls back to the server clock, so
// sold_date is never NULL for rows written through this layer.
func (r *PostgresRepository) Add(ctx context.Context, inv *models.Investment, soldDate *time.Time) (int64, error) {

	query :=
		`INSERT INTO past_investments (user_id, ipo_id, shares_purchased, purchase_price, sold_date, status)
		 VALUES ($1, $2, $3, $4, COALESCE($5, CURRENT_TIMESTAMP), $6)
		 RETURNING investment_id
		 `

	err := r.db.QueryRowContext(ctx, query,
		inv.UserID, inv.IPOID, inv.SharesPurchased, inv.PurchasePrice, soldDate, inv.Status).Scan(&inv.ID)

	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return inv.ID, nil
}

// UpdateStatus updates the status (and, when soldDate is non-nil, the
// sold_date) of the row matching both the investment id and the owning
// user id. Matching zero rows is not an error.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, investmentID, userID int64, status string, soldDate *time.Time) error {
	if soldDate != nil {
		query :=
			`UPDATE past_investments
			 SET status = $1, sold_date = $2
			 WHERE investment_id = $3 AND user_id = $4
			 `
		if _, err := r.db.ExecContext(ctx, query, status, *soldDate, investmentID, userID); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	}

	query :=
		`UPDATE past_investments
		 SET status = $1
		 WHERE investment_id = $2 AND user_id = $3
		 `
	if _, err := r.db.ExecContext(ctx, query, status, investmentID, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListByUser returns the user's investments joined with identifying IPO
// fields, ordered by descending sold date.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.InvestmentRecord, error) {
	query :=
		`SELECT pi.investment_id, pi.user_id, pi.ipo_id, pi.shares_purchased, pi.purchase_price, pi.sold_date, pi.status,
		        i.name AS ipo_name, i.symbol, i.ipo_date
		 FROM past_investments AS pi
		 JOIN ipos AS i ON pi.ipo_id = i.ipo_id
		 WHERE pi.user_id = $1
		 ORDER BY pi.sold_date DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.InvestmentRecord
	for rows.Next() {
		var rec models.InvestmentRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.IPOID, &rec.SharesPurchased, &rec.PurchasePrice,
			&rec.SoldDate, &rec.Status,
			&rec.IPOName, &rec.Symbol, &rec.IPODate,
		); err != nil {
			return nil, err
		}
		result = append(result, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
