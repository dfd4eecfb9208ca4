// Package watchlist provides the PostgreSQL-backed repository for the
// ongoing_watchlist join table and its IPO-joined list query.
package watchlist

import (
	"context"
	"fmt"

	"github.com/dkhamitov/ipotracker/internal/dbx"
	"github.com/dkhamitov/ipotracker/internal/models"
)

// PostgresRepository implements watchlist storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Add inserts a watchlist row and returns the generated watchlist_id.
// The same (user, ipo) pair may be inserted more than once; the schema
// has no uniqueness constraint on the pair.
func (r *PostgresRepository) Add(ctx context.Context, entry *models.WatchlistEntry) (int64, error) {

	query :=
		`INSERT INTO ongoing_watchlist (user_id, ipo_id, expiry_date)
		 VALUES ($1, $2, $3)
		 RETURNING watchlist_id
		 `

	err := r.db.QueryRowContext(ctx, query,
		entry.UserID, entry.IPOID, entry.ExpiryDate).Scan(&entry.ID)

	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return entry.ID, nil
}

// Remove deletes the row matching both the watchlist id and the owning
// user id. Matching zero rows is not an error: callers cannot tell a
// deletion apart from a no-op.
func (r *PostgresRepository) Remove(ctx context.Context, watchlistID, userID int64) error {
	query :=
		`DELETE FROM ongoing_watchlist
		 WHERE watchlist_id = $1 AND user_id = $2
		 `

	if _, err := r.db.ExecContext(ctx, query, watchlistID, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// ListByUser returns the user's watchlist rows joined with the followed
// IPO details, ordered by ascending IPO date.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.WatchlistItem, error) {
	query :=
		`SELECT ow.watchlist_id, ow.expiry_date,
		        i.ipo_id, i.name, i.symbol, i.company_name, i.offering_price, i.total_shares, i.ipo_date, i.status, i.description, i.created_at, i.updated_at
		 FROM ongoing_watchlist AS ow
		 JOIN ipos AS i ON ow.ipo_id = i.ipo_id
		 WHERE ow.user_id = $1
		 ORDER BY i.ipo_date ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.WatchlistItem
	for rows.Next() {
		var item models.WatchlistItem
		if err := rows.Scan(
			&item.WatchlistID, &item.ExpiryDate,
			&item.IPO.ID, &item.IPO.Name, &item.IPO.Symbol, &item.IPO.CompanyName,
			&item.IPO.OfferingPrice, &item.IPO.TotalShares, &item.IPO.IPODate,
			&item.IPO.Status, &item.IPO.Description, &item.IPO.CreatedAt, &item.IPO.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
