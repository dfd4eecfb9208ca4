package watchlist

import (
	"context"

	"github.com/dkhamitov/ipotracker/internal/models"
)

type Repository interface {
	Add(ctx context.Context, entry *models.WatchlistEntry) (int64, error)
	Remove(ctx context.Context, watchlistID, userID int64) error
	ListByUser(ctx context.Context, userID int64) ([]*models.WatchlistItem, error)
}
