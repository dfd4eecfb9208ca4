package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dkhamitov/ipotracker/internal/models"
	"github.com/dkhamitov/ipotracker/internal/repositories/repomanager"
)

// WatchlistService manages which IPOs a user follows.
type WatchlistService struct {
	db *sql.DB
	rm repomanager.RepositoryManager
}

// NewWatchlistService constructs a WatchlistService over the shared pool
// and repository manager.
func NewWatchlistService(db *sql.DB, rm repomanager.RepositoryManager) *WatchlistService {
	return &WatchlistService{db: db, rm: rm}
}

// Add puts an IPO on the user's watchlist and returns the generated
// watchlist id. No duplicate check is performed; re-adding the same IPO
// creates another entry. Referential integrity is left to the store's
// foreign keys.
func (s *WatchlistService) Add(ctx context.Context, userID, ipoID int64, expiryDate *time.Time) (int64, error) {
	entry := &models.WatchlistEntry{UserID: userID, IPOID: ipoID, ExpiryDate: expiryDate}

	repo := s.rm.Watchlist(s.db)
	id, err := repo.Add(ctx, entry)
	if err != nil {
		return 0, fmt.Errorf("error adding to watchlist: %w", err)
	}
	return id, nil
}

// Remove deletes the entry matching both ids. Requiring the owning user
// id keeps one user from deleting another's entry. Removing an entry
// that does not exist (or is owned by someone else) is still reported
// as success.
func (s *WatchlistService) Remove(ctx context.Context, watchlistID, userID int64) error {
	repo := s.rm.Watchlist(s.db)
	if err := repo.Remove(ctx, watchlistID, userID); err != nil {
		return fmt.Errorf("error removing from watchlist: %w", err)
	}
	return nil
}

// ListByUser returns the user's watchlist joined with IPO details,
// ordered by ascending IPO date.
func (s *WatchlistService) ListByUser(ctx context.Context, userID int64) ([]*models.WatchlistItem, error) {
	repo := s.rm.Watchlist(s.db)
	items, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing watchlist: %w", err)
	}
	return items, nil
}
