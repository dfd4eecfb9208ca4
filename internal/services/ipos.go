package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dkhamitov/ipotracker/internal/models"
	"github.com/dkhamitov/ipotracker/internal/repositories/repomanager"
)

// IPOService stores and retrieves IPO listing records.
type IPOService struct {
	db *sql.DB
	rm repomanager.RepositoryManager
}

// NewIPOService constructs an IPOService over the shared pool and
// repository manager.
func NewIPOService(db *sql.DB, rm repomanager.RepositoryManager) *IPOService {
	return &IPOService{db: db, rm: rm}
}

// Store inserts an IPO record unconditionally and returns the generated
// ipo id. An empty status defaults to "upcoming". There is no upsert:
// storing the same symbol twice produces two rows.
func (s *IPOService) Store(ctx context.Context, ipo *models.IPO) (int64, error) {
	if ipo.Status == "" {
		ipo.Status = models.IPOStatusUpcoming
	}

	repo := s.rm.IPOs(s.db)
	id, err := repo.Create(ctx, ipo)
	if err != nil {
		return 0, fmt.Errorf("error storing ipo: %w", err)
	}
	return id, nil
}

// Get returns the IPO record by id, or common.ErrNotFound when no row
// matches.
func (s *IPOService) Get(ctx context.Context, ipoID int64) (*models.IPO, error) {
	repo := s.rm.IPOs(s.db)
	return repo.Get(ctx, ipoID)
}
