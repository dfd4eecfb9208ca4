package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dkhamitov/ipotracker/internal/models"
	"github.com/dkhamitov/ipotracker/internal/repositories/repomanager"
)

// InvestmentService records and updates entries in the per-user
// investment ledger.
type InvestmentService struct {
	db *sql.DB
	rm repomanager.RepositoryManager
}

// NewInvestmentService constructs an InvestmentService over the shared
// pool and repository manager.
func NewInvestmentService(db *sql.DB, rm repomanager.RepositoryManager) *InvestmentService {
	return &InvestmentService{db: db, rm: rm}
}

// Add records an investment and returns the generated investment id.
// An empty status defaults to "pending"; a nil soldDate defaults to the
// server clock at insert time.
func (s *InvestmentService) Add(ctx context.Context, userID, ipoID, sharesPurchased int64, purchasePrice decimal.Decimal, soldDate *time.Time, status string) (int64, error) {
	if status == "" {
		status = models.InvestmentStatusPending
	}

	inv := &models.Investment{
		UserID:          userID,
		IPOID:           ipoID,
		SharesPurchased: sharesPurchased,
		PurchasePrice:   purchasePrice,
		Status:          status,
	}

	repo := s.rm.Investments(s.db)
	id, err := repo.Add(ctx, inv, soldDate)
	if err != nil {
		return 0, fmt.Errorf("error adding investment: %w", err)
	}
	return id, nil
}

// UpdateStatus changes the status of the investment matching both ids,
// and the sold date when soldDate is non-nil. As with watchlist removal,
// the owning user id scopes the update, and matching zero rows is still
// reported as success.
func (s *InvestmentService) UpdateStatus(ctx context.Context, investmentID, userID int64, status string, soldDate *time.Time) error {
	repo := s.rm.Investments(s.db)
	if err := repo.UpdateStatus(ctx, investmentID, userID, status, soldDate); err != nil {
		return fmt.Errorf("error updating investment: %w", err)
	}
	return nil
}

// ListByUser returns the user's investments joined with IPO name, symbol
// and date, ordered by descending sold date.
func (s *InvestmentService) ListByUser(ctx context.Context, userID int64) ([]*models.InvestmentRecord, error) {
	repo := s.rm.Investments(s.db)
	recs, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing investments: %w", err)
	}
	return recs, nil
}
