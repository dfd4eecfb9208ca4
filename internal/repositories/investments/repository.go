package investments

import (
	"context"
	"time"

	"github.com/dkhamitov/ipotracker/internal/models"
)

type Repository interface {
	Add(ctx context.Context, inv *models.Investment, soldDate *time.Time) (int64, error)
	UpdateStatus(ctx context.Context, investmentID, userID int64, status string, soldDate *time.Time) error
	ListByUser(ctx context.Context, userID int64) ([]*models.InvestmentRecord, error)
}
