package ipos

import (
	"context"

	"github.com/dkhamitov/ipotracker/internal/models"
)

type Repository interface {
	Create(ctx context.Context, ipo *models.IPO) (int64, error)
	Get(ctx context.Context, ipoID int64) (*models.IPO, error)
}
