package users

import (
	"context"

	"github.com/dkhamitov/ipotracker/internal/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
