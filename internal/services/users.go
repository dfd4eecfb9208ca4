// Package services contains the operation surface of the data-access
// layer: account management, IPO storage, watchlists, and the
// investment ledger. Each service holds the shared connection pool and
// the repository manager; individual calls borrow a pooled connection
// and never share transaction state with other calls.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dkhamitov/ipotracker/internal/common"
	"github.com/dkhamitov/ipotracker/internal/models"
	"github.com/dkhamitov/ipotracker/internal/repositories/repomanager"
)

// UserService handles account creation and password authentication.
// Passwords are hashed with bcrypt; the plaintext is never persisted.
type UserService struct {
	db *sql.DB
	rm repomanager.RepositoryManager
}

// NewUserService constructs a UserService over the shared pool and
// repository manager.
func NewUserService(db *sql.DB, rm repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, rm: rm}
}

// Register creates a new user and returns the generated user id.
// The password is bcrypt-hashed with a per-password random salt before
// the insert. When the username or email is already taken, Register
// returns common.ErrAlreadyExists and no driver error leaks to the
// caller; all other failures propagate wrapped.
func (s *UserService) Register(ctx context.Context, username, email, password string, firstName, lastName *string) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
	}

	repo := s.rm.Users(s.db)
	id, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return 0, common.ErrAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}
	return id, nil
}

// Authenticate verifies the username/password pair and returns the full
// user record on success, including the stored hash; callers must not
// expose the hash further. A missing user and a wrong password both
// yield common.ErrInvalidCredentials. The bcrypt comparison is
// constant-time on a match attempt; a lookup that finds no row exits
// early.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	repo := s.rm.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	return user, nil
}
