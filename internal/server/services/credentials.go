// Package services contains server-side business logic: the credential
// store, recipe search, the favourites and sharing ledgers, and login
// sessions.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/recipesearch/recipesearch/internal/common"
	"github.com/recipesearch/recipesearch/internal/cryptox"
	"github.com/recipesearch/recipesearch/internal/logging"
	"github.com/recipesearch/recipesearch/internal/server/models"
	"github.com/recipesearch/recipesearch/internal/server/repositories/repomanager"
)

// CredentialService registers users and checks their passwords.
type CredentialService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	params      cryptox.Argon2Params
	log         logging.Logger

	dummyOnce sync.Once
	dummyHash string
}

// NewCredentialService constructs a CredentialService hashing new passwords
// with params.
func NewCredentialService(db *sql.DB, m repomanager.RepositoryManager, params cryptox.Argon2Params, log logging.Logger) *CredentialService {
	return &CredentialService{
		db:          db,
		repomanager: m,
		params:      params,
		log:         log.With("module", "credentials"),
	}
}

// Register stores a new user. A taken username yields common.ErrUsernameTaken.
func (s *CredentialService) Register(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := cryptox.HashPassword(password, s.params)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, &models.User{UserName: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrUsernameTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Verify reports whether password is correct for username. Unknown users are
// (false, nil); only store failures are returned as errors.
func (s *CredentialService) Verify(ctx context.Context, username, password string) (bool, error) {
	_, err := s.Authenticate(ctx, username, password)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, common.ErrorUnauthorized):
		return false, nil
	default:
		return false, err
	}
}

// Authenticate returns the user when the password matches, or
// common.ErrorUnauthorized otherwise.
func (s *CredentialService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Spend the same hashing work as for a real user.
			_, _ = cryptox.VerifyPassword(password, s.getDummyHash())
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	ok, err := cryptox.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		s.log.Warn(ctx, "stored password hash is unusable", "username", username, "error", err)
		return nil, common.ErrorUnauthorized
	}
	if !ok {
		return nil, common.ErrorUnauthorized
	}
	return user, nil
}

func (s *CredentialService) getDummyHash() string {
	s.dummyOnce.Do(func() {
		h, err := cryptox.HashPassword(string(common.GenerateRandByteArray(16)), s.params)
		if err == nil {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}
