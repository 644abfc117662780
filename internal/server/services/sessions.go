package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/recipesearch/recipesearch/internal/common"
	"github.com/recipesearch/recipesearch/internal/logging"
	"github.com/recipesearch/recipesearch/internal/server/auth"
	"github.com/recipesearch/recipesearch/internal/server/models"
	"github.com/recipesearch/recipesearch/internal/server/repositories/sessions"
)

// SessionService opens and resolves login sessions.
//
// A session lives in the session store under a random id. The client holds an
// HS256 token carrying that id and the username, so a cookie is only honoured
// if it was signed by us and its session was not revoked.
type SessionService struct {
	repo      sessions.Repository
	jwtSecret []byte
	validity  time.Duration
	log       logging.Logger
	now       func() time.Time
}

func NewSessionService(repo sessions.Repository, jwtSecret []byte, validity time.Duration, log logging.Logger) *SessionService {
	return &SessionService{
		repo:      repo,
		jwtSecret: jwtSecret,
		validity:  validity,
		log:       log.With("module", "sessions"),
		now:       time.Now,
	}
}

// Open starts a session for user and returns the signed cookie value and
// its expiry.
func (s *SessionService) Open(ctx context.Context, user *models.User) (string, time.Time, error) {
	id, err := common.MakeRandHexString(common.SessionIDSize)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("error generating session id: %w", err)
	}

	expiresAt := s.now().Add(s.validity).Truncate(time.Second)
	sess := &models.Session{ID: id, UserID: user.ID, UserName: user.UserName, ExpiresAt: expiresAt}
	if err := s.repo.Create(ctx, sess); err != nil {
		return "", time.Time{}, fmt.Errorf("error storing session: %w", err)
	}

	token, err := auth.GenerateToken(id, user.UserName, s.jwtSecret, expiresAt)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("error signing session: %w", err)
	}
	return token, expiresAt, nil
}

// Resolve maps a cookie value to its live session. Anything that does not
// resolve yields common.ErrorUnauthorized; store failures are returned as is.
func (s *SessionService) Resolve(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, common.ErrorUnauthorized
	}

	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		s.log.Debug(ctx, "rejected session token", "error", err)
		return nil, common.ErrorUnauthorized
	}

	sess, err := s.repo.Find(ctx, claims.SessionID())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error loading session: %w", err)
	}

	if sess.UserName != claims.Username() || sess.Expired(s.now()) {
		return nil, common.ErrorUnauthorized
	}
	return sess, nil
}

// Close revokes the session behind token. Tokens that do not parse are
// ignored.
func (s *SessionService) Close(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil
	}
	if err := s.repo.Delete(ctx, claims.SessionID()); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

// PurgeExpired deletes expired sessions from the store.
func (s *SessionService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("error purging sessions: %w", err)
	}
	return n, nil
}

// RunPurger calls PurgeExpired every interval until ctx is done.
func (s *SessionService) RunPurger(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.PurgeExpired(ctx)
			if err != nil {
				s.log.Error(ctx, "session purge failed", "error", err)
				continue
			}
			if n > 0 {
				s.log.Info(ctx, "purged expired sessions", "count", n)
			}
		}
	}
}
