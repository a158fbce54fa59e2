// AngelaMos | 2026
// service.go

package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/carterperez-dev/trackflow/internal/core"
)

type Service struct {
	repo Repository
	ttl  time.Duration
	now  func() time.Time
}

func NewService(repo Repository, ttl time.Duration) *Service {
	return &Service{
		repo: repo,
		ttl:  ttl,
		now:  time.Now,
	}
}

// Resolve maps an opaque cookie token to its user. Expired sessions are
// deleted on first access; the delete is best-effort and the caller sees
// ErrNotFound either way. Every call round-trips to the store: the
// sessions table is the single source of truth, so there is no cache.
func (s *Service) Resolve(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, fmt.Errorf("resolve session: %w", core.ErrNotFound)
	}

	tokenHash := core.HashToken(token)

	sess, user, err := s.repo.FindWithUser(ctx, tokenHash)
	if err != nil {
		return nil, err
	}

	if s.now().After(sess.ExpiresAt) {
		if delErr := s.repo.Delete(ctx, tokenHash); delErr != nil {
			slog.Warn("failed to delete expired session", "error", delErr)
		}
		return nil, fmt.Errorf("resolve session: %w", core.ErrNotFound)
	}

	return user, nil
}

// Issue creates a session for the user and returns the raw token for the
// cookie. Existing sessions are untouched; a user may hold several at
// once.
func (s *Service) Issue(
	ctx context.Context,
	userID, userAgent, ipAddress string,
) (string, time.Time, error) {
	token, err := core.GenerateSessionToken()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("issue session: %w", err)
	}

	expiresAt := s.now().Add(s.ttl)

	sess := &Session{
		TokenHash: core.HashToken(token),
		UserID:    userID,
		ExpiresAt: expiresAt,
		UserAgent: userAgent,
		IPAddress: ipAddress,
	}

	if err := s.repo.Create(ctx, sess); err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// Revoke removes the session behind the presented token only; the user's
// other sessions stay valid.
func (s *Service) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	return s.repo.Delete(ctx, core.HashToken(token))
}

// PurgeExpired is housekeeping for sessions no request ever touched
// again after expiry.
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx)
}
