// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carterperez-dev/trackflow/internal/core"
	"github.com/carterperez-dev/trackflow/internal/session"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
)

// UserInfo is the credential-bearing projection auth needs from the user
// module; it never leaves this package.
type UserInfo struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         string
	Tier         string
}

type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	Create(
		ctx context.Context,
		email, passwordHash, name string,
	) (*UserInfo, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

type SessionIssuer interface {
	Issue(
		ctx context.Context,
		userID, userAgent, ipAddress string,
	) (string, time.Time, error)
	Revoke(ctx context.Context, token string) error
}

type Service struct {
	users    UserProvider
	sessions SessionIssuer
}

func NewService(users UserProvider, sessions SessionIssuer) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
	}
}

type LoginResult struct {
	User      UserResponse
	Token     string
	ExpiresAt time.Time
}

func (s *Service) Signup(
	ctx context.Context,
	req SignupRequest,
	userAgent, ipAddress string,
) (*LoginResult, error) {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, req.Email, passwordHash, req.Name)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.startSession(ctx, user, userAgent, ipAddress)
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
	userAgent, ipAddress string,
) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&user.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	if newHash != "" {
		//nolint:errcheck // best-effort rehash upgrade
		_ = s.users.UpdatePassword(ctx, user.ID, newHash)
	}

	return s.startSession(ctx, user, userAgent, ipAddress)
}

func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Revoke(ctx, token); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *Service) startSession(
	ctx context.Context,
	user *UserInfo,
	userAgent, ipAddress string,
) (*LoginResult, error) {
	token, expiresAt, err := s.sessions.Issue(
		ctx,
		user.ID,
		userAgent,
		ipAddress,
	)
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}

	return &LoginResult{
		User: UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
			Tier:  user.Tier,
		},
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

var _ SessionIssuer = (*session.Service)(nil)
