// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/trackflow/internal/core"
)

type mockUserProvider struct {
	users           map[string]*UserInfo
	passwordUpdates map[string]string
}

func newMockUserProvider() *mockUserProvider {
	return &mockUserProvider{
		users:           make(map[string]*UserInfo),
		passwordUpdates: make(map[string]string),
	}
}

func (m *mockUserProvider) GetByEmail(
	_ context.Context,
	email string,
) (*UserInfo, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, core.ErrNotFound
	}
	return user, nil
}

func (m *mockUserProvider) Create(
	_ context.Context,
	email, passwordHash, name string,
) (*UserInfo, error) {
	if _, exists := m.users[email]; exists {
		return nil, core.ErrDuplicateKey
	}
	user := &UserInfo{
		ID:           "user-" + email,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         "user",
		Tier:         "creator",
	}
	m.users[email] = user
	return user, nil
}

func (m *mockUserProvider) UpdatePassword(
	_ context.Context,
	userID, passwordHash string,
) error {
	m.passwordUpdates[userID] = passwordHash
	return nil
}

type mockSessionIssuer struct {
	issued  int
	revoked []string
}

func (m *mockSessionIssuer) Issue(
	_ context.Context,
	userID, userAgent, ipAddress string,
) (string, time.Time, error) {
	m.issued++
	return "token-" + userID, time.Now().Add(time.Hour), nil
}

func (m *mockSessionIssuer) Revoke(_ context.Context, token string) error {
	m.revoked = append(m.revoked, token)
	return nil
}

func TestSignupIssuesSession(t *testing.T) {
	users := newMockUserProvider()
	sessions := &mockSessionIssuer{}
	svc := NewService(users, sessions)

	result, err := svc.Signup(context.Background(),
		SignupRequest{
			Email:    "ada@example.com",
			Password: "correct horse battery",
			Name:     "Ada",
		}, "test-agent", "203.0.113.9")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.Equal(t, "ada@example.com", result.User.Email)
	require.Equal(t, 1, sessions.issued)

	// The stored hash must be argon2id, never the raw password.
	stored := users.users["ada@example.com"]
	require.NotEqual(t, "correct horse battery", stored.PasswordHash)
	match, err := core.VerifyPassword(
		"correct horse battery",
		stored.PasswordHash,
	)
	require.NoError(t, err)
	require.True(t, match)
}

func TestSignupDuplicateEmail(t *testing.T) {
	users := newMockUserProvider()
	sessions := &mockSessionIssuer{}
	svc := NewService(users, sessions)

	req := SignupRequest{
		Email:    "ada@example.com",
		Password: "correct horse battery",
		Name:     "Ada",
	}

	_, err := svc.Signup(context.Background(), req, "", "")
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), req, "", "")
	require.ErrorIs(t, err, ErrEmailExists)
	require.Equal(t, 1, sessions.issued)
}

func TestLogin(t *testing.T) {
	users := newMockUserProvider()
	sessions := &mockSessionIssuer{}
	svc := NewService(users, sessions)

	_, err := svc.Signup(context.Background(),
		SignupRequest{
			Email:    "ada@example.com",
			Password: "correct horse battery",
			Name:     "Ada",
		}, "", "")
	require.NoError(t, err)

	result, err := svc.Login(context.Background(),
		LoginRequest{
			Email:    "ada@example.com",
			Password: "correct horse battery",
		}, "", "")
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", result.User.Email)
	require.Equal(t, 2, sessions.issued)
}

func TestLoginWrongPassword(t *testing.T) {
	users := newMockUserProvider()
	sessions := &mockSessionIssuer{}
	svc := NewService(users, sessions)

	_, err := svc.Signup(context.Background(),
		SignupRequest{
			Email:    "ada@example.com",
			Password: "correct horse battery",
			Name:     "Ada",
		}, "", "")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(),
		LoginRequest{
			Email:    "ada@example.com",
			Password: "wrong",
		}, "", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Equal(t, 1, sessions.issued)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewService(newMockUserProvider(), &mockSessionIssuer{})

	_, err := svc.Login(context.Background(),
		LoginRequest{
			Email:    "ghost@example.com",
			Password: "anything",
		}, "", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutRevokesPresentedToken(t *testing.T) {
	sessions := &mockSessionIssuer{}
	svc := NewService(newMockUserProvider(), sessions)

	require.NoError(t, svc.Logout(context.Background(), "token-user-1"))
	require.Equal(t, []string{"token-user-1"}, sessions.revoked)
}
