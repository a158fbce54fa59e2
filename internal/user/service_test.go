// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/trackflow/internal/core"
)

type mockRepository struct {
	users   map[string]*User
	deleted []string
}

func newMockRepository() *mockRepository {
	return &mockRepository{users: make(map[string]*User)}
}

func (m *mockRepository) Create(_ context.Context, user *User) error {
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return core.ErrDuplicateKey
		}
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	m.users[user.ID] = user
	return nil
}

func (m *mockRepository) GetByID(_ context.Context, id string) (*User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (m *mockRepository) GetByEmail(
	_ context.Context,
	email string,
) (*User, error) {
	for _, user := range m.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, core.ErrNotFound
}

func (m *mockRepository) Update(_ context.Context, user *User) error {
	if _, ok := m.users[user.ID]; !ok {
		return core.ErrNotFound
	}
	user.UpdatedAt = time.Now()
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *mockRepository) UpdatePassword(
	_ context.Context,
	id, passwordHash string,
) error {
	user, ok := m.users[id]
	if !ok {
		return core.ErrNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

func (m *mockRepository) HardDelete(_ context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return core.ErrNotFound
	}
	delete(m.users, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockRepository) List(
	_ context.Context,
	params ListUsersParams,
) ([]User, int, error) {
	params.Normalize()
	var matched []User
	for _, user := range m.users {
		if params.Role != "" && user.Role != params.Role {
			continue
		}
		if params.Tier != "" && user.Tier != params.Tier {
			continue
		}
		matched = append(matched, *user)
	}
	total := len(matched)
	if params.Offset() >= total {
		return nil, total, nil
	}
	end := params.Offset() + params.PageSize
	if end > total {
		end = total
	}
	return matched[params.Offset():end], total, nil
}

func (m *mockRepository) ListAll(_ context.Context) ([]User, error) {
	out := make([]User, 0, len(m.users))
	for _, user := range m.users {
		out = append(out, *user)
	}
	return out, nil
}

func (m *mockRepository) UpsertMasterDev(
	_ context.Context,
	email, passwordHash string,
) error {
	for _, user := range m.users {
		if user.Email == email {
			user.Role = RoleMasterDev
			user.PasswordHash = passwordHash
			return nil
		}
	}
	m.users[email] = &User{
		ID:           email,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleMasterDev,
		Tier:         TierCreator,
	}
	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

func seedUser(repo *mockRepository) *User {
	user := &User{
		ID:                "user-1",
		Email:             "ada@example.com",
		PasswordHash:      "hash",
		Name:              "Ada",
		Role:              RoleUser,
		Tier:              TierCreator,
		SubmissionCredits: 3,
	}
	repo.users[user.ID] = user
	return user
}

func TestCreateAppliesDefaults(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	info, err := svc.Create(
		context.Background(),
		"Ada@Example.COM",
		"hash",
		"Ada",
	)
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", info.Email)

	stored := repo.users[info.ID]
	require.Equal(t, RoleUser, stored.Role)
	require.Equal(t, TierCreator, stored.Tier)
	require.Equal(t, DefaultSubmissionCredits, stored.SubmissionCredits)
}

func TestUpdateUserPartial(t *testing.T) {
	repo := newMockRepository()
	seedUser(repo)
	svc := NewService(repo)

	updated, err := svc.UpdateUser(context.Background(), "user-1",
		UpdateUserRequest{
			Tier:              strPtr(TierPro),
			SubmissionCredits: intPtr(10),
		})
	require.NoError(t, err)

	// Only the provided fields change.
	require.Equal(t, TierPro, updated.Tier)
	require.Equal(t, 10, updated.SubmissionCredits)
	require.Equal(t, "Ada", updated.Name)
	require.Equal(t, RoleUser, updated.Role)
	require.False(t, updated.IsVerified)
}

func TestUpdateUserVerification(t *testing.T) {
	repo := newMockRepository()
	seedUser(repo)
	svc := NewService(repo)

	updated, err := svc.UpdateUser(context.Background(), "user-1",
		UpdateUserRequest{
			IsVerified:          boolPtr(true),
			LegalWaiverAccepted: boolPtr(true),
			CompensationType:    strPtr("royalty"),
		})
	require.NoError(t, err)
	require.True(t, updated.IsVerified)
	require.NotNil(t, updated.LegalWaiverAccepted)
	require.True(t, *updated.LegalWaiverAccepted)
	require.Equal(t, "royalty", *updated.CompensationType)
}

func TestUpdateUserInvalidRole(t *testing.T) {
	repo := newMockRepository()
	seedUser(repo)
	svc := NewService(repo)

	_, err := svc.UpdateUser(context.Background(), "user-1",
		UpdateUserRequest{Role: strPtr("superuser")})
	require.ErrorIs(t, err, core.ErrInvalidInput)
	require.Equal(t, RoleUser, repo.users["user-1"].Role)
}

func TestUpdateUserInvalidTier(t *testing.T) {
	repo := newMockRepository()
	seedUser(repo)
	svc := NewService(repo)

	_, err := svc.UpdateUser(context.Background(), "user-1",
		UpdateUserRequest{Tier: strPtr("platinum")})
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestUpdateUserNegativeCredits(t *testing.T) {
	repo := newMockRepository()
	seedUser(repo)
	svc := NewService(repo)

	_, err := svc.UpdateUser(context.Background(), "user-1",
		UpdateUserRequest{SubmissionCredits: intPtr(-1)})
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestUpdateUserNotFound(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.UpdateUser(context.Background(), "ghost",
		UpdateUserRequest{Name: strPtr("Ghost")})
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	repo := newMockRepository()
	seedUser(repo)
	svc := NewService(repo)

	require.NoError(t, svc.DeleteUser(context.Background(), "user-1"))
	require.ErrorIs(
		t,
		svc.DeleteUser(context.Background(), "user-1"),
		core.ErrNotFound,
	)
}

func TestBootstrapMasterDev(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	require.NoError(t, svc.BootstrapMasterDev(
		context.Background(),
		"Dev@Example.com",
		"super-secret-key",
	))

	stored, err := repo.GetByEmail(context.Background(), "dev@example.com")
	require.NoError(t, err)
	require.Equal(t, RoleMasterDev, stored.Role)

	match, err := core.VerifyPassword("super-secret-key", stored.PasswordHash)
	require.NoError(t, err)
	require.True(t, match)
}

func TestBootstrapMasterDevSkippedWithoutCredentials(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	require.NoError(t, svc.BootstrapMasterDev(context.Background(), "", ""))
	require.Empty(t, repo.users)
}
