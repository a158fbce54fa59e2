// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/carterperez-dev/trackflow/internal/auth"
	"github.com/carterperez-dev/trackflow/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetByID(
	ctx context.Context,
	id string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) Create(
	ctx context.Context,
	email, passwordHash, name string,
) (*auth.UserInfo, error) {
	user := &User{
		ID:                uuid.New().String(),
		Email:             strings.ToLower(email),
		PasswordHash:      passwordHash,
		Name:              name,
		Role:              RoleUser,
		Tier:              TierCreator,
		SubmissionCredits: DefaultSubmissionCredits,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	userID, passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}

func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateUser applies the typed partial update: only fields present in the
// request change; each is validated independently.
func (s *Service) UpdateUser(
	ctx context.Context,
	id string,
	req UpdateUserRequest,
) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	if req.Role != nil {
		if !ValidRole(*req.Role) {
			return nil, fmt.Errorf(
				"update user: invalid role %q: %w",
				*req.Role,
				core.ErrInvalidInput,
			)
		}
		user.Role = *req.Role
	}

	if req.Tier != nil {
		if !ValidTier(*req.Tier) {
			return nil, fmt.Errorf(
				"update user: invalid tier %q: %w",
				*req.Tier,
				core.ErrInvalidInput,
			)
		}
		user.Tier = *req.Tier
	}

	if req.SubmissionCredits != nil {
		if *req.SubmissionCredits < 0 {
			return nil, fmt.Errorf(
				"update user: credits must not be negative: %w",
				core.ErrInvalidInput,
			)
		}
		user.SubmissionCredits = *req.SubmissionCredits
	}

	if req.IsVerified != nil {
		user.IsVerified = *req.IsVerified
	}

	if req.LegalWaiverAccepted != nil {
		user.LegalWaiverAccepted = req.LegalWaiverAccepted
	}

	if req.CompensationType != nil {
		user.CompensationType = req.CompensationType
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	return s.repo.HardDelete(ctx, id)
}

func (s *Service) ListUsers(
	ctx context.Context,
	params ListUsersParams,
) ([]User, int, error) {
	return s.repo.List(ctx, params)
}

func (s *Service) ListAll(ctx context.Context) ([]User, error) {
	return s.repo.ListAll(ctx)
}

// BootstrapMasterDev creates or promotes the master_dev account from the
// environment-supplied credentials. Called once at startup.
func (s *Service) BootstrapMasterDev(
	ctx context.Context,
	email, key string,
) error {
	if email == "" || key == "" {
		return nil
	}

	passwordHash, err := core.HashPassword(key)
	if err != nil {
		return fmt.Errorf("hash master dev key: %w", err)
	}

	return s.repo.UpsertMasterDev(ctx, strings.ToLower(email), passwordHash)
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		Tier:         u.Tier,
	}
}

var _ auth.UserProvider = (*Service)(nil)
