// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

// UpdateUserRequest is the admin PATCH body. Every field is optional;
// absent fields leave the stored value untouched.
type UpdateUserRequest struct {
	Name                *string `json:"name,omitempty"                  validate:"omitempty,min=1,max=100"`
	Role                *string `json:"role,omitempty"                  validate:"omitempty,oneof=user admin master_dev"`
	Tier                *string `json:"tier,omitempty"                  validate:"omitempty,oneof=creator indie pro"`
	SubmissionCredits   *int    `json:"submission_credits,omitempty"    validate:"omitempty,gte=0"`
	IsVerified          *bool   `json:"is_verified,omitempty"`
	LegalWaiverAccepted *bool   `json:"legal_waiver_accepted,omitempty"`
	CompensationType    *string `json:"compensation_type,omitempty"     validate:"omitempty,max=100"`
}

type UserResponse struct {
	ID                  string    `json:"id"`
	Email               string    `json:"email"`
	Name                string    `json:"name"`
	Role                string    `json:"role"`
	Tier                string    `json:"tier"`
	SubmissionCredits   int       `json:"submission_credits"`
	IsVerified          bool      `json:"is_verified"`
	LegalWaiverAccepted *bool     `json:"legal_waiver_accepted,omitempty"`
	CompensationType    *string   `json:"compensation_type,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type ListUsersParams struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Search   string `json:"search"`
	Role     string `json:"role"`
	Tier     string `json:"tier"`
}

func (p *ListUsersParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p *ListUsersParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:                  u.ID,
		Email:               u.Email,
		Name:                u.Name,
		Role:                u.Role,
		Tier:                u.Tier,
		SubmissionCredits:   u.SubmissionCredits,
		IsVerified:          u.IsVerified,
		LegalWaiverAccepted: u.LegalWaiverAccepted,
		CompensationType:    u.CompensationType,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(&u))
	}
	return responses
}
