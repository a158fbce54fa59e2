// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

type User struct {
	ID                  string    `db:"id"`
	Email               string    `db:"email"`
	PasswordHash        string    `db:"password_hash"`
	Name                string    `db:"name"`
	Role                string    `db:"role"`
	Tier                string    `db:"tier"`
	SubmissionCredits   int       `db:"submission_credits"`
	IsVerified          bool      `db:"is_verified"`
	LegalWaiverAccepted *bool     `db:"legal_waiver_accepted"`
	CompensationType    *string   `db:"compensation_type"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleMasterDev
}

func (u *User) IsMasterDev() bool {
	return u.Role == RoleMasterDev
}

const (
	RoleUser      = "user"
	RoleAdmin     = "admin"
	RoleMasterDev = "master_dev"
)

const (
	TierCreator = "creator"
	TierIndie   = "indie"
	TierPro     = "pro"
)

const DefaultSubmissionCredits = 3

func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin || role == RoleMasterDev
}

func ValidTier(tier string) bool {
	return tier == TierCreator || tier == TierIndie || tier == TierPro
}
