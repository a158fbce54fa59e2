// AngelaMos | 2026
// entity.go

package session

import (
	"time"
)

// Session binds a hashed opaque token to a user for a bounded lifetime.
// The raw token lives only in the client cookie.
type Session struct {
	TokenHash string    `db:"token_hash"`
	UserID    string    `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	UserAgent string    `db:"user_agent"`
	IPAddress string    `db:"ip_address"`
	CreatedAt time.Time `db:"created_at"`
}

// User is the sanitized projection handed to request handlers. It is an
// explicit allowlist; the password hash never crosses this boundary.
type User struct {
	ID                  string    `db:"id"                    json:"id"`
	Email               string    `db:"email"                 json:"email"`
	Name                string    `db:"name"                  json:"name"`
	Role                string    `db:"role"                  json:"role"`
	Tier                string    `db:"tier"                  json:"tier"`
	SubmissionCredits   int       `db:"submission_credits"    json:"submission_credits"`
	IsVerified          bool      `db:"is_verified"           json:"is_verified"`
	LegalWaiverAccepted *bool     `db:"legal_waiver_accepted" json:"legal_waiver_accepted,omitempty"`
	CompensationType    *string   `db:"compensation_type"     json:"compensation_type,omitempty"`
	CreatedAt           time.Time `db:"created_at"            json:"created_at"`
}

const (
	RoleAdmin     = "admin"
	RoleMasterDev = "master_dev"
)

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleMasterDev
}

func (u *User) IsMasterDev() bool {
	return u.Role == RoleMasterDev
}
