// AngelaMos | 2026
// entity.go

package submission

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type Submission struct {
	ID            string     `db:"id"`
	UserID        string     `db:"user_id"`
	Title         string     `db:"title"`
	Artist        string     `db:"artist"`
	Genre         string     `db:"genre"`
	MoodTags      StringList `db:"mood_tags"`
	Description   string     `db:"description"`
	FileURL       string     `db:"file_url"`
	DurationSecs  int        `db:"duration_secs"`
	FileSizeBytes int64      `db:"file_size_bytes"`
	Status        string     `db:"status"`
	SubmittedAt   time.Time  `db:"submitted_at"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// Review is an append-only audit record of an admin decision; a
// submission may accumulate several.
type Review struct {
	ID           string     `db:"id"`
	SubmissionID string     `db:"submission_id"`
	ReviewerID   string     `db:"reviewer_id"`
	Feedback     string     `db:"feedback"`
	Rating       *int       `db:"rating"`
	Tags         StringList `db:"tags"`
	CreatedAt    time.Time  `db:"created_at"`
}

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

func ValidStatus(status string) bool {
	return status == StatusPending ||
		status == StatusApproved ||
		status == StatusRejected
}

// StringList maps a Go string slice onto a jsonb column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scan StringList: unsupported type %T", src)
	}

	return json.Unmarshal(data, l)
}
