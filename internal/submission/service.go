// AngelaMos | 2026
// service.go

package submission

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/carterperez-dev/trackflow/internal/core"
	"github.com/carterperez-dev/trackflow/internal/session"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Create inserts a submission for the caller. Regular users spend one
// submission credit atomically with the insert; master_dev submits
// without limit.
func (s *Service) Create(
	ctx context.Context,
	caller *session.User,
	req CreateSubmissionRequest,
) (*Submission, error) {
	moodTags := req.MoodTags
	if moodTags == nil {
		moodTags = []string{}
	}

	sub := &Submission{
		ID:            uuid.New().String(),
		UserID:        caller.ID,
		Title:         strings.TrimSpace(req.Title),
		Artist:        strings.TrimSpace(req.Artist),
		Genre:         req.Genre,
		MoodTags:      moodTags,
		Description:   req.Description,
		FileURL:       req.FileURL,
		DurationSecs:  req.DurationSecs,
		FileSizeBytes: req.FileSizeBytes,
		Status:        StatusPending,
		SubmittedAt:   s.now(),
	}

	debitUserID := caller.ID
	if caller.IsMasterDev() {
		debitUserID = ""
	}

	if err := s.repo.CreateWithDebit(ctx, sub, debitUserID); err != nil {
		return nil, err
	}

	return sub, nil
}

func (s *Service) ListByUser(
	ctx context.Context,
	userID string,
) ([]Submission, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) ListAll(ctx context.Context) ([]Submission, error) {
	return s.repo.ListAll(ctx)
}

// Review sets the submission status and records the admin decision.
func (s *Service) Review(
	ctx context.Context,
	reviewerID, submissionID string,
	req ReviewRequest,
) (*Review, error) {
	if !ValidStatus(req.Status) {
		return nil, fmt.Errorf(
			"review: invalid status %q: %w",
			req.Status,
			core.ErrInvalidInput,
		)
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	rev := &Review{
		ID:           uuid.New().String(),
		SubmissionID: submissionID,
		ReviewerID:   reviewerID,
		Feedback:     req.Feedback,
		Rating:       req.Rating,
		Tags:         tags,
	}

	if err := s.repo.Review(ctx, submissionID, req.Status, rev); err != nil {
		return nil, err
	}

	return rev, nil
}

func (s *Service) ReviewsOnUserSubmissions(
	ctx context.Context,
	userID string,
	limit int,
) ([]Review, error) {
	return s.repo.ReviewsOnUserSubmissions(ctx, userID, limit)
}

// ExportCSV renders all submissions joined with their submitters.
// Title, artist, and submitter name are quoted (embedded quotes
// doubled); the remaining fields are joined bare.
func (s *Service) ExportCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.repo.ExportRows(ctx)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(
		"id,title,artist,genre,status,submitter_name,submitter_email,submitted_at\n",
	)

	for _, row := range rows {
		fields := []string{
			row.ID,
			quoteCSV(row.Title),
			quoteCSV(row.Artist),
			row.Genre,
			row.Status,
			quoteCSV(row.SubmitterName),
			row.SubmitterEmail,
			row.SubmittedAt.UTC().Format(time.RFC3339),
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteByte('\n')
	}

	return []byte(b.String()), nil
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
