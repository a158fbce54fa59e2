// AngelaMos | 2026
// service_test.go

package submission

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/trackflow/internal/core"
	"github.com/carterperez-dev/trackflow/internal/session"
)

type mockRepository struct {
	credits     map[string]int
	submissions map[string]*Submission
	reviews     []*Review
	exportRows  []ExportRow
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		credits:     make(map[string]int),
		submissions: make(map[string]*Submission),
	}
}

func (m *mockRepository) CreateWithDebit(
	_ context.Context,
	sub *Submission,
	debitUserID string,
) error {
	if debitUserID != "" {
		if m.credits[debitUserID] <= 0 {
			return core.ErrNoCredits
		}
		m.credits[debitUserID]--
	}
	now := time.Now()
	sub.CreatedAt = now
	sub.UpdatedAt = now
	m.submissions[sub.ID] = sub
	return nil
}

func (m *mockRepository) GetByID(
	_ context.Context,
	id string,
) (*Submission, error) {
	sub, ok := m.submissions[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return sub, nil
}

func (m *mockRepository) ListByUser(
	_ context.Context,
	userID string,
) ([]Submission, error) {
	var out []Submission
	for _, sub := range m.submissions {
		if sub.UserID == userID {
			out = append(out, *sub)
		}
	}
	return out, nil
}

func (m *mockRepository) ListAll(_ context.Context) ([]Submission, error) {
	out := make([]Submission, 0, len(m.submissions))
	for _, sub := range m.submissions {
		out = append(out, *sub)
	}
	return out, nil
}

func (m *mockRepository) Review(
	_ context.Context,
	submissionID, status string,
	rev *Review,
) error {
	sub, ok := m.submissions[submissionID]
	if !ok {
		return core.ErrNotFound
	}
	sub.Status = status
	rev.CreatedAt = time.Now()
	m.reviews = append(m.reviews, rev)
	return nil
}

func (m *mockRepository) ReviewsOnUserSubmissions(
	_ context.Context,
	userID string,
	limit int,
) ([]Review, error) {
	var out []Review
	for _, rev := range m.reviews {
		sub, ok := m.submissions[rev.SubmissionID]
		if ok && sub.UserID == userID {
			out = append(out, *rev)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *mockRepository) ExportRows(_ context.Context) ([]ExportRow, error) {
	return m.exportRows, nil
}

func caller(id, role string) *session.User {
	return &session.User{ID: id, Role: role, Tier: "creator"}
}

func TestCreateDebitsOneCredit(t *testing.T) {
	repo := newMockRepository()
	repo.credits["user-1"] = 3

	svc := NewService(repo)

	sub, err := svc.Create(context.Background(), caller("user-1", "user"),
		CreateSubmissionRequest{
			Title:   "Night Drive",
			Artist:  "Mono Static",
			Genre:   "synthwave",
			FileURL: "https://cdn.example.com/tracks/night-drive.mp3",
		})
	require.NoError(t, err)
	require.Equal(t, StatusPending, sub.Status)
	require.Equal(t, 2, repo.credits["user-1"])
	require.NotNil(t, sub.MoodTags)
}

func TestCreateWithoutCredits(t *testing.T) {
	repo := newMockRepository()
	repo.credits["user-1"] = 0

	svc := NewService(repo)

	_, err := svc.Create(context.Background(), caller("user-1", "user"),
		CreateSubmissionRequest{
			Title:   "Broke",
			Artist:  "Mono Static",
			Genre:   "synthwave",
			FileURL: "https://cdn.example.com/tracks/broke.mp3",
		})
	require.ErrorIs(t, err, core.ErrNoCredits)
	require.Empty(t, repo.submissions)
}

func TestCreateMasterDevNeverDebits(t *testing.T) {
	repo := newMockRepository()
	repo.credits["dev-1"] = 0

	svc := NewService(repo)

	for i := 0; i < 5; i++ {
		_, err := svc.Create(
			context.Background(),
			caller("dev-1", "master_dev"),
			CreateSubmissionRequest{
				Title:   "Demo",
				Artist:  "Internal",
				Genre:   "test",
				FileURL: "https://cdn.example.com/tracks/demo.mp3",
			})
		require.NoError(t, err)
	}

	require.Len(t, repo.submissions, 5)
	require.Equal(t, 0, repo.credits["dev-1"])
}

func TestReviewUpdatesStatusAndRecordsDecision(t *testing.T) {
	repo := newMockRepository()
	repo.credits["user-1"] = 1

	svc := NewService(repo)

	sub, err := svc.Create(context.Background(), caller("user-1", "user"),
		CreateSubmissionRequest{
			Title:   "Pending Track",
			Artist:  "Mono Static",
			Genre:   "synthwave",
			FileURL: "https://cdn.example.com/tracks/pending.mp3",
		})
	require.NoError(t, err)

	rating := 8
	rev, err := svc.Review(context.Background(), "admin-1", sub.ID,
		ReviewRequest{
			Status:   StatusApproved,
			Feedback: "Strong mix, playlist ready.",
			Rating:   &rating,
			Tags:     []string{"retro", "driving"},
		})
	require.NoError(t, err)
	require.Equal(t, "admin-1", rev.ReviewerID)
	require.Equal(t, StatusApproved, repo.submissions[sub.ID].Status)
	require.Len(t, repo.reviews, 1)
}

func TestReviewInvalidStatus(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.Review(context.Background(), "admin-1", "sub-1",
		ReviewRequest{Status: "maybe"})
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestReviewMissingSubmission(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.Review(context.Background(), "admin-1", "nope",
		ReviewRequest{Status: StatusRejected})
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestExportCSV(t *testing.T) {
	submitted := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	repo := newMockRepository()
	repo.exportRows = []ExportRow{
		{
			ID:             "sub-1",
			Title:          `Say "Go"`,
			Artist:         "Mono Static",
			Genre:          "synthwave",
			Status:         StatusApproved,
			SubmitterName:  "Ada L.",
			SubmitterEmail: "ada@example.com",
			SubmittedAt:    submitted,
		},
	}

	svc := NewService(repo)

	out, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(
		t,
		"id,title,artist,genre,status,submitter_name,submitter_email,submitted_at",
		lines[0],
	)
	require.Equal(
		t,
		`sub-1,"Say ""Go""","Mono Static",synthwave,approved,"Ada L.",ada@example.com,2026-03-14T09:30:00Z`,
		lines[1],
	)
}

func TestExportCSVEmpty(t *testing.T) {
	svc := NewService(newMockRepository())

	out, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)
	require.Equal(
		t,
		"id,title,artist,genre,status,submitter_name,submitter_email,submitted_at\n",
		string(out),
	)
}
