// AngelaMos | 2026
// feed.go

package activity

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/trackflow/internal/core"
	"github.com/carterperez-dev/trackflow/internal/middleware"
	"github.com/carterperez-dev/trackflow/internal/submission"
)

const feedLimit = 20

type FeedItem struct {
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Detail      string    `json:"detail,omitempty"`
	ReferenceID string    `json:"reference_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type SubmissionSource interface {
	ListByUser(ctx context.Context, userID string) ([]submission.Submission, error)
	ReviewsOnUserSubmissions(
		ctx context.Context,
		userID string,
		limit int,
	) ([]submission.Review, error)
}

type Handler struct {
	source SubmissionSource
}

func NewHandler(source SubmissionSource) *Handler {
	return &Handler{source: source}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Get("/user/activity", h.GetFeed)
	})
}

// GetFeed synthesizes a recent-activity feed from the caller's
// submissions and the reviews written on them, newest first.
func (h *Handler) GetFeed(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	subs, err := h.source.ListByUser(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	reviews, err := h.source.ReviewsOnUserSubmissions(
		r.Context(),
		userID,
		feedLimit,
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	items := make([]FeedItem, 0, len(subs)+len(reviews))

	for _, s := range subs {
		items = append(items, FeedItem{
			Type:        "submission",
			Title:       "Submitted \"" + s.Title + "\"",
			Detail:      "status: " + s.Status,
			ReferenceID: s.ID,
			OccurredAt:  s.SubmittedAt,
		})
	}

	for _, rev := range reviews {
		items = append(items, FeedItem{
			Type:        "review",
			Title:       "A reviewer responded to your submission",
			Detail:      rev.Feedback,
			ReferenceID: rev.SubmissionID,
			OccurredAt:  rev.CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].OccurredAt.After(items[j].OccurredAt)
	})

	if len(items) > feedLimit {
		items = items[:feedLimit]
	}

	core.OK(w, items)
}
