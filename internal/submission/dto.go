// AngelaMos | 2026
// dto.go

package submission

import (
	"time"
)

type CreateSubmissionRequest struct {
	Title         string   `json:"title"           validate:"required,min=1,max=200"`
	Artist        string   `json:"artist"          validate:"required,min=1,max=200"`
	Genre         string   `json:"genre"           validate:"omitempty,max=100"`
	MoodTags      []string `json:"mood_tags"       validate:"omitempty,max=20,dive,max=50"`
	Description   string   `json:"description"     validate:"omitempty,max=2000"`
	FileURL       string   `json:"file_url"        validate:"required,url,max=500"`
	DurationSecs  int      `json:"duration_secs"   validate:"omitempty,gte=0"`
	FileSizeBytes int64    `json:"file_size_bytes" validate:"omitempty,gte=0"`
}

// LegacySubmitRequest is the flat payload of the old /submit endpoint,
// kept for clients that predate the submissions API.
type LegacySubmitRequest struct {
	TrackTitle  string `json:"track_title" validate:"required,min=1,max=200"`
	ArtistName  string `json:"artist_name" validate:"required,min=1,max=200"`
	Genre       string `json:"genre"       validate:"omitempty,max=100"`
	TrackURL    string `json:"track_url"   validate:"required,url,max=500"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

func (r LegacySubmitRequest) ToCreateRequest() CreateSubmissionRequest {
	return CreateSubmissionRequest{
		Title:       r.TrackTitle,
		Artist:      r.ArtistName,
		Genre:       r.Genre,
		FileURL:     r.TrackURL,
		Description: r.Description,
	}
}

type ReviewRequest struct {
	Status   string   `json:"status"   validate:"required,oneof=pending approved rejected"`
	Feedback string   `json:"feedback" validate:"omitempty,max=2000"`
	Rating   *int     `json:"rating"   validate:"omitempty,gte=1,lte=10"`
	Tags     []string `json:"tags"     validate:"omitempty,max=20,dive,max=50"`
}

type SubmissionResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	Artist        string    `json:"artist"`
	Genre         string    `json:"genre"`
	MoodTags      []string  `json:"mood_tags"`
	Description   string    `json:"description,omitempty"`
	FileURL       string    `json:"file_url"`
	DurationSecs  int       `json:"duration_secs"`
	FileSizeBytes int64     `json:"file_size_bytes"`
	Status        string    `json:"status"`
	SubmittedAt   time.Time `json:"submitted_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ReviewResponse struct {
	ID           string    `json:"id"`
	SubmissionID string    `json:"submission_id"`
	ReviewerID   string    `json:"reviewer_id"`
	Feedback     string    `json:"feedback,omitempty"`
	Rating       *int      `json:"rating,omitempty"`
	Tags         []string  `json:"tags"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToSubmissionResponse(s *Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:            s.ID,
		UserID:        s.UserID,
		Title:         s.Title,
		Artist:        s.Artist,
		Genre:         s.Genre,
		MoodTags:      s.MoodTags,
		Description:   s.Description,
		FileURL:       s.FileURL,
		DurationSecs:  s.DurationSecs,
		FileSizeBytes: s.FileSizeBytes,
		Status:        s.Status,
		SubmittedAt:   s.SubmittedAt,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func ToSubmissionResponseList(subs []Submission) []SubmissionResponse {
	responses := make([]SubmissionResponse, 0, len(subs))
	for _, s := range subs {
		responses = append(responses, ToSubmissionResponse(&s))
	}
	return responses
}

func ToReviewResponse(r *Review) ReviewResponse {
	return ReviewResponse{
		ID:           r.ID,
		SubmissionID: r.SubmissionID,
		ReviewerID:   r.ReviewerID,
		Feedback:     r.Feedback,
		Rating:       r.Rating,
		Tags:         r.Tags,
		CreatedAt:    r.CreatedAt,
	}
}
