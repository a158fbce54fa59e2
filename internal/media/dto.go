// AngelaMos | 2026
// dto.go

package media

import (
	"time"
)

type AddMediaRequest struct {
	Title        string `json:"title"         validate:"required,min=1,max=200"`
	Description  string `json:"description"   validate:"omitempty,max=2000"`
	MediaType    string `json:"media_type"    validate:"required,oneof=audio video image youtube"`
	FileURL      string `json:"file_url"      validate:"required,url,max=500"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,url,max=500"`
	IsPublic     bool   `json:"is_public"`
}

type SyncMediaRequest struct {
	YoutubeURL  string `json:"youtube_url" validate:"required,url,max=500"`
	Title       string `json:"title"       validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	IsPublic    bool   `json:"is_public"`
}

type MediaResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	MediaType    string    `json:"media_type"`
	FileURL      string    `json:"file_url"`
	YoutubeID    string    `json:"youtube_id,omitempty"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	UploadedBy   string    `json:"uploaded_by"`
	IsPublic     bool      `json:"is_public"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToMediaResponse(m *Media) MediaResponse {
	return MediaResponse{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		MediaType:    m.MediaType,
		FileURL:      m.FileURL,
		YoutubeID:    m.YoutubeID,
		ThumbnailURL: m.ThumbnailURL,
		UploadedBy:   m.UploadedBy,
		IsPublic:     m.IsPublic,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToMediaResponseList(items []Media) []MediaResponse {
	responses := make([]MediaResponse, 0, len(items))
	for _, m := range items {
		responses = append(responses, ToMediaResponse(&m))
	}
	return responses
}
