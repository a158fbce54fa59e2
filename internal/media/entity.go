// AngelaMos | 2026
// entity.go

package media

import (
	"time"
)

type Media struct {
	ID           string    `db:"id"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	MediaType    string    `db:"media_type"`
	FileURL      string    `db:"file_url"`
	YoutubeID    string    `db:"youtube_id"`
	ThumbnailURL string    `db:"thumbnail_url"`
	UploadedBy   string    `db:"uploaded_by"`
	IsPublic     bool      `db:"is_public"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

const (
	TypeAudio   = "audio"
	TypeVideo   = "video"
	TypeImage   = "image"
	TypeYoutube = "youtube"
)

func ValidMediaType(t string) bool {
	return t == TypeAudio || t == TypeVideo || t == TypeImage || t == TypeYoutube
}
