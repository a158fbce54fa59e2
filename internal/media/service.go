// AngelaMos | 2026
// service.go

package media

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/carterperez-dev/trackflow/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(
	ctx context.Context,
	uploaderID string,
	req AddMediaRequest,
) (*Media, error) {
	if !ValidMediaType(req.MediaType) {
		return nil, fmt.Errorf(
			"add media: invalid media type %q: %w",
			req.MediaType,
			core.ErrInvalidInput,
		)
	}

	m := &Media{
		ID:           uuid.New().String(),
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		MediaType:    req.MediaType,
		FileURL:      req.FileURL,
		ThumbnailURL: req.ThumbnailURL,
		UploadedBy:   uploaderID,
		IsPublic:     req.IsPublic,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// SyncFromYoutube derives a media record from a YouTube URL: the video
// id is extracted and the thumbnail URL is built from it.
func (s *Service) SyncFromYoutube(
	ctx context.Context,
	uploaderID string,
	req SyncMediaRequest,
) (*Media, error) {
	videoID, err := ExtractYoutubeID(req.YoutubeURL)
	if err != nil {
		return nil, err
	}

	m := &Media{
		ID:           uuid.New().String(),
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		MediaType:    TypeYoutube,
		FileURL:      "https://www.youtube.com/watch?v=" + videoID,
		YoutubeID:    videoID,
		ThumbnailURL: "https://i.ytimg.com/vi/" + videoID + "/hqdefault.jpg",
		UploadedBy:   uploaderID,
		IsPublic:     req.IsPublic,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

func (s *Service) ListPublic(ctx context.Context) ([]Media, error) {
	return s.repo.ListPublic(ctx)
}

func (s *Service) ListAll(ctx context.Context) ([]Media, error) {
	return s.repo.ListAll(ctx)
}

// ExtractYoutubeID handles the watch?v=, youtu.be/, embed/, and shorts/
// URL shapes.
func ExtractYoutubeID(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf(
			"parse youtube url: %w",
			core.ErrInvalidInput,
		)
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")

	var id string
	switch host {
	case "youtube.com", "m.youtube.com", "music.youtube.com":
		switch {
		case u.Path == "/watch":
			id = u.Query().Get("v")
		case strings.HasPrefix(u.Path, "/embed/"):
			id = strings.TrimPrefix(u.Path, "/embed/")
		case strings.HasPrefix(u.Path, "/shorts/"):
			id = strings.TrimPrefix(u.Path, "/shorts/")
		}
	case "youtu.be":
		id = strings.TrimPrefix(u.Path, "/")
	}

	id = strings.TrimSuffix(id, "/")

	if !validVideoID(id) {
		return "", fmt.Errorf(
			"invalid youtube video id in %q: %w",
			rawURL,
			core.ErrInvalidInput,
		)
	}

	return id, nil
}

// Video ids are 11 characters from the base64url alphabet.
func validVideoID(id string) bool {
	if len(id) != 11 {
		return false
	}

	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}

	return true
}
