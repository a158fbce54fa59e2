// AngelaMos | 2026
// service_test.go

package media

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/trackflow/internal/core"
)

type mockRepository struct {
	records []*Media
}

func (m *mockRepository) Create(_ context.Context, rec *Media) error {
	now := time.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	m.records = append(m.records, rec)
	return nil
}

func (m *mockRepository) ListPublic(_ context.Context) ([]Media, error) {
	var out []Media
	for _, rec := range m.records {
		if rec.IsPublic {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (m *mockRepository) ListAll(_ context.Context) ([]Media, error) {
	out := make([]Media, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, *rec)
	}
	return out, nil
}

func TestExtractYoutubeID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "watch url",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "watch url with extra params",
			url:  "https://youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "short link",
			url:  "https://youtu.be/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "embed url",
			url:  "https://www.youtube.com/embed/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "shorts url",
			url:  "https://www.youtube.com/shorts/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "music host",
			url:  "https://music.youtube.com/watch?v=dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "mobile host",
			url:  "https://m.youtube.com/watch?v=dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ExtractYoutubeID(tt.url)
			require.NoError(t, err)
			require.Equal(t, tt.want, id)
		})
	}
}

func TestExtractYoutubeIDRejectsInvalid(t *testing.T) {
	urls := []string{
		"",
		"https://vimeo.com/123456",
		"https://www.youtube.com/watch",
		"https://www.youtube.com/watch?v=short",
		"https://www.youtube.com/watch?v=waytoolongvideoid",
		"https://youtu.be/",
		"https://example.com/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=bad*chars!!",
	}

	for _, raw := range urls {
		_, err := ExtractYoutubeID(raw)
		require.ErrorIs(t, err, core.ErrInvalidInput, "url: %s", raw)
	}
}

func TestSyncFromYoutube(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo)

	m, err := svc.SyncFromYoutube(context.Background(), "admin-1",
		SyncMediaRequest{
			YoutubeURL: "https://youtu.be/dQw4w9WgXcQ",
			Title:      "Session Highlights",
			IsPublic:   true,
		})
	require.NoError(t, err)
	require.Equal(t, TypeYoutube, m.MediaType)
	require.Equal(t, "dQw4w9WgXcQ", m.YoutubeID)
	require.Equal(
		t,
		"https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg",
		m.ThumbnailURL,
	)
	require.Equal(
		t,
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		m.FileURL,
	)
	require.Len(t, repo.records, 1)
}

func TestAddRejectsInvalidMediaType(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo)

	_, err := svc.Add(context.Background(), "admin-1", AddMediaRequest{
		Title:     "Broken Upload",
		MediaType: "hologram",
		FileURL:   "https://cdn.example.com/clip.bin",
	})
	require.ErrorIs(t, err, core.ErrInvalidInput)
	require.Empty(t, repo.records)
}

func TestSyncFromYoutubeInvalidURL(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo)

	_, err := svc.SyncFromYoutube(context.Background(), "admin-1",
		SyncMediaRequest{YoutubeURL: "https://vimeo.com/123456"})
	require.ErrorIs(t, err, core.ErrInvalidInput)
	require.Empty(t, repo.records)
}

func TestListPublicFiltersPrivate(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo)

	_, err := svc.Add(context.Background(), "admin-1", AddMediaRequest{
		Title:     "Public Mix",
		MediaType: "audio",
		FileURL:   "https://cdn.example.com/mix.mp3",
		IsPublic:  true,
	})
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), "admin-1", AddMediaRequest{
		Title:     "Internal Demo",
		MediaType: "audio",
		FileURL:   "https://cdn.example.com/demo.mp3",
		IsPublic:  false,
	})
	require.NoError(t, err)

	public, err := svc.ListPublic(context.Background())
	require.NoError(t, err)
	require.Len(t, public, 1)
	require.Equal(t, "Public Mix", public[0].Title)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
}
