// AngelaMos | 2026
// repository.go

package media

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/trackflow/internal/core"
)

type Repository interface {
	Create(ctx context.Context, m *Media) error
	ListPublic(ctx context.Context) ([]Media, error)
	ListAll(ctx context.Context) ([]Media, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const mediaColumns = `id, title, description, media_type, file_url,
	       youtube_id, thumbnail_url, uploaded_by, is_public,
	       created_at, updated_at`

func (r *repository) Create(ctx context.Context, m *Media) error {
	query := `
		INSERT INTO media (
			id, title, description, media_type, file_url, youtube_id,
			thumbnail_url, uploaded_by, is_public
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, m, query,
		m.ID,
		m.Title,
		m.Description,
		m.MediaType,
		m.FileURL,
		m.YoutubeID,
		m.ThumbnailURL,
		m.UploadedBy,
		m.IsPublic,
	)
	if err != nil {
		return fmt.Errorf("create media: %w", err)
	}

	return nil
}

func (r *repository) ListPublic(ctx context.Context) ([]Media, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM media
		WHERE is_public = true
		ORDER BY created_at DESC`, mediaColumns)

	var items []Media
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list public media: %w", err)
	}

	return items, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Media, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM media
		ORDER BY created_at DESC`, mediaColumns)

	var items []Media
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list all media: %w", err)
	}

	return items, nil
}
