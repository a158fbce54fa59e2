// AngelaMos | 2026
// repository.go

package submission

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/trackflow/internal/core"
)

type Repository interface {
	CreateWithDebit(
		ctx context.Context,
		sub *Submission,
		debitUserID string,
	) error
	GetByID(ctx context.Context, id string) (*Submission, error)
	ListByUser(ctx context.Context, userID string) ([]Submission, error)
	ListAll(ctx context.Context) ([]Submission, error)
	Review(ctx context.Context, submissionID, status string, rev *Review) error
	ReviewsOnUserSubmissions(
		ctx context.Context,
		userID string,
		limit int,
	) ([]Review, error)
	ExportRows(ctx context.Context) ([]ExportRow, error)
}

type ExportRow struct {
	ID             string    `db:"id"`
	Title          string    `db:"title"`
	Artist         string    `db:"artist"`
	Genre          string    `db:"genre"`
	Status         string    `db:"status"`
	SubmitterName  string    `db:"submitter_name"`
	SubmitterEmail string    `db:"submitter_email"`
	SubmittedAt    time.Time `db:"submitted_at"`
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const submissionColumns = `id, user_id, title, artist, genre, mood_tags,
	       description, file_url, duration_secs, file_size_bytes,
	       status, submitted_at, created_at, updated_at`

// CreateWithDebit inserts the submission and, when debitUserID is set,
// debits one submission credit in the same transaction. The guarded
// UPDATE means the credit check and the decrement are a single atomic
// statement: concurrent submissions cannot both spend the last credit.
func (r *repository) CreateWithDebit(
	ctx context.Context,
	sub *Submission,
	debitUserID string,
) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if debitUserID != "" {
			result, err := tx.ExecContext(ctx, `
				UPDATE users
				SET submission_credits = submission_credits - 1,
				    updated_at = NOW()
				WHERE id = $1 AND submission_credits > 0`,
				debitUserID,
			)
			if err != nil {
				return fmt.Errorf("debit submission credit: %w", err)
			}

			rows, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("debit submission credit: %w", err)
			}

			if rows == 0 {
				return fmt.Errorf(
					"debit submission credit: %w",
					core.ErrNoCredits,
				)
			}
		}

		query := `
			INSERT INTO submissions (
				id, user_id, title, artist, genre, mood_tags, description,
				file_url, duration_secs, file_size_bytes, status, submitted_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
			)
			RETURNING created_at, updated_at`

		err := tx.QueryRowxContext(ctx, query,
			sub.ID,
			sub.UserID,
			sub.Title,
			sub.Artist,
			sub.Genre,
			sub.MoodTags,
			sub.Description,
			sub.FileURL,
			sub.DurationSecs,
			sub.FileSizeBytes,
			sub.Status,
			sub.SubmittedAt,
		).Scan(&sub.CreatedAt, &sub.UpdatedAt)
		if err != nil {
			return fmt.Errorf("create submission: %w", err)
		}

		return nil
	})
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Submission, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM submissions
		WHERE id = $1`, submissionColumns)

	var sub Submission
	err := r.db.GetContext(ctx, &sub, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get submission: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}

	return &sub, nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID string,
) ([]Submission, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM submissions
		WHERE user_id = $1
		ORDER BY submitted_at DESC`, submissionColumns)

	var subs []Submission
	if err := r.db.SelectContext(ctx, &subs, query, userID); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	return subs, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Submission, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM submissions
		ORDER BY submitted_at DESC`, submissionColumns)

	var subs []Submission
	if err := r.db.SelectContext(ctx, &subs, query); err != nil {
		return nil, fmt.Errorf("list all submissions: %w", err)
	}

	return subs, nil
}

// Review sets the submission status and appends the review record in one
// transaction; either both writes land or neither does.
func (r *repository) Review(
	ctx context.Context,
	submissionID, status string,
	rev *Review,
) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE submissions
			SET status = $2, updated_at = NOW()
			WHERE id = $1`,
			submissionID, status,
		)
		if err != nil {
			return fmt.Errorf("update submission status: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("update submission status: %w", err)
		}

		if rows == 0 {
			return fmt.Errorf(
				"update submission status: %w",
				core.ErrNotFound,
			)
		}

		query := `
			INSERT INTO reviews (
				id, submission_id, reviewer_id, feedback, rating, tags
			) VALUES (
				$1, $2, $3, $4, $5, $6
			)
			RETURNING created_at`

		err = tx.QueryRowxContext(ctx, query,
			rev.ID,
			rev.SubmissionID,
			rev.ReviewerID,
			rev.Feedback,
			rev.Rating,
			rev.Tags,
		).Scan(&rev.CreatedAt)
		if err != nil {
			return fmt.Errorf("create review: %w", err)
		}

		return nil
	})
}

func (r *repository) ReviewsOnUserSubmissions(
	ctx context.Context,
	userID string,
	limit int,
) ([]Review, error) {
	query := `
		SELECT r.id, r.submission_id, r.reviewer_id, r.feedback,
		       r.rating, r.tags, r.created_at
		FROM reviews r
		JOIN submissions s ON s.id = r.submission_id
		WHERE s.user_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2`

	var reviews []Review
	err := r.db.SelectContext(ctx, &reviews, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return reviews, nil
}

func (r *repository) ExportRows(ctx context.Context) ([]ExportRow, error) {
	query := `
		SELECT s.id, s.title, s.artist, s.genre, s.status,
		       u.name AS submitter_name, u.email AS submitter_email,
		       s.submitted_at
		FROM submissions s
		JOIN users u ON u.id = s.user_id
		ORDER BY s.submitted_at DESC`

	var rows []ExportRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("export submissions: %w", err)
	}

	return rows, nil
}
