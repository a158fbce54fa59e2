// AngelaMos | 2026
// repository.go

package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/carterperez-dev/trackflow/internal/core"
)

type Repository interface {
	Create(ctx context.Context, session *Session) error
	FindWithUser(ctx context.Context, tokenHash string) (*Session, *User, error)
	Delete(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, session *Session) error {
	query := `
		INSERT INTO sessions (
			token_hash, user_id, expires_at, user_agent, ip_address
		) VALUES (
			$1, $2, $3, $4, $5
		)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &session.CreatedAt, query,
		session.TokenHash,
		session.UserID,
		session.ExpiresAt,
		session.UserAgent,
		session.IPAddress,
	)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	return nil
}

type sessionUserRow struct {
	Session
	User User `db:"u"`
}

// FindWithUser resolves a token hash to its session and owner in a single
// round trip.
func (r *repository) FindWithUser(
	ctx context.Context,
	tokenHash string,
) (*Session, *User, error) {
	query := `
		SELECT
			s.token_hash, s.user_id, s.expires_at, s.user_agent,
			s.ip_address, s.created_at,
			u.id AS "u.id", u.email AS "u.email", u.name AS "u.name",
			u.role AS "u.role", u.tier AS "u.tier",
			u.submission_credits AS "u.submission_credits",
			u.is_verified AS "u.is_verified",
			u.legal_waiver_accepted AS "u.legal_waiver_accepted",
			u.compensation_type AS "u.compensation_type",
			u.created_at AS "u.created_at"
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token_hash = $1`

	var row sessionUserRow
	err := r.db.GetContext(ctx, &row, query, tokenHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("find session: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("find session: %w", err)
	}

	return &row.Session, &row.User, nil
}

func (r *repository) Delete(ctx context.Context, tokenHash string) error {
	query := `DELETE FROM sessions WHERE token_hash = $1`

	_, err := r.db.ExecContext(ctx, query, tokenHash)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

func (r *repository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at < $1`

	result, err := r.db.ExecContext(ctx, query, time.Now())
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	return rows, nil
}
