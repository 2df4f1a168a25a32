package repositories

import (
	"context"
	"time"

	"github.com/Jeevaranjani21/vdart-backend/internal/database"
	"github.com/Jeevaranjani21/vdart-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionRepository handles server-side session storage. Sessions bind
// issued opaque tokens to a user id and an expiry.
type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(db *database.DB) *SessionRepository {
	return &SessionRepository{pool: db.Pool}
}

func scanSessionRow(scanner rowScanner) (*models.Session, error) {
	var session models.Session

	err := scanner.Scan(
		&session.ID, &session.UserID, &session.TokenHash,
		&session.ExpiresAt, &session.CreatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &session, nil
}

// Create stores a new session for the user.
func (r *SessionRepository) Create(ctx context.Context, userID, tokenHash string, expiresAt time.Time) (*models.Session, error) {
	query := `
		INSERT INTO sessions (id, user_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, user_id, token_hash, expires_at, created_at
	`

	return scanSessionRow(r.pool.QueryRow(ctx, query, uuid.New().String(), userID, tokenHash, expiresAt))
}

// GetByTokenHash looks up a session by the hash of a presented token.
func (r *SessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error) {
	query := `
		SELECT id, user_id, token_hash, expires_at, created_at
		FROM sessions
		WHERE token_hash = $1
	`

	return scanSessionRow(r.pool.QueryRow(ctx, query, tokenHash))
}

// DeleteByUserID removes all sessions for a user.
func (r *SessionRepository) DeleteByUserID(ctx context.Context, userID string) error {
	query := `DELETE FROM sessions WHERE user_id = $1`

	_, err := r.pool.Exec(ctx, query, userID)
	if err != nil {
		return database.MapPostgresError(err)
	}

	return nil
}

// CleanupExpired deletes sessions past their expiry.
func (r *SessionRepository) CleanupExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at < NOW()`

	result, err := r.pool.Exec(ctx, query)
	if err != nil {
		return 0, database.MapPostgresError(err)
	}

	return result.RowsAffected(), nil
}
