package repositories

import (
	"context"
	"time"

	"github.com/Jeevaranjani21/vdart-backend/internal/database"
	"github.com/Jeevaranjani21/vdart-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{pool: db.Pool}
}

// rowScanner interface for scanning rows (single row and multiple rows)
type rowScanner interface {
	Scan(dest ...interface{}) error
}

const userColumns = `id, full_name, email, password_hash, is_verified, otp, otp_expires_at, created_at, updated_at`

// scanUserRow handles nullable OTP fields and populates a User model
func scanUserRow(scanner rowScanner) (*models.User, error) {
	var user models.User
	var otp *string
	var otpExpiresAt *time.Time

	err := scanner.Scan(
		&user.ID, &user.FullName, &user.Email, &user.PasswordHash,
		&user.IsVerified, &otp, &otpExpiresAt,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	user.OTP = otp
	user.OTPExpiresAt = otpExpiresAt

	return &user, nil
}

// Create inserts a new user together with its initial pending OTP.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	user.ID = uuid.New().String()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, full_name, email, password_hash, is_verified, otp, otp_expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + userColumns

	createdUser, err := scanUserRow(r.pool.QueryRow(ctx, query,
		user.ID, user.FullName, user.Email, user.PasswordHash,
		user.IsVerified, user.OTP, user.OTPExpiresAt,
		user.CreatedAt, user.UpdatedAt,
	))
	if err != nil {
		return nil, err
	}

	return createdUser, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	return scanUserRow(r.pool.QueryRow(ctx, query, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	return scanUserRow(r.pool.QueryRow(ctx, query, email))
}

// SetOTP stores a fresh code and expiry, overwriting any prior code.
// Re-issuance invalidates the previous code even if unexpired.
func (r *UserRepository) SetOTP(ctx context.Context, id, code string, expiresAt time.Time) error {
	query := `
		UPDATE users SET otp = $1, otp_expires_at = $2, updated_at = NOW()
		WHERE id = $3
	`

	result, err := r.pool.Exec(ctx, query, code, expiresAt, id)
	if err != nil {
		return database.MapPostgresError(err)
	}

	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

// ConsumeOTP marks the user verified and clears the pending code in a
// single statement, so the code cannot be redeemed twice.
func (r *UserRepository) ConsumeOTP(ctx context.Context, id string) error {
	query := `
		UPDATE users SET is_verified = TRUE, otp = NULL, otp_expires_at = NULL, updated_at = NOW()
		WHERE id = $1 AND otp IS NOT NULL
	`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return database.MapPostgresError(err)
	}

	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

// Delete removes a user. Used to roll back a registration whose
// verification email could not be delivered.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return database.MapPostgresError(err)
	}

	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

// ClearExpiredOTPs nulls out codes whose window has passed. Lazy
// invalidation at verify time remains authoritative; this just keeps
// stale codes from lingering.
func (r *UserRepository) ClearExpiredOTPs(ctx context.Context) (int64, error) {
	query := `
		UPDATE users SET otp = NULL, otp_expires_at = NULL, updated_at = NOW()
		WHERE otp_expires_at IS NOT NULL AND otp_expires_at < NOW()
	`

	result, err := r.pool.Exec(ctx, query)
	if err != nil {
		return 0, database.MapPostgresError(err)
	}

	return result.RowsAffected(), nil
}
