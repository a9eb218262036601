package postgres

import (
	"context"
	"errors"

	"go-skillmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type tokenRepo struct {
	db *pgxpool.Pool
}

func NewTokenRepository(db *pgxpool.Pool) domain.TokenRepository {
	return &tokenRepo{db: db}
}

func (r *tokenRepo) Replace(ctx context.Context, userID int64, key string) error {
	// One token row per user; replacing the key invalidates the old one.
	query := `INSERT INTO auth_tokens (user_id, key, created_at)
              VALUES ($1, $2, now())
              ON CONFLICT (user_id) DO UPDATE SET key = EXCLUDED.key, created_at = now()`
	_, err := r.db.Exec(ctx, query, userID, key)
	return err
}

func (r *tokenRepo) GetUserByKey(ctx context.Context, key string) (*domain.User, error) {
	query := `SELECT u.id, u.username, u.email, u.password_hash, u.first_name, u.last_name, u.user_type, u.created_at, u.updated_at
              FROM auth_tokens t
              JOIN users u ON u.id = t.user_id
              WHERE t.key = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, key).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.FirstName, &user.LastName, &user.UserType,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
