package postgres

import (
	"context"
	"errors"

	"go-skillmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

func (r *resumeRepo) Upsert(ctx context.Context, resume *domain.Resume) error {
	// Single-file replace semantics: re-upload overwrites the file key in
	// place, no versioning.
	query := `INSERT INTO resumes (user_id, file_key, created_at, updated_at)
              VALUES ($1, $2, now(), now())
              ON CONFLICT (user_id) DO UPDATE SET file_key = EXCLUDED.file_key, updated_at = now()
              RETURNING created_at, updated_at`
	return r.db.QueryRow(ctx, query, resume.UserID, resume.FileKey).
		Scan(&resume.CreatedAt, &resume.UpdatedAt)
}

func (r *resumeRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Resume, error) {
	query := `SELECT user_id, file_key, created_at, updated_at FROM resumes WHERE user_id = $1`
	var resume domain.Resume
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&resume.UserID, &resume.FileKey, &resume.CreatedAt, &resume.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}
