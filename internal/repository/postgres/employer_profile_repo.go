package postgres

import (
	"context"

	"go-skillmatch-backend/internal/domain"
	"go-skillmatch-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

type employerProfileRepo struct {
	db *pgxpool.Pool
}

func NewEmployerProfileRepository(db *pgxpool.Pool) domain.EmployerProfileRepository {
	return &employerProfileRepo{db: db}
}

func (r *employerProfileRepo) GetOrCreate(ctx context.Context, userID int64) (*domain.EmployerProfile, error) {
	query := `INSERT INTO employer_profiles (user_id) VALUES ($1)
              ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
              RETURNING user_id, bio, company, website, location`
	var profile domain.EmployerProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID, &profile.Bio, &profile.Company, &profile.Website, &profile.Location,
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &profile, nil
}

func (r *employerProfileRepo) Update(ctx context.Context, profile *domain.EmployerProfile) error {
	query := `UPDATE employer_profiles SET bio = $2, company = $3, website = $4, location = $5
              WHERE user_id = $1`
	_, err := r.db.Exec(ctx, query,
		profile.UserID, profile.Bio, profile.Company, profile.Website, profile.Location,
	)
	return err
}
