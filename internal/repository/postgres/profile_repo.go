package postgres

import (
	"context"

	"go-skillmatch-backend/internal/domain"
	"go-skillmatch-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetOrCreate(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	// Lazy materialization: the first touch of a profile creates the row.
	query := `INSERT INTO user_profiles (user_id) VALUES ($1)
              ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
              RETURNING user_id, bio`
	var profile domain.UserProfile
	if err := r.db.QueryRow(ctx, query, userID).Scan(&profile.UserID, &profile.Bio); err != nil {
		return nil, apperror.Internal(err)
	}
	return &profile, nil
}

func (r *profileRepo) UpdateBio(ctx context.Context, userID int64, bio string) error {
	query := `UPDATE user_profiles SET bio = $2 WHERE user_id = $1`
	_, err := r.db.Exec(ctx, query, userID, bio)
	return err
}

func (r *profileRepo) GetCompletedCourses(ctx context.Context, userID int64) ([]domain.Course, error) {
	query := `SELECT c.id, c.title, c.description
              FROM completed_courses cc
              JOIN courses c ON c.id = cc.course_id
              WHERE cc.user_id = $1
              ORDER BY c.id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var course domain.Course
		if err := rows.Scan(&course.ID, &course.Title, &course.Description); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

func (r *profileRepo) GetVerifiedSkills(ctx context.Context, userID int64) ([]domain.Skill, error) {
	query := `SELECT s.id, s.name, s.description
              FROM verified_skills vs
              JOIN skills s ON s.id = vs.skill_id
              WHERE vs.user_id = $1
              ORDER BY s.id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var skill domain.Skill
		if err := rows.Scan(&skill.ID, &skill.Name, &skill.Description); err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, rows.Err()
}

func (r *profileRepo) MarkCourseCompleted(ctx context.Context, userID, courseID int64, skillIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// ON CONFLICT DO NOTHING keeps repeated completion idempotent: the
	// completed and verified sets only ever grow.
	_, err = tx.Exec(ctx,
		`INSERT INTO completed_courses (user_id, course_id) VALUES ($1, $2)
         ON CONFLICT DO NOTHING`, userID, courseID)
	if err != nil {
		return err
	}

	for _, skillID := range skillIDs {
		_, err = tx.Exec(ctx,
			`INSERT INTO verified_skills (user_id, skill_id) VALUES ($1, $2)
             ON CONFLICT DO NOTHING`, userID, skillID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *profileRepo) ListSeekerProfiles(ctx context.Context) ([]domain.UserProfile, error) {
	// LEFT JOIN on the profile row: seekers who never touched their
	// profile still show up with an empty bio.
	query := `SELECT u.id, COALESCE(p.bio, ''), u.username, u.first_name, u.last_name, u.email
              FROM users u
              LEFT JOIN user_profiles p ON p.user_id = u.id
              WHERE u.user_type = $1
              ORDER BY u.id`
	rows, err := r.db.Query(ctx, query, domain.UserTypeSeeker)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.UserProfile
	for rows.Next() {
		var p domain.UserProfile
		if err := rows.Scan(&p.UserID, &p.Bio, &p.Username, &p.FirstName, &p.LastName, &p.Email); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *profileRepo) ListSeekerSkillSets(ctx context.Context) ([]domain.SeekerSkillSet, error) {
	// LEFT JOIN so seekers with no verified skills still appear (needed
	// for the unranked full listing when the filter is empty).
	query := `SELECT u.id, vs.skill_id
              FROM users u
              LEFT JOIN verified_skills vs ON vs.user_id = u.id
              WHERE u.user_type = $1
              ORDER BY u.id, vs.skill_id`
	rows, err := r.db.Query(ctx, query, domain.UserTypeSeeker)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets []domain.SeekerSkillSet
	for rows.Next() {
		var userID int64
		var skillID *int64
		if err := rows.Scan(&userID, &skillID); err != nil {
			return nil, err
		}
		if len(sets) == 0 || sets[len(sets)-1].UserID != userID {
			sets = append(sets, domain.SeekerSkillSet{UserID: userID})
		}
		if skillID != nil {
			last := &sets[len(sets)-1]
			last.SkillIDs = append(last.SkillIDs, *skillID)
		}
	}
	return sets, rows.Err()
}
