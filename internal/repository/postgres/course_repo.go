package postgres

import (
	"context"
	"errors"

	"go-skillmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type courseRepo struct {
	db *pgxpool.Pool
}

func NewCourseRepository(db *pgxpool.Pool) domain.CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Fetch(ctx context.Context) ([]domain.Course, error) {
	query := `SELECT c.id, c.title, c.description, s.id, s.name, s.description
              FROM courses c
              LEFT JOIN course_skills cs ON cs.course_id = c.id
              LEFT JOIN skills s ON s.id = cs.skill_id
              ORDER BY c.id, s.id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var course domain.Course
		var skillID *int64
		var skillName, skillDesc *string
		if err := rows.Scan(&course.ID, &course.Title, &course.Description, &skillID, &skillName, &skillDesc); err != nil {
			return nil, err
		}
		if len(courses) == 0 || courses[len(courses)-1].ID != course.ID {
			course.Skills = []domain.Skill{}
			courses = append(courses, course)
		}
		if skillID != nil {
			last := &courses[len(courses)-1]
			last.Skills = append(last.Skills, domain.Skill{ID: *skillID, Name: *skillName, Description: *skillDesc})
		}
	}
	return courses, rows.Err()
}

func (r *courseRepo) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	var course domain.Course
	err := r.db.QueryRow(ctx,
		`SELECT id, title, description FROM courses WHERE id = $1`, id,
	).Scan(&course.ID, &course.Title, &course.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	course.Skills = []domain.Skill{}
	skillRows, err := r.db.Query(ctx,
		`SELECT s.id, s.name, s.description
         FROM course_skills cs
         JOIN skills s ON s.id = cs.skill_id
         WHERE cs.course_id = $1
         ORDER BY s.id`, id)
	if err != nil {
		return nil, err
	}
	defer skillRows.Close()
	for skillRows.Next() {
		var skill domain.Skill
		if err := skillRows.Scan(&skill.ID, &skill.Name, &skill.Description); err != nil {
			return nil, err
		}
		course.Skills = append(course.Skills, skill)
	}
	if err := skillRows.Err(); err != nil {
		return nil, err
	}

	course.Lessons = []domain.Lesson{}
	lessonRows, err := r.db.Query(ctx,
		`SELECT id, course_id, title, content, COALESCE(video_url, '')
         FROM lessons WHERE course_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer lessonRows.Close()
	for lessonRows.Next() {
		var lesson domain.Lesson
		if err := lessonRows.Scan(&lesson.ID, &lesson.CourseID, &lesson.Title, &lesson.Content, &lesson.VideoURL); err != nil {
			return nil, err
		}
		course.Lessons = append(course.Lessons, lesson)
	}
	return &course, lessonRows.Err()
}

func (r *courseRepo) Create(ctx context.Context, course *domain.Course) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO courses (title, description) VALUES ($1, $2) RETURNING id`,
		course.Title, course.Description,
	).Scan(&course.ID)
	if err != nil {
		return err
	}

	for _, skill := range course.Skills {
		_, err = tx.Exec(ctx,
			`INSERT INTO course_skills (course_id, skill_id) VALUES ($1, $2)
             ON CONFLICT DO NOTHING`, course.ID, skill.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *courseRepo) Delete(ctx context.Context, id int64) error {
	// Lessons and join rows go with the course via ON DELETE CASCADE.
	_, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	return err
}

func (r *courseRepo) AddLesson(ctx context.Context, lesson *domain.Lesson) error {
	query := `INSERT INTO lessons (course_id, title, content, video_url)
              VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRow(ctx, query,
		lesson.CourseID, lesson.Title, lesson.Content, lesson.VideoURL,
	).Scan(&lesson.ID)
}
