package domain

import "context"

type Course struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []Skill  `json:"skills"`
	Lessons     []Lesson `json:"lessons,omitempty"`
}

// Lesson belongs to exactly one course and is deleted with it.
type Lesson struct {
	ID       int64  `json:"id"`
	CourseID int64  `json:"course_id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	VideoURL string `json:"video_url"`
}

// CourseMatch annotates a course with its skill-match count for the
// filtered endpoint.
type CourseMatch struct {
	Course
	MatchCount int `json:"skill_match_count"`
}

type CourseRepository interface {
	// Fetch returns all courses with their tagged skills, ascending by ID.
	Fetch(ctx context.Context) ([]Course, error)
	// GetByID returns the course with skills and lessons, or (nil, nil).
	GetByID(ctx context.Context, id int64) (*Course, error)
	Create(ctx context.Context, course *Course) error
	Delete(ctx context.Context, id int64) error
	AddLesson(ctx context.Context, lesson *Lesson) error
}

type CourseInput struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description"`
	SkillIDs    []int64 `json:"skill_ids"`
}

type LessonInput struct {
	Title    string `json:"title" validate:"required,max=200"`
	Content  string `json:"content"`
	VideoURL string `json:"video_url" validate:"omitempty,url"`
}

type CourseUsecase interface {
	ListCourses(ctx context.Context) ([]Course, error)
	GetCourse(ctx context.Context, id int64) (*Course, error)
	// FilterCourses ranks courses by overlap with the query skill set.
	// An empty query returns all courses unranked.
	FilterCourses(ctx context.Context, skillIDs []int64) ([]CourseMatch, error)
	// MarkCompleted adds the course to the caller's completed set and all
	// of its tagged skills to the verified set. Idempotent.
	MarkCompleted(ctx context.Context, courseID int64) (*Course, error)
	CreateCourse(ctx context.Context, input CourseInput) (*Course, error)
	DeleteCourse(ctx context.Context, id int64) error
	AddLesson(ctx context.Context, courseID int64, input LessonInput) (*Lesson, error)
}
