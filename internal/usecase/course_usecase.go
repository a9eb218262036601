package usecase

import (
	"context"

	"go-skillmatch-backend/internal/domain"
	"go-skillmatch-backend/internal/matching"
	"go-skillmatch-backend/pkg/apperror"
	"go-skillmatch-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type courseUsecase struct {
	courseRepo  domain.CourseRepository
	profileRepo domain.ProfileRepository
	validate    *validator.Validate
}

func NewCourseUsecase(courseRepo domain.CourseRepository, profileRepo domain.ProfileRepository, validate *validator.Validate) domain.CourseUsecase {
	return &courseUsecase{
		courseRepo:  courseRepo,
		profileRepo: profileRepo,
		validate:    validate,
	}
}

func (u *courseUsecase) ListCourses(ctx context.Context) ([]domain.Course, error) {
	courses, err := u.courseRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return courses, nil
}

func (u *courseUsecase) GetCourse(ctx context.Context, id int64) (*domain.Course, error) {
	course, err := u.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if course == nil {
		return nil, apperror.NotFound("Course not found")
	}
	return course, nil
}

func (u *courseUsecase) FilterCourses(ctx context.Context, skillIDs []int64) ([]domain.CourseMatch, error) {
	courses, err := u.courseRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	// Empty filter: the full catalogue, unranked, in ID order.
	if len(skillIDs) == 0 {
		matches := make([]domain.CourseMatch, 0, len(courses))
		for _, course := range courses {
			matches = append(matches, domain.CourseMatch{Course: course})
		}
		return matches, nil
	}

	byID := make(map[int64]domain.Course, len(courses))
	entities := make([]matching.Entity, 0, len(courses))
	for _, course := range courses {
		byID[course.ID] = course
		ids := make([]int64, 0, len(course.Skills))
		for _, skill := range course.Skills {
			ids = append(ids, skill.ID)
		}
		entities = append(entities, matching.Entity{ID: course.ID, SkillIDs: ids})
	}

	ranked := matching.Rank(entities, skillIDs)
	matches := make([]domain.CourseMatch, 0, len(ranked))
	for _, m := range ranked {
		matches = append(matches, domain.CourseMatch{Course: byID[m.ID], MatchCount: m.Count})
	}
	return matches, nil
}

func (u *courseUsecase) MarkCompleted(ctx context.Context, courseID int64) (*domain.Course, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	course, err := u.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if course == nil {
		return nil, apperror.NotFound("Course not found")
	}

	// Credit the fetched course and every skill tagged on it. The union
	// only grows, so completing the same course twice is a no-op.
	skillIDs := make([]int64, 0, len(course.Skills))
	for _, skill := range course.Skills {
		skillIDs = append(skillIDs, skill.ID)
	}
	if err := u.profileRepo.MarkCourseCompleted(ctx, userID, course.ID, skillIDs); err != nil {
		return nil, apperror.Internal(err)
	}
	return course, nil
}

func (u *courseUsecase) CreateCourse(ctx context.Context, input domain.CourseInput) (*domain.Course, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(validation.Summarize(err))
	}

	course := &domain.Course{
		Title:       input.Title,
		Description: input.Description,
		Skills:      make([]domain.Skill, 0, len(input.SkillIDs)),
	}
	for _, id := range input.SkillIDs {
		course.Skills = append(course.Skills, domain.Skill{ID: id})
	}
	if err := u.courseRepo.Create(ctx, course); err != nil {
		return nil, apperror.Internal(err)
	}
	return u.GetCourse(ctx, course.ID)
}

func (u *courseUsecase) DeleteCourse(ctx context.Context, id int64) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	course, err := u.courseRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if course == nil {
		return apperror.NotFound("Course not found")
	}
	if err := u.courseRepo.Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *courseUsecase) AddLesson(ctx context.Context, courseID int64, input domain.LessonInput) (*domain.Lesson, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(validation.Summarize(err))
	}

	course, err := u.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if course == nil {
		return nil, apperror.NotFound("Course not found")
	}

	lesson := &domain.Lesson{
		CourseID: courseID,
		Title:    input.Title,
		Content:  input.Content,
		VideoURL: input.VideoURL,
	}
	if err := u.courseRepo.AddLesson(ctx, lesson); err != nil {
		return nil, apperror.Internal(err)
	}
	return lesson, nil
}

func requireAdmin(ctx context.Context) error {
	role, ok := domain.RoleFromContext(ctx)
	if !ok || role != domain.UserTypeAdmin {
		return apperror.Forbidden("Only admins can manage the catalogue")
	}
	return nil
}
