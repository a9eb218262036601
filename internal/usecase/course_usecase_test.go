package usecase_test

import (
	"context"
	"testing"

	"go-skillmatch-backend/internal/domain"
	"go-skillmatch-backend/internal/usecase"
	"go-skillmatch-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func catalogue() []domain.Course {
	return []domain.Course{
		{ID: 1, Title: "Intro to Go", Skills: []domain.Skill{{ID: 10}, {ID: 20}}},
		{ID: 2, Title: "Databases", Skills: []domain.Skill{{ID: 20}, {ID: 30}, {ID: 40}}},
		{ID: 3, Title: "Networking", Skills: []domain.Skill{{ID: 40}}},
		{ID: 4, Title: "Soft Skills", Skills: []domain.Skill{}},
	}
}

func TestFilterCoursesRanksByOverlap(t *testing.T) {
	courseRepo := new(MockCourseRepo)
	uc := usecase.NewCourseUsecase(courseRepo, new(MockProfileRepo), newValidator())

	courseRepo.On("Fetch", mock.Anything).Return(catalogue(), nil)

	matches, err := uc.FilterCourses(context.Background(), []int64{20, 30, 40})

	assert.NoError(t, err)
	assert.Len(t, matches, 3) // course 4 has no overlap and is filtered out
	assert.Equal(t, int64(2), matches[0].ID)
	assert.Equal(t, 3, matches[0].MatchCount)
	assert.Equal(t, int64(1), matches[1].ID)
	assert.Equal(t, int64(3), matches[2].ID)
}

func TestFilterCoursesEmptyQueryReturnsAllUnranked(t *testing.T) {
	courseRepo := new(MockCourseRepo)
	uc := usecase.NewCourseUsecase(courseRepo, new(MockProfileRepo), newValidator())

	courseRepo.On("Fetch", mock.Anything).Return(catalogue(), nil)

	matches, err := uc.FilterCourses(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, matches, 4)
	for i, m := range matches {
		assert.Equal(t, int64(i+1), m.ID)
		assert.Equal(t, 0, m.MatchCount)
	}
}

func TestMarkCompletedCreditsFetchedCourseAndSkills(t *testing.T) {
	courseRepo := new(MockCourseRepo)
	profileRepo := new(MockProfileRepo)
	uc := usecase.NewCourseUsecase(courseRepo, profileRepo, newValidator())

	courseRepo.On("GetByID", mock.Anything, int64(2)).Return(&catalogue()[1], nil)
	profileRepo.On("MarkCourseCompleted", mock.Anything, int64(5), int64(2), []int64{20, 30, 40}).
		Return(nil)

	course, err := uc.MarkCompleted(authedContext(5, domain.UserTypeSeeker), 2)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), course.ID)
	profileRepo.AssertExpectations(t)
}

func TestMarkCompletedIsRepeatable(t *testing.T) {
	courseRepo := new(MockCourseRepo)
	profileRepo := new(MockProfileRepo)
	uc := usecase.NewCourseUsecase(courseRepo, profileRepo, newValidator())

	courseRepo.On("GetByID", mock.Anything, int64(2)).Return(&catalogue()[1], nil)
	profileRepo.On("MarkCourseCompleted", mock.Anything, int64(5), int64(2), []int64{20, 30, 40}).
		Return(nil).Twice()

	_, err := uc.MarkCompleted(authedContext(5, domain.UserTypeSeeker), 2)
	assert.NoError(t, err)
	_, err = uc.MarkCompleted(authedContext(5, domain.UserTypeSeeker), 2)
	assert.NoError(t, err)

	profileRepo.AssertExpectations(t)
}

func TestMarkCompletedUnknownCourse(t *testing.T) {
	courseRepo := new(MockCourseRepo)
	uc := usecase.NewCourseUsecase(courseRepo, new(MockProfileRepo), newValidator())

	courseRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	_, err := uc.MarkCompleted(authedContext(5, domain.UserTypeSeeker), 99)

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestMarkCompletedRequiresAuth(t *testing.T) {
	uc := usecase.NewCourseUsecase(new(MockCourseRepo), new(MockProfileRepo), newValidator())

	_, err := uc.MarkCompleted(context.Background(), 1)

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Code)
}

func TestCatalogueManagementIsAdminOnly(t *testing.T) {
	uc := usecase.NewCourseUsecase(new(MockCourseRepo), new(MockProfileRepo), newValidator())

	t.Run("Should fail for seekers", func(t *testing.T) {
		_, err := uc.CreateCourse(authedContext(1, domain.UserTypeSeeker), domain.CourseInput{Title: "X"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only admins")
	})

	t.Run("Should fail safe with no role", func(t *testing.T) {
		err := uc.DeleteCourse(context.Background(), 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only admins")
	})
}

func TestFilterUsersRanksSeekersByVerifiedSkills(t *testing.T) {
	profileRepo := new(MockProfileRepo)
	uc := usecase.NewSkillUsecase(new(MockSkillRepo), profileRepo, newValidator())

	profileRepo.On("ListSeekerProfiles", mock.Anything).Return([]domain.UserProfile{
		{UserID: 1, Username: "alice"},
		{UserID: 2, Username: "bob"},
	}, nil)
	profileRepo.On("ListSeekerSkillSets", mock.Anything).Return([]domain.SeekerSkillSet{
		{UserID: 1, SkillIDs: []int64{10, 20}},
		{UserID: 2, SkillIDs: nil},
	}, nil)

	matches, err := uc.FilterUsers(context.Background(), []int64{10})

	assert.NoError(t, err)
	// Only the seeker with an overlapping verified skill shows up.
	assert.Len(t, matches, 1)
	assert.Equal(t, "alice", matches[0].Username)
	assert.Equal(t, 1, matches[0].MatchCount)
}

func TestFilterUsersEmptyQueryListsAllSeekers(t *testing.T) {
	profileRepo := new(MockProfileRepo)
	uc := usecase.NewSkillUsecase(new(MockSkillRepo), profileRepo, newValidator())

	profileRepo.On("ListSeekerProfiles", mock.Anything).Return([]domain.UserProfile{
		{UserID: 1, Username: "alice"},
		{UserID: 2, Username: "bob"},
	}, nil)

	matches, err := uc.FilterUsers(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, matches, 2)
	profileRepo.AssertNotCalled(t, "ListSeekerSkillSets", mock.Anything)
}
