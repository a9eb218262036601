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

func TestGetMyProfileMirrorsUserFields(t *testing.T) {
	userRepo := new(MockUserRepo)
	profileRepo := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(userRepo, profileRepo, new(MockEmployerRepo))

	userRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{
		ID: 1, Username: "alice", FirstName: "Alice", LastName: "Doe",
		Email: "alice@example.com", UserType: domain.UserTypeSeeker,
	}, nil)
	profileRepo.On("GetOrCreate", mock.Anything, int64(1)).
		Return(&domain.UserProfile{UserID: 1, Bio: "hi"}, nil)
	profileRepo.On("GetCompletedCourses", mock.Anything, int64(1)).Return([]domain.Course{}, nil)
	profileRepo.On("GetVerifiedSkills", mock.Anything, int64(1)).Return([]domain.Skill{}, nil)

	profile, err := uc.GetMyProfile(authedContext(1, domain.UserTypeSeeker))

	assert.NoError(t, err)
	assert.Equal(t, "hi", profile.Bio)
	assert.Equal(t, "Alice", profile.FirstName)
	assert.Equal(t, "alice@example.com", profile.Email)
	profileRepo.AssertExpectations(t)
}

func TestGetMyProfileRequiresAuth(t *testing.T) {
	uc := usecase.NewProfileUsecase(new(MockUserRepo), new(MockProfileRepo), new(MockEmployerRepo))

	_, err := uc.GetMyProfile(context.Background())

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Code)
}

func TestSetTypeRejectsInvalidRole(t *testing.T) {
	uc := usecase.NewProfileUsecase(new(MockUserRepo), new(MockProfileRepo), new(MockEmployerRepo))

	err := uc.SetType(authedContext(1, domain.UserTypeSeeker), "wizard")

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestSetTypeEmployerMaterializesEmployerProfile(t *testing.T) {
	userRepo := new(MockUserRepo)
	employerRepo := new(MockEmployerRepo)
	uc := usecase.NewProfileUsecase(userRepo, new(MockProfileRepo), employerRepo)

	userRepo.On("UpdateType", mock.Anything, int64(1), domain.UserTypeEmployer).Return(nil)
	employerRepo.On("GetOrCreate", mock.Anything, int64(1)).
		Return(&domain.EmployerProfile{UserID: 1}, nil)

	err := uc.SetType(authedContext(1, domain.UserTypeSeeker), domain.UserTypeEmployer)

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
	employerRepo.AssertExpectations(t)
}

func TestPublicProfileHidesEmployers(t *testing.T) {
	userRepo := new(MockUserRepo)
	uc := usecase.NewProfileUsecase(userRepo, new(MockProfileRepo), new(MockEmployerRepo))

	userRepo.On("GetByUsername", mock.Anything, "bigcorp").Return(&domain.User{
		ID: 2, Username: "bigcorp", UserType: domain.UserTypeEmployer,
	}, nil)
	userRepo.On("GetByUsername", mock.Anything, "nobody").Return(nil, nil)

	_, employerErr := uc.GetPublicProfile(context.Background(), "bigcorp")
	_, unknownErr := uc.GetPublicProfile(context.Background(), "nobody")

	var appErr *apperror.AppError
	assert.ErrorAs(t, employerErr, &appErr)
	assert.Equal(t, 404, appErr.Code)
	// Indistinguishable from an unknown username.
	assert.Equal(t, employerErr.Error(), unknownErr.Error())
}

func TestPublicProfileReturnsSeeker(t *testing.T) {
	userRepo := new(MockUserRepo)
	profileRepo := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(userRepo, profileRepo, new(MockEmployerRepo))

	userRepo.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{
		ID: 1, Username: "alice", UserType: domain.UserTypeSeeker,
	}, nil)
	profileRepo.On("GetOrCreate", mock.Anything, int64(1)).
		Return(&domain.UserProfile{UserID: 1}, nil)
	profileRepo.On("GetCompletedCourses", mock.Anything, int64(1)).Return([]domain.Course{}, nil)
	profileRepo.On("GetVerifiedSkills", mock.Anything, int64(1)).
		Return([]domain.Skill{{ID: 3, Name: "Go"}}, nil)

	profile, err := uc.GetPublicProfile(context.Background(), "alice")

	assert.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Len(t, profile.VerifiedSkills, 1)
}

func TestEmployerPublicProfileHidesSeekers(t *testing.T) {
	userRepo := new(MockUserRepo)
	uc := usecase.NewEmployerProfileUsecase(userRepo, new(MockEmployerRepo), newValidator())

	userRepo.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{
		ID: 1, Username: "alice", UserType: domain.UserTypeSeeker,
	}, nil)

	_, err := uc.GetPublicProfile(context.Background(), "alice")

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestEmployerUpdateValidatesWebsite(t *testing.T) {
	uc := usecase.NewEmployerProfileUsecase(new(MockUserRepo), new(MockEmployerRepo), newValidator())

	_, err := uc.UpdateMyProfile(authedContext(2, domain.UserTypeEmployer), domain.EmployerProfileInput{
		Company: "BigCorp",
		Website: "not a url",
	})

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}
