package usecase

import (
	"context"

	"go-skillmatch-backend/internal/domain"
	"go-skillmatch-backend/pkg/apperror"
	"go-skillmatch-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type employerProfileUsecase struct {
	userRepo     domain.UserRepository
	employerRepo domain.EmployerProfileRepository
	validate     *validator.Validate
}

func NewEmployerProfileUsecase(userRepo domain.UserRepository, employerRepo domain.EmployerProfileRepository, validate *validator.Validate) domain.EmployerProfileUsecase {
	return &employerProfileUsecase{
		userRepo:     userRepo,
		employerRepo: employerRepo,
		validate:     validate,
	}
}

func (u *employerProfileUsecase) GetMyProfile(ctx context.Context) (*domain.EmployerProfile, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	return u.composeView(ctx, user)
}

func (u *employerProfileUsecase) UpdateMyProfile(ctx context.Context, input domain.EmployerProfileInput) (*domain.EmployerProfile, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(validation.Summarize(err))
	}

	profile, err := u.employerRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Bio = input.Bio
	profile.Company = input.Company
	profile.Website = input.Website
	profile.Location = input.Location
	if err := u.employerRepo.Update(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}

	return u.GetMyProfile(ctx)
}

func (u *employerProfileUsecase) GetPublicProfile(ctx context.Context, username string) (*domain.EmployerProfile, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil || user.UserType != domain.UserTypeEmployer {
		return nil, apperror.NotFound("Employer profile not found")
	}

	return u.composeView(ctx, user)
}

func (u *employerProfileUsecase) composeView(ctx context.Context, user *domain.User) (*domain.EmployerProfile, error) {
	profile, err := u.employerRepo.GetOrCreate(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	profile.Username = user.Username
	profile.FirstName = user.FirstName
	profile.LastName = user.LastName
	profile.Email = user.Email
	return profile, nil
}
