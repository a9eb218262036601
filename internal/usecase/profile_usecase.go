package usecase

import (
	"context"

	"go-skillmatch-backend/internal/domain"
	"go-skillmatch-backend/pkg/apperror"
)

type profileUsecase struct {
	userRepo     domain.UserRepository
	profileRepo  domain.ProfileRepository
	employerRepo domain.EmployerProfileRepository
}

func NewProfileUsecase(userRepo domain.UserRepository, profileRepo domain.ProfileRepository, employerRepo domain.EmployerProfileRepository) domain.ProfileUsecase {
	return &profileUsecase{
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		employerRepo: employerRepo,
	}
}

func (u *profileUsecase) GetMyProfile(ctx context.Context) (*domain.UserProfile, error) {
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

func (u *profileUsecase) UpdateBio(ctx context.Context, bio string) (*domain.UserProfile, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	// Ensure the row exists before mutating it.
	if _, err := u.profileRepo.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}
	if err := u.profileRepo.UpdateBio(ctx, userID, bio); err != nil {
		return nil, apperror.Internal(err)
	}

	return u.GetMyProfile(ctx)
}

func (u *profileUsecase) SetType(ctx context.Context, userType string) error {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return apperror.Unauthorized("User not authenticated")
	}

	if userType != domain.UserTypeSeeker && userType != domain.UserTypeEmployer {
		return apperror.BadRequest("Invalid user type")
	}

	if err := u.userRepo.UpdateType(ctx, userID, userType); err != nil {
		return apperror.Internal(err)
	}

	// Materialize the matching profile here, at the role-assignment call
	// site, rather than implicitly on save.
	switch userType {
	case domain.UserTypeSeeker:
		_, err := u.profileRepo.GetOrCreate(ctx, userID)
		return err
	case domain.UserTypeEmployer:
		_, err := u.employerRepo.GetOrCreate(ctx, userID)
		return err
	}
	return nil
}

func (u *profileUsecase) GetPublicProfile(ctx context.Context, username string) (*domain.UserProfile, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	// Employers and unknown usernames look the same from the outside.
	if user == nil || user.UserType != domain.UserTypeSeeker {
		return nil, apperror.NotFound("Profile not found")
	}

	return u.composeView(ctx, user)
}

// composeView materializes the profile row if needed and mirrors the user's
// name and email onto the response. The mirrored fields are never persisted
// on the profile.
func (u *profileUsecase) composeView(ctx context.Context, user *domain.User) (*domain.UserProfile, error) {
	profile, err := u.profileRepo.GetOrCreate(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	profile.Username = user.Username
	profile.FirstName = user.FirstName
	profile.LastName = user.LastName
	profile.Email = user.Email

	if profile.CompletedCourses, err = u.profileRepo.GetCompletedCourses(ctx, user.ID); err != nil {
		return nil, apperror.Internal(err)
	}
	if profile.VerifiedSkills, err = u.profileRepo.GetVerifiedSkills(ctx, user.ID); err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}
