package usecase

import (
	"context"
	"time"

	"go-skillmatch-backend/internal/domain"
	"go-skillmatch-backend/pkg/apperror"
	"go-skillmatch-backend/pkg/token"
	"go-skillmatch-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo    domain.UserRepository
	tokenRepo   domain.TokenRepository
	profileRepo domain.ProfileRepository
	validate    *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, tokenRepo domain.TokenRepository, profileRepo domain.ProfileRepository, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		profileRepo: profileRepo,
		validate:    validate,
	}
}

func (u *authUsecase) Signup(ctx context.Context, input domain.SignupInput) (string, error) {
	if err := u.validate.Struct(input); err != nil {
		return "", apperror.BadRequest(validation.Summarize(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperror.Internal(err)
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hash),
		UserType:     domain.UserTypeSeeker,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	// The repo maps unique-index violations on username/email to Conflict.
	if err := u.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	// Materialize the seeker profile at the creation call site instead of
	// waiting for the first profile read.
	if _, err := u.profileRepo.GetOrCreate(ctx, user.ID); err != nil {
		return "", err
	}

	return u.issueToken(ctx, user.ID)
}

func (u *authUsecase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", apperror.Internal(err)
	}

	// Same outcome for unknown user and wrong password.
	if user == nil {
		return "", apperror.Unauthorized("Wrong credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperror.Unauthorized("Wrong credentials")
	}

	return u.issueToken(ctx, user.ID)
}

func (u *authUsecase) Authenticate(ctx context.Context, key string) (*domain.User, error) {
	user, err := u.tokenRepo.GetUserByKey(ctx, key)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.Unauthorized("Invalid token")
	}
	return user, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

// issueToken replaces the user's token key, invalidating any prior session.
func (u *authUsecase) issueToken(ctx context.Context, userID int64) (string, error) {
	key, err := token.NewKey()
	if err != nil {
		return "", apperror.Internal(err)
	}
	if err := u.tokenRepo.Replace(ctx, userID, key); err != nil {
		return "", apperror.Internal(err)
	}
	return key, nil
}
