package usecase_test

import (
	"context"
	"testing"

	"go-skillmatch-backend/internal/domain"
	"go-skillmatch-backend/internal/usecase"
	"go-skillmatch-backend/pkg/apperror"
	"go-skillmatch-backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUC(userRepo *MockUserRepo, tokenRepo *MockTokenRepo, profileRepo *MockProfileRepo) domain.AuthUsecase {
	return usecase.NewAuthUsecase(userRepo, tokenRepo, profileRepo, newValidator())
}

func TestSignupIssuesToken(t *testing.T) {
	userRepo := new(MockUserRepo)
	tokenRepo := new(MockTokenRepo)
	profileRepo := new(MockProfileRepo)
	uc := newAuthUC(userRepo, tokenRepo, profileRepo)

	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 7
		}).Return(nil)
	profileRepo.On("GetOrCreate", mock.Anything, int64(7)).Return(&domain.UserProfile{UserID: 7}, nil)
	tokenRepo.On("Replace", mock.Anything, int64(7), mock.AnythingOfType("string")).Return(nil)

	key, err := uc.Signup(context.Background(), domain.SignupInput{
		Username: "alice", Password: "secret1", Email: "alice@example.com",
	})

	assert.NoError(t, err)
	assert.Len(t, key, token.KeyLength)
	userRepo.AssertExpectations(t)
	profileRepo.AssertExpectations(t)
	tokenRepo.AssertExpectations(t)
}

func TestSignupNewUsersAreSeekers(t *testing.T) {
	userRepo := new(MockUserRepo)
	tokenRepo := new(MockTokenRepo)
	profileRepo := new(MockProfileRepo)
	uc := newAuthUC(userRepo, tokenRepo, profileRepo)

	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.UserType == domain.UserTypeSeeker && u.PasswordHash != "secret1"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = 1
	}).Return(nil)
	profileRepo.On("GetOrCreate", mock.Anything, int64(1)).Return(&domain.UserProfile{UserID: 1}, nil)
	tokenRepo.On("Replace", mock.Anything, int64(1), mock.Anything).Return(nil)

	_, err := uc.Signup(context.Background(), domain.SignupInput{
		Username: "bob", Password: "secret1", Email: "bob@example.com",
	})
	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestSignupRejectsInvalidInput(t *testing.T) {
	uc := newAuthUC(new(MockUserRepo), new(MockTokenRepo), new(MockProfileRepo))

	_, err := uc.Signup(context.Background(), domain.SignupInput{
		Username: "x", Password: "short", Email: "not-an-email",
	})

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestSignupValidatesNameFields(t *testing.T) {
	userRepo := new(MockUserRepo)
	tokenRepo := new(MockTokenRepo)
	profileRepo := new(MockProfileRepo)
	uc := newAuthUC(userRepo, tokenRepo, profileRepo)

	// The name tags need their validators registered; a name with an emoji
	// must come back as a 400, not blow up inside the validator.
	_, err := uc.Signup(context.Background(), domain.SignupInput{
		Username: "carol", Password: "secret1", Email: "carol@example.com",
		FirstName: "Carol \U0001F600",
	})

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)

	// A plain name passes the same tags.
	userRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 9
		}).Return(nil)
	profileRepo.On("GetOrCreate", mock.Anything, int64(9)).Return(&domain.UserProfile{UserID: 9}, nil)
	tokenRepo.On("Replace", mock.Anything, int64(9), mock.Anything).Return(nil)

	_, err = uc.Signup(context.Background(), domain.SignupInput{
		Username: "carol", Password: "secret1", Email: "carol@example.com",
		FirstName: "Carol", LastName: "O'Brien",
	})
	assert.NoError(t, err)
}

func TestSignupPropagatesConflict(t *testing.T) {
	userRepo := new(MockUserRepo)
	uc := newAuthUC(userRepo, new(MockTokenRepo), new(MockProfileRepo))

	userRepo.On("Create", mock.Anything, mock.Anything).
		Return(apperror.Conflict("Username already exists"))

	_, err := uc.Signup(context.Background(), domain.SignupInput{
		Username: "alice", Password: "secret1", Email: "alice@example.com",
	})

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
}

func TestLoginDoesNotDiscloseWhichCredentialIsWrong(t *testing.T) {
	userRepo := new(MockUserRepo)
	tokenRepo := new(MockTokenRepo)
	uc := newAuthUC(userRepo, tokenRepo, new(MockProfileRepo))

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	userRepo.On("GetByUsername", mock.Anything, "alice").
		Return(&domain.User{ID: 1, Username: "alice", PasswordHash: string(hash)}, nil)
	userRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, nil)

	_, wrongPass := uc.Login(context.Background(), "alice", "wrong")
	_, unknownUser := uc.Login(context.Background(), "ghost", "whatever")

	assert.Error(t, wrongPass)
	assert.Error(t, unknownUser)
	assert.Equal(t, wrongPass.Error(), unknownUser.Error())
	tokenRepo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginRegeneratesTokenKey(t *testing.T) {
	userRepo := new(MockUserRepo)
	tokenRepo := new(MockTokenRepo)
	uc := newAuthUC(userRepo, tokenRepo, new(MockProfileRepo))

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	userRepo.On("GetByUsername", mock.Anything, "alice").
		Return(&domain.User{ID: 1, Username: "alice", PasswordHash: string(hash)}, nil)

	var keys []string
	tokenRepo.On("Replace", mock.Anything, int64(1), mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			keys = append(keys, args.String(2))
		}).Return(nil)

	first, err := uc.Login(context.Background(), "alice", "correct")
	assert.NoError(t, err)
	second, err := uc.Login(context.Background(), "alice", "correct")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, []string{first, second}, keys)
}

func TestAuthenticateUnknownKey(t *testing.T) {
	tokenRepo := new(MockTokenRepo)
	uc := newAuthUC(new(MockUserRepo), tokenRepo, new(MockProfileRepo))

	tokenRepo.On("GetUserByKey", mock.Anything, "deadbeef").Return(nil, nil)

	_, err := uc.Authenticate(context.Background(), "deadbeef")

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Code)
}

func TestAuthenticateResolvesUser(t *testing.T) {
	tokenRepo := new(MockTokenRepo)
	uc := newAuthUC(new(MockUserRepo), tokenRepo, new(MockProfileRepo))

	tokenRepo.On("GetUserByKey", mock.Anything, "cafebabe").
		Return(&domain.User{ID: 42, Username: "alice"}, nil)

	user, err := uc.Authenticate(context.Background(), "cafebabe")

	assert.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
}
