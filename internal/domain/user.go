package domain

import (
	"context"
	"time"
)

// User roles. Everyone starts as a seeker; the settype endpoint switches
// between seeker and employer. Admin is only assigned out of band.
const (
	UserTypeSeeker   = "seeker"
	UserTypeEmployer = "employer"
	UserTypeAdmin    = "admin"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	UserType     string    `json:"user_type"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AuthToken is an opaque bearer token. One row per user; the key is
// replaced on every signup and login, so only the latest key is valid.
type AuthToken struct {
	UserID    int64     `json:"user_id"`
	Key       string    `json:"key"`
	CreatedAt time.Time `json:"created_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	UpdateType(ctx context.Context, id int64, userType string) error
}

type TokenRepository interface {
	// Replace upserts the user's token row with a fresh key, invalidating
	// any previously issued key.
	Replace(ctx context.Context, userID int64, key string) error
	// GetUserByKey resolves a bearer key to its owner. Returns (nil, nil)
	// when the key is unknown.
	GetUserByKey(ctx context.Context, key string) (*User, error)
}

type SignupInput struct {
	Username  string `json:"username" validate:"required,min=3,max=150"`
	Password  string `json:"password" validate:"required,min=6"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"max=150,valid_name,no_emoji"`
	LastName  string `json:"last_name" validate:"max=150,valid_name,no_emoji"`
}

type AuthUsecase interface {
	Signup(ctx context.Context, input SignupInput) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	// Authenticate maps a bearer key to the authenticated user.
	Authenticate(ctx context.Context, key string) (*User, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}
