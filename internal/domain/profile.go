package domain

import "context"

// UserProfile is the seeker profile. Only UserID and Bio are persisted on
// the profile row; the name/email fields are mirrored from the owning user
// at response time and the course/skill sets live in join tables.
type UserProfile struct {
	UserID int64  `json:"user_id"`
	Bio    string `json:"bio"`

	// Denormalized view fields, not persisted on the profile row.
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`

	CompletedCourses []Course `json:"completed_courses,omitempty"`
	VerifiedSkills   []Skill  `json:"verified_skills,omitempty"`
}

// ProfileMatch annotates a seeker profile with its skill-match count for
// the filtered_user endpoint.
type ProfileMatch struct {
	UserProfile
	MatchCount int `json:"verified_skill_match_count"`
}

// EmployerProfile is the employer-side profile.
type EmployerProfile struct {
	UserID   int64  `json:"user_id"`
	Bio      string `json:"bio"`
	Company  string `json:"company"`
	Website  string `json:"website"`
	Location string `json:"location"`

	// Denormalized view fields.
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
}

// SeekerSkillSet pairs a seeker with the IDs of their verified skills,
// used as matching-engine input.
type SeekerSkillSet struct {
	UserID   int64
	SkillIDs []int64
}

type ProfileRepository interface {
	// GetOrCreate returns the profile row for the user, materializing an
	// empty one on first access.
	GetOrCreate(ctx context.Context, userID int64) (*UserProfile, error)
	UpdateBio(ctx context.Context, userID int64, bio string) error
	GetCompletedCourses(ctx context.Context, userID int64) ([]Course, error)
	GetVerifiedSkills(ctx context.Context, userID int64) ([]Skill, error)
	// MarkCourseCompleted records the completion and credits the course's
	// skills in one transaction. Inserts are ON CONFLICT DO NOTHING, so
	// repeated completion is idempotent.
	MarkCourseCompleted(ctx context.Context, userID, courseID int64, skillIDs []int64) error
	// ListSeekerProfiles returns every seeker's profile with the user's
	// name and email mirrored in, ascending by user ID. Profiles are
	// materialized for seekers who never touched theirs.
	ListSeekerProfiles(ctx context.Context) ([]UserProfile, error)
	// ListSeekerSkillSets returns verified-skill sets for every seeker,
	// in ascending user ID order.
	ListSeekerSkillSets(ctx context.Context) ([]SeekerSkillSet, error)
}

type EmployerProfileRepository interface {
	GetOrCreate(ctx context.Context, userID int64) (*EmployerProfile, error)
	Update(ctx context.Context, profile *EmployerProfile) error
}

type ProfileUsecase interface {
	GetMyProfile(ctx context.Context) (*UserProfile, error)
	UpdateBio(ctx context.Context, bio string) (*UserProfile, error)
	// SetType assigns the seeker or employer role; anything else is a
	// BadRequest.
	SetType(ctx context.Context, userType string) error
	// GetPublicProfile looks up a seeker profile by username. Employers
	// and unknown usernames yield NotFound.
	GetPublicProfile(ctx context.Context, username string) (*UserProfile, error)
}

type EmployerProfileUsecase interface {
	GetMyProfile(ctx context.Context) (*EmployerProfile, error)
	UpdateMyProfile(ctx context.Context, input EmployerProfileInput) (*EmployerProfile, error)
	GetPublicProfile(ctx context.Context, username string) (*EmployerProfile, error)
}

type EmployerProfileInput struct {
	Bio      string `json:"bio" validate:"max=2000"`
	Company  string `json:"company" validate:"max=200"`
	Website  string `json:"website" validate:"omitempty,url"`
	Location string `json:"location" validate:"max=200"`
}
