package domain

import "context"

type Skill struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type SkillRepository interface {
	// Fetch returns all skills in ascending ID order.
	Fetch(ctx context.Context) ([]Skill, error)
	Create(ctx context.Context, skill *Skill) error
}

type SkillInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]Skill, error)
	// FilterUsers ranks seeker profiles by overlap between their verified
	// skills and the query skill set. An empty query returns all seeker
	// profiles unranked.
	FilterUsers(ctx context.Context, skillIDs []int64) ([]ProfileMatch, error)
	CreateSkill(ctx context.Context, input SkillInput) (*Skill, error)
}
