package usecase

import (
	"context"

	"go-skillmatch-backend/internal/domain"
	"go-skillmatch-backend/internal/matching"
	"go-skillmatch-backend/pkg/apperror"
	"go-skillmatch-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type skillUsecase struct {
	skillRepo   domain.SkillRepository
	profileRepo domain.ProfileRepository
	validate    *validator.Validate
}

func NewSkillUsecase(skillRepo domain.SkillRepository, profileRepo domain.ProfileRepository, validate *validator.Validate) domain.SkillUsecase {
	return &skillUsecase{
		skillRepo:   skillRepo,
		profileRepo: profileRepo,
		validate:    validate,
	}
}

func (u *skillUsecase) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	skills, err := u.skillRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return skills, nil
}

func (u *skillUsecase) FilterUsers(ctx context.Context, skillIDs []int64) ([]domain.ProfileMatch, error) {
	profiles, err := u.profileRepo.ListSeekerProfiles(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if len(skillIDs) == 0 {
		matches := make([]domain.ProfileMatch, 0, len(profiles))
		for _, profile := range profiles {
			matches = append(matches, domain.ProfileMatch{UserProfile: profile})
		}
		return matches, nil
	}

	sets, err := u.profileRepo.ListSeekerSkillSets(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	byID := make(map[int64]domain.UserProfile, len(profiles))
	for _, profile := range profiles {
		byID[profile.UserID] = profile
	}
	entities := make([]matching.Entity, 0, len(sets))
	for _, set := range sets {
		entities = append(entities, matching.Entity{ID: set.UserID, SkillIDs: set.SkillIDs})
	}

	ranked := matching.Rank(entities, skillIDs)
	matches := make([]domain.ProfileMatch, 0, len(ranked))
	for _, m := range ranked {
		profile, ok := byID[m.ID]
		if !ok {
			continue
		}
		matches = append(matches, domain.ProfileMatch{UserProfile: profile, MatchCount: m.Count})
	}
	return matches, nil
}

func (u *skillUsecase) CreateSkill(ctx context.Context, input domain.SkillInput) (*domain.Skill, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(validation.Summarize(err))
	}

	skill := &domain.Skill{Name: input.Name, Description: input.Description}
	if err := u.skillRepo.Create(ctx, skill); err != nil {
		return nil, apperror.Internal(err)
	}
	return skill, nil
}
