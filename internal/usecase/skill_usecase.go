package usecase

import (
	"context"
	"strings"

	"portfolio-api/internal/repository"
)

type SkillUsecase interface {
	ListSkills(ctx context.Context, offset, limit int) ([]repository.Skill, error)
	AddSkill(ctx context.Context, in repository.NewSkill) (repository.Skill, error)
}

type SkillService struct {
	repo repository.SkillRepository
}

func NewSkillUsecase(repo repository.SkillRepository) *SkillService {
	return &SkillService{repo: repo}
}

func (u *SkillService) ListSkills(ctx context.Context, offset, limit int) ([]repository.Skill, error) {
	offset, limit, err := normalizePage(offset, limit)
	if err != nil {
		return nil, err
	}

	items, err := u.repo.ListSkills(ctx, offset, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// AddSkill stores the skill as given. Proficiency is deliberately not
// range-checked; 0-100 is a convention, not a rule.
func (u *SkillService) AddSkill(ctx context.Context, in repository.NewSkill) (repository.Skill, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	if in.Name == "" || in.Category == "" {
		return repository.Skill{}, ErrInvalidInput
	}

	created, err := u.repo.CreateSkill(ctx, in)
	if err != nil {
		return repository.Skill{}, ErrInternal
	}
	return created, nil
}
