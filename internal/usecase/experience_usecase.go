package usecase

import (
	"context"
	"strings"

	"portfolio-api/internal/repository"
)

type ExperienceUsecase interface {
	ListExperiences(ctx context.Context, offset, limit int) ([]repository.Experience, error)
	AddExperience(ctx context.Context, in repository.NewExperience) (repository.Experience, error)
}

type ExperienceService struct {
	repo repository.ExperienceRepository
}

func NewExperienceUsecase(repo repository.ExperienceRepository) *ExperienceService {
	return &ExperienceService{repo: repo}
}

func (u *ExperienceService) ListExperiences(ctx context.Context, offset, limit int) ([]repository.Experience, error) {
	offset, limit, err := normalizePage(offset, limit)
	if err != nil {
		return nil, err
	}

	items, err := u.repo.ListExperiences(ctx, offset, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *ExperienceService) AddExperience(ctx context.Context, in repository.NewExperience) (repository.Experience, error) {
	in.Company = strings.TrimSpace(in.Company)
	in.Position = strings.TrimSpace(in.Position)
	in.Duration = strings.TrimSpace(in.Duration)
	in.Description = strings.TrimSpace(in.Description)
	if in.Company == "" || in.Position == "" || in.Duration == "" || in.Description == "" {
		return repository.Experience{}, ErrInvalidInput
	}

	created, err := u.repo.CreateExperience(ctx, in)
	if err != nil {
		return repository.Experience{}, ErrInternal
	}
	return created, nil
}
