package usecase

import (
	"context"
	"strings"

	"portfolio-api/internal/repository"
)

type EducationUsecase interface {
	ListEducation(ctx context.Context, offset, limit int) ([]repository.Education, error)
	AddEducation(ctx context.Context, in repository.NewEducation) (repository.Education, error)
}

type EducationService struct {
	repo repository.EducationRepository
}

func NewEducationUsecase(repo repository.EducationRepository) *EducationService {
	return &EducationService{repo: repo}
}

func (u *EducationService) ListEducation(ctx context.Context, offset, limit int) ([]repository.Education, error) {
	offset, limit, err := normalizePage(offset, limit)
	if err != nil {
		return nil, err
	}

	items, err := u.repo.ListEducation(ctx, offset, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *EducationService) AddEducation(ctx context.Context, in repository.NewEducation) (repository.Education, error) {
	in.Institution = strings.TrimSpace(in.Institution)
	in.Degree = strings.TrimSpace(in.Degree)
	in.FieldOfStudy = strings.TrimSpace(in.FieldOfStudy)
	in.GPA = strings.TrimSpace(in.GPA)
	in.GraduationDate = strings.TrimSpace(in.GraduationDate)
	in.Location = strings.TrimSpace(in.Location)
	if in.Institution == "" || in.Degree == "" || in.FieldOfStudy == "" ||
		in.GPA == "" || in.GraduationDate == "" || in.Location == "" {
		return repository.Education{}, ErrInvalidInput
	}

	created, err := u.repo.CreateEducation(ctx, in)
	if err != nil {
		return repository.Education{}, ErrInternal
	}
	return created, nil
}
