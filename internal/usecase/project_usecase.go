package usecase

import (
	"context"
	"strings"

	"portfolio-api/internal/repository"
)

type ProjectUsecase interface {
	ListProjects(ctx context.Context, offset, limit int) ([]repository.Project, error)
	AddProject(ctx context.Context, in repository.NewProject) (repository.Project, error)
}

type ProjectService struct {
	repo repository.ProjectRepository
}

func NewProjectUsecase(repo repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (u *ProjectService) ListProjects(ctx context.Context, offset, limit int) ([]repository.Project, error) {
	offset, limit, err := normalizePage(offset, limit)
	if err != nil {
		return nil, err
	}

	items, err := u.repo.ListProjects(ctx, offset, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *ProjectService) AddProject(ctx context.Context, in repository.NewProject) (repository.Project, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Technologies = strings.TrimSpace(in.Technologies)
	in.GitHubURL = strings.TrimSpace(in.GitHubURL)
	if in.Title == "" || in.Description == "" || in.Technologies == "" {
		return repository.Project{}, ErrInvalidInput
	}

	created, err := u.repo.CreateProject(ctx, in)
	if err != nil {
		return repository.Project{}, ErrInternal
	}
	return created, nil
}
