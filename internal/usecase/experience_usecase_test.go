package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio-api/internal/repository"
)

type mockExperienceRepo struct {
	created []repository.NewExperience
	items   []repository.Experience
	err     error
}

func (m *mockExperienceRepo) CreateExperience(_ context.Context, in repository.NewExperience) (repository.Experience, error) {
	if m.err != nil {
		return repository.Experience{}, m.err
	}
	m.created = append(m.created, in)
	return repository.Experience{
		ID:          int64(len(m.created)),
		Company:     in.Company,
		Position:    in.Position,
		Duration:    in.Duration,
		Description: in.Description,
		IsCurrent:   in.IsCurrent,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

func (m *mockExperienceRepo) ListExperiences(_ context.Context, _, _ int) ([]repository.Experience, error) {
	return m.items, m.err
}

func TestExperienceUsecase_AddExperience_MissingCompany(t *testing.T) {
	repo := &mockExperienceRepo{}
	uc := NewExperienceUsecase(repo)

	_, err := uc.AddExperience(context.Background(), repository.NewExperience{
		Position:    "Engineer",
		Duration:    "2020 - 2022",
		Description: "built things",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("no row should be written on validation failure")
	}
}

func TestExperienceUsecase_AddExperience_TrimsFields(t *testing.T) {
	repo := &mockExperienceRepo{}
	uc := NewExperienceUsecase(repo)

	created, err := uc.AddExperience(context.Background(), repository.NewExperience{
		Company:     "  Acme  ",
		Position:    "Engineer",
		Duration:    "2020 - 2022",
		Description: "built things",
		IsCurrent:   true,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Company != "Acme" {
		t.Fatalf("expected trimmed company, got %q", created.Company)
	}
	if !created.IsCurrent {
		t.Fatalf("is_current not preserved")
	}
}

func TestExperienceUsecase_ListExperiences_LimitTooLarge(t *testing.T) {
	uc := NewExperienceUsecase(&mockExperienceRepo{})

	_, err := uc.ListExperiences(context.Background(), 0, 501)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
