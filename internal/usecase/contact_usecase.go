package usecase

import (
	"context"
	"strings"

	"portfolio-api/internal/repository"
)

type ContactUsecase interface {
	ListContactMessages(ctx context.Context, offset, limit int) ([]repository.ContactMessage, error)
	AddContactMessage(ctx context.Context, in repository.NewContactMessage) (repository.ContactMessage, error)
}

type ContactService struct {
	repo repository.ContactMessageRepository
}

func NewContactUsecase(repo repository.ContactMessageRepository) *ContactService {
	return &ContactService{repo: repo}
}

func (u *ContactService) ListContactMessages(ctx context.Context, offset, limit int) ([]repository.ContactMessage, error) {
	offset, limit, err := normalizePage(offset, limit)
	if err != nil {
		return nil, err
	}

	items, err := u.repo.ListContactMessages(ctx, offset, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// AddContactMessage persists a message. Email syntax is checked at the
// request boundary; this layer only guards the non-empty invariants.
func (u *ContactService) AddContactMessage(ctx context.Context, in repository.NewContactMessage) (repository.ContactMessage, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)
	if in.Name == "" || in.Email == "" || in.Message == "" {
		return repository.ContactMessage{}, ErrInvalidInput
	}

	created, err := u.repo.CreateContactMessage(ctx, in)
	if err != nil {
		return repository.ContactMessage{}, ErrInternal
	}
	return created, nil
}
