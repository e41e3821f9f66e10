package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio-api/internal/repository"
)

type mockContactRepo struct {
	created []repository.NewContactMessage
	items   []repository.ContactMessage
	err     error

	gotOffset int
	gotLimit  int
}

func (m *mockContactRepo) CreateContactMessage(_ context.Context, in repository.NewContactMessage) (repository.ContactMessage, error) {
	if m.err != nil {
		return repository.ContactMessage{}, m.err
	}
	m.created = append(m.created, in)
	return repository.ContactMessage{
		ID:        int64(len(m.created)),
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (m *mockContactRepo) ListContactMessages(_ context.Context, offset, limit int) ([]repository.ContactMessage, error) {
	m.gotOffset = offset
	m.gotLimit = limit
	return m.items, m.err
}

func TestContactUsecase_AddContactMessage_Success(t *testing.T) {
	repo := &mockContactRepo{}
	uc := NewContactUsecase(repo)

	created, err := uc.AddContactMessage(context.Background(), repository.NewContactMessage{
		Name:    "Jo",
		Email:   "jo@example.com",
		Message: "hi",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected assigned timestamp")
	}
	if created.Name != "Jo" || created.Email != "jo@example.com" || created.Message != "hi" {
		t.Fatalf("fields not preserved: %+v", created)
	}
}

func TestContactUsecase_AddContactMessage_MissingName(t *testing.T) {
	repo := &mockContactRepo{}
	uc := NewContactUsecase(repo)

	_, err := uc.AddContactMessage(context.Background(), repository.NewContactMessage{
		Name:    "   ",
		Email:   "jo@example.com",
		Message: "hi",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("no row should be written on validation failure")
	}
}

func TestContactUsecase_ListContactMessages_DefaultLimit(t *testing.T) {
	repo := &mockContactRepo{}
	uc := NewContactUsecase(repo)

	if _, err := uc.ListContactMessages(context.Background(), 0, 0); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.gotLimit != 100 {
		t.Fatalf("expected default limit 100, got %d", repo.gotLimit)
	}
	if repo.gotOffset != 0 {
		t.Fatalf("expected offset 0, got %d", repo.gotOffset)
	}
}

func TestContactUsecase_ListContactMessages_NegativeOffset(t *testing.T) {
	uc := NewContactUsecase(&mockContactRepo{})

	_, err := uc.ListContactMessages(context.Background(), -1, 10)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestContactUsecase_ListContactMessages_EmptyStore(t *testing.T) {
	uc := NewContactUsecase(&mockContactRepo{items: []repository.ContactMessage{}})

	items, err := uc.ListContactMessages(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d items", len(items))
	}
}

func TestContactUsecase_ListContactMessages_StoreFailure(t *testing.T) {
	uc := NewContactUsecase(&mockContactRepo{err: errors.New("connection refused")})

	_, err := uc.ListContactMessages(context.Background(), 0, 10)
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
