package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

type mockContactUsecase struct {
	stored []repository.ContactMessage
	err    error
}

func (m *mockContactUsecase) ListContactMessages(_ context.Context, offset, limit int) ([]repository.ContactMessage, error) {
	if m.err != nil {
		return nil, m.err
	}
	if offset >= len(m.stored) {
		return []repository.ContactMessage{}, nil
	}
	end := offset + limit
	if end > len(m.stored) {
		end = len(m.stored)
	}
	return m.stored[offset:end], nil
}

func (m *mockContactUsecase) AddContactMessage(_ context.Context, in repository.NewContactMessage) (repository.ContactMessage, error) {
	if m.err != nil {
		return repository.ContactMessage{}, m.err
	}
	rec := repository.ContactMessage{
		ID:        int64(len(m.stored) + 1),
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}
	m.stored = append([]repository.ContactMessage{rec}, m.stored...)
	return rec, nil
}

func newContactTestApp(uc usecase.ContactUsecase) *fiber.App {
	f := fiber.New()
	f.Use(middleware.NewErrorMiddleware(zerolog.Nop()).Middleware())
	NewContactHandler(uc).RegisterRoutes(f.Group("/api"))
	return f
}

func TestContactHandler_CreateThenList(t *testing.T) {
	uc := &mockContactUsecase{}
	app := newContactTestApp(uc)

	body := `{"name":"Jo","email":"jo@example.com","message":"hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var created map[string]any
	decodeBody(t, resp, &created)
	if created["id"].(float64) != 1 {
		t.Fatalf("expected id=1, got %v", created["id"])
	}
	if created["name"] != "Jo" || created["email"] != "jo@example.com" || created["message"] != "hi" {
		t.Fatalf("fields not preserved: %v", created)
	}
	if created["created_at"] == "" || created["created_at"] == nil {
		t.Fatalf("expected a timestamp, got %v", created["created_at"])
	}

	listReq := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	listResp, err := app.Test(listReq)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if listResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", listResp.StatusCode)
	}

	var list []map[string]any
	decodeBody(t, listResp, &list)
	if len(list) != 1 {
		t.Fatalf("expected one message, got %d", len(list))
	}
	if list[0]["name"] != "Jo" {
		t.Fatalf("unexpected listing: %v", list)
	}
}

func TestContactHandler_Create_MalformedEmail(t *testing.T) {
	uc := &mockContactUsecase{}
	app := newContactTestApp(uc)

	body := `{"name":"Jo","email":"not-an-email","message":"hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
	if len(uc.stored) != 0 {
		t.Fatalf("no row should be stored on validation failure")
	}

	var errBody map[string]any
	decodeBody(t, resp, &errBody)
	if errBody["message"] != "validation failed" {
		t.Fatalf("unexpected error body: %v", errBody)
	}
}

func TestContactHandler_List_Empty(t *testing.T) {
	app := newContactTestApp(&mockContactUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var list []map[string]any
	decodeBody(t, resp, &list)
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %v", list)
	}
}

func TestContactHandler_List_BadLimit(t *testing.T) {
	app := newContactTestApp(&mockContactUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/contact?limit=abc", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatalf("json.Unmarshal %q: %v", string(b), err)
	}
}
