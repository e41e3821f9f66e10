package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestRootHandler_Welcome(t *testing.T) {
	app := fiber.New()
	NewRootHandler().RegisterRoutes(app)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]any
	decodeBody(t, resp, &body)
	if body["message"] != "Welcome to Portfolio API" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	if body["version"] != "1.0.0" {
		t.Fatalf("unexpected version: %v", body["version"])
	}
}
