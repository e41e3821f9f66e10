package handler

import "github.com/gofiber/fiber/v3"

const apiVersion = "1.0.0"

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

func (h *RootHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/", h.Root)
	app.Get("/health", h.Health)
}

// Root is the liveness payload external collaborators poll.
func (h *RootHandler) Root(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Welcome to Portfolio API",
		"version": apiVersion,
	})
}

func (h *RootHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
