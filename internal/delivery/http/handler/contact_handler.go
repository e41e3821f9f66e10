package handler

import (
	"time"

	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/validation"

	"github.com/gofiber/fiber/v3"
)

type ContactHandler struct {
	uc usecase.ContactUsecase
}

type createContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type contactResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NewContactHandler(uc usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

func (h *ContactHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/contact")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
}

func (h *ContactHandler) List(c fiber.Ctx) error {
	skip, limit, err := parsePage(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListContactMessages(c.Context(), skip, limit)
	if err != nil {
		return mapListError(err)
	}

	res := make([]contactResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toContactResponse(it))
	}
	return c.JSON(res)
}

// Create persists a contact-form submission. A malformed email is
// rejected here before anything reaches the store.
func (h *ContactHandler) Create(c fiber.Ctx) error {
	var req createContactRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "malformed body", nil, err)
	}
	if fieldErrs := validation.Struct(req); fieldErrs != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "validation failed", fieldErrs, nil)
	}

	created, err := h.uc.AddContactMessage(c.Context(), repository.NewContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return mapCreateError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(toContactResponse(created))
}

func toContactResponse(m repository.ContactMessage) contactResponse {
	return contactResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}
