package handler

import (
	"time"

	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/validation"

	"github.com/gofiber/fiber/v3"
)

type ExperienceHandler struct {
	uc usecase.ExperienceUsecase
}

type createExperienceRequest struct {
	Company     string `json:"company" validate:"required"`
	Position    string `json:"position" validate:"required"`
	Duration    string `json:"duration" validate:"required"`
	Description string `json:"description" validate:"required"`
	IsCurrent   bool   `json:"is_current"`
}

type experienceResponse struct {
	ID          int64     `json:"id"`
	Company     string    `json:"company"`
	Position    string    `json:"position"`
	Duration    string    `json:"duration"`
	Description string    `json:"description"`
	IsCurrent   bool      `json:"is_current"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewExperienceHandler(uc usecase.ExperienceUsecase) *ExperienceHandler {
	return &ExperienceHandler{uc: uc}
}

func (h *ExperienceHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/experiences")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
}

func (h *ExperienceHandler) List(c fiber.Ctx) error {
	skip, limit, err := parsePage(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListExperiences(c.Context(), skip, limit)
	if err != nil {
		return mapListError(err)
	}

	res := make([]experienceResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toExperienceResponse(it))
	}
	return c.JSON(res)
}

func (h *ExperienceHandler) Create(c fiber.Ctx) error {
	var req createExperienceRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "malformed body", nil, err)
	}
	if fieldErrs := validation.Struct(req); fieldErrs != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "validation failed", fieldErrs, nil)
	}

	created, err := h.uc.AddExperience(c.Context(), repository.NewExperience{
		Company:     req.Company,
		Position:    req.Position,
		Duration:    req.Duration,
		Description: req.Description,
		IsCurrent:   req.IsCurrent,
	})
	if err != nil {
		return mapCreateError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(toExperienceResponse(created))
}

func toExperienceResponse(e repository.Experience) experienceResponse {
	return experienceResponse{
		ID:          e.ID,
		Company:     e.Company,
		Position:    e.Position,
		Duration:    e.Duration,
		Description: e.Description,
		IsCurrent:   e.IsCurrent,
		CreatedAt:   e.CreatedAt,
	}
}
