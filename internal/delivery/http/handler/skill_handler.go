package handler

import (
	"time"

	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/validation"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

// Proficiency is a pointer so a present-but-zero value is distinguishable
// from an omitted field.
type createSkillRequest struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Proficiency *int   `json:"proficiency" validate:"required"`
}

type skillResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Proficiency int       `json:"proficiency"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	skip, limit, err := parsePage(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListSkills(c.Context(), skip, limit)
	if err != nil {
		return mapListError(err)
	}

	res := make([]skillResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toSkillResponse(it))
	}
	return c.JSON(res)
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	var req createSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "malformed body", nil, err)
	}
	if fieldErrs := validation.Struct(req); fieldErrs != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "validation failed", fieldErrs, nil)
	}

	created, err := h.uc.AddSkill(c.Context(), repository.NewSkill{
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: *req.Proficiency,
	})
	if err != nil {
		return mapCreateError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(toSkillResponse(created))
}

func toSkillResponse(s repository.Skill) skillResponse {
	return skillResponse{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Proficiency: s.Proficiency,
		CreatedAt:   s.CreatedAt,
	}
}
