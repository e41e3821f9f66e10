package handler

import (
	"time"

	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/validation"

	"github.com/gofiber/fiber/v3"
)

type EducationHandler struct {
	uc usecase.EducationUsecase
}

type createEducationRequest struct {
	Institution    string `json:"institution" validate:"required"`
	Degree         string `json:"degree" validate:"required"`
	FieldOfStudy   string `json:"field_of_study" validate:"required"`
	GPA            string `json:"gpa" validate:"required"`
	GraduationDate string `json:"graduation_date" validate:"required"`
	Location       string `json:"location" validate:"required"`
}

type educationResponse struct {
	ID             int64     `json:"id"`
	Institution    string    `json:"institution"`
	Degree         string    `json:"degree"`
	FieldOfStudy   string    `json:"field_of_study"`
	GPA            string    `json:"gpa"`
	GraduationDate string    `json:"graduation_date"`
	Location       string    `json:"location"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewEducationHandler(uc usecase.EducationUsecase) *EducationHandler {
	return &EducationHandler{uc: uc}
}

func (h *EducationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/education")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
}

func (h *EducationHandler) List(c fiber.Ctx) error {
	skip, limit, err := parsePage(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListEducation(c.Context(), skip, limit)
	if err != nil {
		return mapListError(err)
	}

	res := make([]educationResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toEducationResponse(it))
	}
	return c.JSON(res)
}

func (h *EducationHandler) Create(c fiber.Ctx) error {
	var req createEducationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "malformed body", nil, err)
	}
	if fieldErrs := validation.Struct(req); fieldErrs != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "validation failed", fieldErrs, nil)
	}

	created, err := h.uc.AddEducation(c.Context(), repository.NewEducation{
		Institution:    req.Institution,
		Degree:         req.Degree,
		FieldOfStudy:   req.FieldOfStudy,
		GPA:            req.GPA,
		GraduationDate: req.GraduationDate,
		Location:       req.Location,
	})
	if err != nil {
		return mapCreateError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(toEducationResponse(created))
}

func toEducationResponse(e repository.Education) educationResponse {
	return educationResponse{
		ID:             e.ID,
		Institution:    e.Institution,
		Degree:         e.Degree,
		FieldOfStudy:   e.FieldOfStudy,
		GPA:            e.GPA,
		GraduationDate: e.GraduationDate,
		Location:       e.Location,
		CreatedAt:      e.CreatedAt,
	}
}
