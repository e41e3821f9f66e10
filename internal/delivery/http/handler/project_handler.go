package handler

import (
	"time"

	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/validation"

	"github.com/gofiber/fiber/v3"
)

type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

type createProjectRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Technologies string `json:"technologies" validate:"required"`
	GitHubURL    string `json:"github_url"`
}

type projectResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies string    `json:"technologies"`
	GitHubURL    string    `json:"github_url"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

func (h *ProjectHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/projects")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
}

func (h *ProjectHandler) List(c fiber.Ctx) error {
	skip, limit, err := parsePage(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListProjects(c.Context(), skip, limit)
	if err != nil {
		return mapListError(err)
	}

	res := make([]projectResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toProjectResponse(it))
	}
	return c.JSON(res)
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	var req createProjectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "malformed body", nil, err)
	}
	if fieldErrs := validation.Struct(req); fieldErrs != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "validation failed", fieldErrs, nil)
	}

	created, err := h.uc.AddProject(c.Context(), repository.NewProject{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		GitHubURL:    req.GitHubURL,
	})
	if err != nil {
		return mapCreateError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(toProjectResponse(created))
}

func toProjectResponse(p repository.Project) projectResponse {
	return projectResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Technologies: p.Technologies,
		GitHubURL:    p.GitHubURL,
		CreatedAt:    p.CreatedAt,
	}
}
