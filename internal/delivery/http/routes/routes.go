package routes

import (
	"portfolio-api/internal/database"
	"portfolio-api/internal/delivery/http/handler"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	root *handler.RootHandler
}

func NewRegistry() *Registry {
	return &Registry{root: handler.NewRootHandler()}
}

func (r *Registry) Register(app *fiber.App, db database.DB) {
	if app == nil {
		return
	}

	r.root.RegisterRoutes(app)
	registerResources(app.Group("/api"), db)
}

// registerResources wires repository -> usecase -> handler for each of
// the five portfolio resources.
func registerResources(api fiber.Router, db database.DB) {
	experienceH := handler.NewExperienceHandler(
		usecase.NewExperienceUsecase(repository.NewPostgresExperienceRepository(db)),
	)
	projectH := handler.NewProjectHandler(
		usecase.NewProjectUsecase(repository.NewPostgresProjectRepository(db)),
	)
	skillH := handler.NewSkillHandler(
		usecase.NewSkillUsecase(repository.NewPostgresSkillRepository(db)),
	)
	educationH := handler.NewEducationHandler(
		usecase.NewEducationUsecase(repository.NewPostgresEducationRepository(db)),
	)
	contactH := handler.NewContactHandler(
		usecase.NewContactUsecase(repository.NewPostgresContactMessageRepository(db)),
	)

	experienceH.RegisterRoutes(api)
	projectH.RegisterRoutes(api)
	skillH.RegisterRoutes(api)
	educationH.RegisterRoutes(api)
	contactH.RegisterRoutes(api)
}
