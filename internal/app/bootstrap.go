package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfolio-api/internal/config"
	"portfolio-api/internal/database"
	"portfolio-api/internal/database/schema"
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/rs/zerolog"
)

type App struct {
	Fiber *fiber.App
}

func New(cfg config.Config, db database.DB, logger zerolog.Logger) *App {
	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	registerGlobalMiddleware(f, logger)
	routes.NewRegistry().Register(f, db)

	return &App{Fiber: f}
}

// Bootstrap opens the store, ensures the schema, and builds the HTTP
// app. The returned cleanup closes the store handle.
func Bootstrap(cfg config.Config, logger zerolog.Logger) (*App, func() error, error) {
	ctn, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := schema.Ensure(ctx, ctn.DB); err != nil {
		_ = ctn.Close()
		return nil, nil, err
	}

	app := New(cfg, ctn.DB, logger)
	return app, ctn.Close, nil
}

func registerGlobalMiddleware(f *fiber.App, logger zerolog.Logger) {
	if f == nil {
		return
	}

	f.Use(middleware.NewErrorMiddleware(logger).Middleware())
	f.Use(middleware.RequestID())
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())

	// Fixed process-wide policy: every origin, method, and header.
	f.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
	}))
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
