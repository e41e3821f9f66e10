package handler

import (
	"errors"
	"strconv"

	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// parseQueryIntStrict returns defaultVal when the parameter is absent and
// rejects anything that is not an integer.
func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// parsePage reads the skip/limit window shared by every listing endpoint.
func parsePage(c fiber.Ctx) (int, int, error) {
	skip, err := parseQueryIntStrict(c, "skip", 0)
	if err != nil {
		return 0, 0, middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	limit, err := parseQueryIntStrict(c, "limit", 100)
	if err != nil {
		return 0, 0, middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	return skip, limit, nil
}

// mapListError translates usecase failures on the read path.
func mapListError(err error) error {
	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid skip/limit", nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}

// mapCreateError translates usecase failures on the write path.
func mapCreateError(err error) error {
	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, response.MessageUnprocessableEntity, nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
