package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gigclaw/backend/internal/core/services"
	"github.com/gigclaw/backend/internal/domain"
	"github.com/gigclaw/backend/internal/infrastructure/logger"
	"github.com/gigclaw/backend/internal/transport/http/dto"
)

// statusForError maps the typed error taxonomy onto HTTP statuses. The
// error text passes through verbatim; only the status is derived.
func statusForError(err error) int {
	var (
		validationErr *domain.ValidationError
		authErr       *domain.AuthorizationError
		stateErr      *domain.StateError
		repErr        *domain.InsufficientReputationError
	)
	switch {
	case errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrBidNotFound),
		errors.Is(err, services.ErrReputationNotFound),
		errors.Is(err, services.ErrAgentNotFound),
		errors.Is(err, services.ErrAccountNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &validationErr),
		errors.Is(err, domain.ErrInsufficientFunds):
		return fiber.StatusBadRequest
	case errors.As(err, &authErr):
		return fiber.StatusForbidden
	case errors.As(err, &stateErr):
		return fiber.StatusConflict
	case errors.As(err, &repErr):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, log *logger.Logger, event string, err error) error {
	status := statusForError(err)
	if status >= fiber.StatusInternalServerError {
		log.Errorw(event, "error", err)
	} else {
		log.Warnw(event, "error", err)
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error()})
}
