package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gigclaw/backend/internal/core/ports"
	"github.com/gigclaw/backend/internal/infrastructure/logger"
	"github.com/gigclaw/backend/internal/transport/http/dto"
	"github.com/gigclaw/backend/internal/transport/http/middleware"
)

type ReputationHandler struct {
	service ports.ReputationService
	logger  *logger.Logger
}

func NewReputationHandler(service ports.ReputationService, logger *logger.Logger) *ReputationHandler {
	return &ReputationHandler{service: service, logger: logger}
}

// InitializeReputation bootstraps the caller's own ledger entry.
func (h *ReputationHandler) InitializeReputation(c *fiber.Ctx) error {
	rep, err := h.service.InitializeReputation(c.Context(), middleware.Caller(c))
	if err != nil {
		return respondError(c, h.logger, "reputation_initialize_failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ReputationToResponse(rep))
}

func (h *ReputationHandler) GetReputation(c *fiber.Ctx) error {
	rep, err := h.service.GetReputation(c.Context(), c.Params("agent"))
	if err != nil {
		return respondError(c, h.logger, "reputation_get_failed", err)
	}
	return c.JSON(dto.ReputationToResponse(rep))
}

func (h *ReputationHandler) RateAgent(c *fiber.Ctx) error {
	var req dto.RateAgentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
		})
	}

	rep, err := h.service.RateAgent(c.Context(), c.Params("id"), middleware.Caller(c), req.Rating)
	if err != nil {
		return respondError(c, h.logger, "agent_rate_failed", err)
	}

	h.logger.Infow("agent_rate_success", "task_id", c.Params("id"), "agent", rep.Agent, "rating", req.Rating)
	return c.JSON(dto.ReputationToResponse(rep))
}
