package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gigclaw/backend/internal/core/ports"
	"github.com/gigclaw/backend/internal/infrastructure/logger"
	"github.com/gigclaw/backend/internal/transport/http/dto"
)

type AgentHandler struct {
	service ports.AccountService
	logger  *logger.Logger
}

func NewAgentHandler(service ports.AccountService, logger *logger.Logger) *AgentHandler {
	return &AgentHandler{service: service, logger: logger}
}

// RegisterAgent issues a new identity and API key. Registration is the
// only unauthenticated write in the system.
func (h *AgentHandler) RegisterAgent(c *fiber.Ctx) error {
	var req dto.RegisterAgentRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "name is required",
		})
	}

	identity, apiKey, err := h.service.RegisterAgent(c.Context(), req.Name)
	if err != nil {
		return respondError(c, h.logger, "agent_register_failed", err)
	}

	h.logger.Infow("agent_register_success", "agent_id", identity.AgentID)
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterToResponse(identity, apiKey))
}

func (h *AgentHandler) GetBalance(c *fiber.Ctx) error {
	address := c.Params("address")
	balance, err := h.service.Balance(c.Context(), address)
	if err != nil {
		return respondError(c, h.logger, "balance_get_failed", err)
	}
	return c.JSON(dto.BalanceResponse{Address: address, Balance: balance})
}

// CreditAccount is an admin faucet for development and testnets.
func (h *AgentHandler) CreditAccount(c *fiber.Ctx) error {
	var req dto.CreditRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
		})
	}

	if err := h.service.Credit(c.Context(), req.Address, req.Amount); err != nil {
		return respondError(c, h.logger, "account_credit_failed", err)
	}

	balance, err := h.service.Balance(c.Context(), req.Address)
	if err != nil {
		return respondError(c, h.logger, "account_credit_failed", err)
	}
	return c.JSON(dto.BalanceResponse{Address: req.Address, Balance: balance})
}
