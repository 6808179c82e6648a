package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gigclaw/backend/internal/core/ports"
	"github.com/gigclaw/backend/internal/infrastructure/logger"
	"github.com/gigclaw/backend/internal/transport/http/dto"
	"github.com/gigclaw/backend/internal/transport/http/middleware"
)

type BidHandler struct {
	service ports.BidService
	logger  *logger.Logger
}

func NewBidHandler(service ports.BidService, logger *logger.Logger) *BidHandler {
	return &BidHandler{service: service, logger: logger}
}

func (h *BidHandler) PlaceBid(c *fiber.Ctx) error {
	var req dto.PlaceBidRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warnw("bid_place_body_parse_failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
		})
	}

	if errs := req.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Details: errs,
		})
	}

	input := ports.PlaceBidInput{
		TaskID:            c.Params("id"),
		Bidder:            middleware.Caller(c),
		Amount:            req.Amount,
		EstimatedDuration: time.Duration(req.EstimatedDuration) * time.Second,
	}

	bid, err := h.service.PlaceBid(c.Context(), input)
	if err != nil {
		return respondError(c, h.logger, "bid_place_failed", err)
	}

	h.logger.Infow("bid_place_success", "task_id", bid.TaskID, "bidder", bid.Bidder)
	return c.Status(fiber.StatusCreated).JSON(dto.BidToResponse(bid))
}

func (h *BidHandler) GetBids(c *fiber.Ctx) error {
	bids, err := h.service.GetBidsForTask(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, "bids_list_failed", err)
	}
	return c.JSON(dto.BidsToResponse(bids))
}
