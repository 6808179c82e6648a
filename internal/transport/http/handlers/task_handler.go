package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gigclaw/backend/internal/core/ports"
	"github.com/gigclaw/backend/internal/infrastructure/logger"
	"github.com/gigclaw/backend/internal/transport/http/dto"
	"github.com/gigclaw/backend/internal/transport/http/middleware"
)

type TaskHandler struct {
	service ports.TaskService
	logger  *logger.Logger
}

func NewTaskHandler(service ports.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{service: service, logger: logger}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warnw("task_create_body_parse_failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
		})
	}

	if errs := req.Validate(); len(errs) > 0 {
		h.logger.Warnw("task_create_validation_failed", "details", errs)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Details: errs,
		})
	}

	input := ports.CreateTaskInput{
		TaskID:         req.TaskID,
		Poster:         middleware.Caller(c),
		Title:          req.Title,
		Description:    req.Description,
		Budget:         req.Budget,
		Deadline:       req.DeadlineTime(),
		RequiredSkills: req.RequiredSkills,
	}

	task, err := h.service.CreateTask(c.Context(), input)
	if err != nil {
		return respondError(c, h.logger, "task_create_failed", err)
	}

	h.logger.Infow("task_create_success", "task_id", task.TaskID)
	return c.Status(fiber.StatusCreated).JSON(dto.TaskToResponse(task))
}

func (h *TaskHandler) GetTasks(c *fiber.Ctx) error {
	tasks, err := h.service.GetOpenTasks(c.Context())
	if err != nil {
		return respondError(c, h.logger, "tasks_list_failed", err)
	}
	return c.JSON(dto.TasksToResponse(tasks))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	task, err := h.service.GetTask(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, "task_get_failed", err)
	}
	return c.JSON(dto.TaskToResponse(task))
}

func (h *TaskHandler) InitializeEscrow(c *fiber.Ctx) error {
	task, err := h.service.InitializeEscrow(c.Context(), c.Params("id"), middleware.Caller(c))
	if err != nil {
		return respondError(c, h.logger, "escrow_initialize_failed", err)
	}
	return c.JSON(dto.TaskToResponse(task))
}

func (h *TaskHandler) EscrowBalance(c *fiber.Ctx) error {
	taskID := c.Params("id")
	balance, err := h.service.EscrowBalance(c.Context(), taskID)
	if err != nil {
		return respondError(c, h.logger, "escrow_balance_failed", err)
	}
	return c.JSON(fiber.Map{"task_id": taskID, "balance": balance})
}

func (h *TaskHandler) CancelTask(c *fiber.Ctx) error {
	task, err := h.service.CancelTask(c.Context(), c.Params("id"), middleware.Caller(c))
	if err != nil {
		return respondError(c, h.logger, "task_cancel_failed", err)
	}
	return c.JSON(dto.TaskToResponse(task))
}

func (h *TaskHandler) AcceptBid(c *fiber.Ctx) error {
	var req dto.AcceptBidRequest
	if err := c.BodyParser(&req); err != nil || req.Bidder == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "bidder is required",
		})
	}

	task, err := h.service.AcceptBid(c.Context(), c.Params("id"), middleware.Caller(c), req.Bidder)
	if err != nil {
		return respondError(c, h.logger, "bid_accept_failed", err)
	}

	h.logger.Infow("bid_accept_success", "task_id", task.TaskID, "agent", req.Bidder)
	return c.JSON(dto.TaskToResponse(task))
}

func (h *TaskHandler) CompleteTask(c *fiber.Ctx) error {
	var req dto.CompleteTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
		})
	}

	task, err := h.service.CompleteTask(c.Context(), c.Params("id"), middleware.Caller(c), req.DeliveryURL)
	if err != nil {
		return respondError(c, h.logger, "task_complete_failed", err)
	}
	return c.JSON(dto.TaskToResponse(task))
}

func (h *TaskHandler) VerifyAndPay(c *fiber.Ctx) error {
	task, err := h.service.VerifyAndPay(c.Context(), c.Params("id"), middleware.Caller(c))
	if err != nil {
		return respondError(c, h.logger, "verify_and_pay_failed", err)
	}

	h.logger.Infow("verify_and_pay_success", "task_id", task.TaskID, "amount", task.FinalBudget)
	return c.JSON(dto.TaskToResponse(task))
}
