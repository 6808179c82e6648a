package dto

import (
	"time"

	"github.com/gigclaw/backend/internal/domain"
)

type CreateTaskRequest struct {
	TaskID         string   `json:"task_id" validate:"required"`
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description"`
	Budget         int64    `json:"budget" validate:"required"`
	Deadline       int64    `json:"deadline" validate:"required"` // unix seconds
	RequiredSkills []string `json:"required_skills"`
}

// Validate checks request shape only; range rules live in the core.
func (r *CreateTaskRequest) Validate() []string {
	var errors []string

	if r.TaskID == "" {
		errors = append(errors, "task_id is required")
	}
	if r.Title == "" {
		errors = append(errors, "title is required")
	}
	if r.Budget <= 0 {
		errors = append(errors, "budget must be positive")
	}
	if r.Deadline <= 0 {
		errors = append(errors, "deadline must be a unix timestamp in seconds")
	}

	return errors
}

func (r *CreateTaskRequest) DeadlineTime() time.Time {
	return time.Unix(r.Deadline, 0).UTC()
}

type CompleteTaskRequest struct {
	DeliveryURL string `json:"delivery_url" validate:"required"`
}

type AcceptBidRequest struct {
	Bidder string `json:"bidder" validate:"required"`
}

type TaskResponse struct {
	TaskID            string     `json:"task_id"`
	Poster            string     `json:"poster"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Budget            int64      `json:"budget"`
	FinalBudget       int64      `json:"final_budget"`
	Deadline          time.Time  `json:"deadline"`
	RequiredSkills    []string   `json:"required_skills"`
	Status            string     `json:"status"`
	AssignedAgent     *string    `json:"assigned_agent,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	DeliveryURL       *string    `json:"delivery_url,omitempty"`
	EscrowInitialized bool       `json:"escrow_initialized"`
	EscrowAddress     string     `json:"escrow_address,omitempty"`
}

func TaskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		TaskID:            task.TaskID,
		Poster:            task.Poster,
		Title:             task.Title,
		Description:       task.Description,
		Budget:            task.Budget,
		FinalBudget:       task.FinalBudget,
		Deadline:          task.Deadline,
		RequiredSkills:    task.RequiredSkills,
		Status:            string(task.Status),
		AssignedAgent:     task.AssignedAgent,
		CreatedAt:         task.CreatedAt,
		CompletedAt:       task.CompletedAt,
		DeliveryURL:       task.DeliveryURL,
		EscrowInitialized: task.EscrowInitialized,
		EscrowAddress:     task.EscrowAddress,
	}
}

func TasksToResponse(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, TaskToResponse(&tasks[i]))
	}
	return out
}
