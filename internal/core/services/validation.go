package services

import (
	"time"

	"github.com/gigclaw/backend/internal/core/ports"
	"github.com/gigclaw/backend/internal/domain"
)

// validateTaskInputs checks every creation field before any record is
// touched. Fail fast: the first violation aborts the operation.
func validateTaskInputs(input ports.CreateTaskInput, now time.Time) error {
	if len(input.TaskID) == 0 || len(input.TaskID) > MaxTaskIDLength {
		return &domain.ValidationError{Field: "task_id", Reason: "must be 1-32 characters"}
	}
	if input.Poster == "" {
		return &domain.ValidationError{Field: "poster", Reason: "is required"}
	}
	if len(input.Title) == 0 || len(input.Title) > MaxTitleLength {
		return &domain.ValidationError{Field: "title", Reason: "must be 1-100 characters"}
	}
	if len(input.Description) > MaxDescriptionLength {
		return &domain.ValidationError{Field: "description", Reason: "must be at most 2000 characters"}
	}
	if input.Budget < MinimumBudget {
		return &domain.ValidationError{Field: "budget", Reason: "below the 1,000,000 micro-unit minimum"}
	}
	if !input.Deadline.After(now) {
		return &domain.ValidationError{Field: "deadline", Reason: "must be in the future"}
	}
	if input.Deadline.After(now.Add(MaxTaskDuration)) {
		return &domain.ValidationError{Field: "deadline", Reason: "must be within 90 days"}
	}
	if len(input.RequiredSkills) > MaxSkills {
		return &domain.ValidationError{Field: "required_skills", Reason: "at most 10 skills allowed"}
	}
	for _, skill := range input.RequiredSkills {
		if len(skill) == 0 || len(skill) > MaxSkillLength {
			return &domain.ValidationError{Field: "required_skills", Reason: "each skill must be 1-50 characters"}
		}
	}
	return nil
}
