package dto

import (
	"github.com/gigclaw/backend/internal/domain"
)

type RateAgentRequest struct {
	Rating int64 `json:"rating" validate:"required,min=1,max=5"`
}

type ReputationResponse struct {
	Agent          string  `json:"agent"`
	CompletedTasks int64   `json:"completed_tasks"`
	FailedTasks    int64   `json:"failed_tasks"`
	TotalEarned    int64   `json:"total_earned"`
	SuccessRate    int64   `json:"success_rate"`
	RatingCount    int64   `json:"rating_count"`
	AverageRating  float64 `json:"average_rating"`
}

func ReputationToResponse(rep *domain.Reputation) ReputationResponse {
	return ReputationResponse{
		Agent:          rep.Agent,
		CompletedTasks: rep.CompletedTasks,
		FailedTasks:    rep.FailedTasks,
		TotalEarned:    rep.TotalEarned,
		SuccessRate:    rep.SuccessRate,
		RatingCount:    rep.RatingCount,
		AverageRating:  rep.AverageRating(),
	}
}
