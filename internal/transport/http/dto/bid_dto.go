package dto

import (
	"time"

	"github.com/gigclaw/backend/internal/domain"
)

type PlaceBidRequest struct {
	Amount            int64 `json:"amount" validate:"required"`
	EstimatedDuration int64 `json:"estimated_duration" validate:"required"` // seconds
}

func (r *PlaceBidRequest) Validate() []string {
	var errors []string

	if r.Amount <= 0 {
		errors = append(errors, "amount must be positive")
	}
	if r.EstimatedDuration <= 0 {
		errors = append(errors, "estimated_duration must be positive seconds")
	}

	return errors
}

type BidResponse struct {
	TaskID            string    `json:"task_id"`
	Bidder            string    `json:"bidder"`
	Amount            int64     `json:"amount"`
	EstimatedDuration int64     `json:"estimated_duration"`
	CreatedAt         time.Time `json:"created_at"`
}

func BidToResponse(bid *domain.Bid) BidResponse {
	return BidResponse{
		TaskID:            bid.TaskID,
		Bidder:            bid.Bidder,
		Amount:            bid.Amount,
		EstimatedDuration: bid.EstimatedDuration,
		CreatedAt:         bid.CreatedAt,
	}
}

func BidsToResponse(bids []domain.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for i := range bids {
		out = append(out, BidToResponse(&bids[i]))
	}
	return out
}
