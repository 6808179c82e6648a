package dto

import (
	"time"

	"github.com/gigclaw/backend/internal/domain"
)

type RegisterAgentRequest struct {
	Name string `json:"name" validate:"required"`
}

type RegisterAgentResponse struct {
	AgentID   string    `json:"agent_id"`
	Name      string    `json:"name"`
	APIKey    string    `json:"api_key"` // returned exactly once
	CreatedAt time.Time `json:"created_at"`
}

func RegisterToResponse(identity *domain.AgentIdentity, apiKey string) RegisterAgentResponse {
	return RegisterAgentResponse{
		AgentID:   identity.AgentID,
		Name:      identity.Name,
		APIKey:    apiKey,
		CreatedAt: identity.CreatedAt,
	}
}

type BalanceResponse struct {
	Address string `json:"address"`
	Balance int64  `json:"balance"`
}

type CreditRequest struct {
	Address string `json:"address" validate:"required"`
	Amount  int64  `json:"amount" validate:"required"`
}
