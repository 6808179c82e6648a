package ports

import (
	"context"
	"time"

	"github.com/gigclaw/backend/internal/domain"
)

// Clock supplies the current time for deadline comparisons.
type Clock interface {
	Now() time.Time
}

type CreateTaskInput struct {
	TaskID         string
	Poster         string
	Title          string
	Description    string
	Budget         int64
	Deadline       time.Time
	RequiredSkills []string
}

type PlaceBidInput struct {
	TaskID            string
	Bidder            string
	Amount            int64
	EstimatedDuration time.Duration
}

// TaskService owns the task lifecycle: every transition out of a status
// happens here and nowhere else.
type TaskService interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	InitializeEscrow(ctx context.Context, taskID, caller string) (*domain.Task, error)
	CancelTask(ctx context.Context, taskID, caller string) (*domain.Task, error)
	AcceptBid(ctx context.Context, taskID, caller, bidder string) (*domain.Task, error)
	CompleteTask(ctx context.Context, taskID, caller, deliveryURL string) (*domain.Task, error)
	VerifyAndPay(ctx context.Context, taskID, caller string) (*domain.Task, error)
	GetTask(ctx context.Context, taskID string) (*domain.Task, error)
	GetOpenTasks(ctx context.Context) ([]domain.Task, error)
	EscrowBalance(ctx context.Context, taskID string) (int64, error)
}

type BidService interface {
	PlaceBid(ctx context.Context, input PlaceBidInput) (*domain.Bid, error)
	GetBidsForTask(ctx context.Context, taskID string) ([]domain.Bid, error)
}

type ReputationService interface {
	InitializeReputation(ctx context.Context, agent string) (*domain.Reputation, error)
	RateAgent(ctx context.Context, taskID, caller string, rating int64) (*domain.Reputation, error)
	GetReputation(ctx context.Context, agent string) (*domain.Reputation, error)
}

// AccountService covers agent identity registration and the ledger
// read/credit surface.
type AccountService interface {
	RegisterAgent(ctx context.Context, name string) (*domain.AgentIdentity, string, error)
	Authenticate(ctx context.Context, agentID, apiKey string) (*domain.AgentIdentity, error)
	Balance(ctx context.Context, address string) (int64, error)
	Credit(ctx context.Context, address string, amount int64) error
}
