package ports

import (
	"context"

	"github.com/gigclaw/backend/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByTaskID(ctx context.Context, taskID string) (*domain.Task, error)
	GetOpen(ctx context.Context) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
}

type BidRepository interface {
	Create(ctx context.Context, bid *domain.Bid) error
	Get(ctx context.Context, taskID, bidder string) (*domain.Bid, error)
	GetByTask(ctx context.Context, taskID string) ([]domain.Bid, error)
}

type ReputationRepository interface {
	Create(ctx context.Context, rep *domain.Reputation) error
	GetByAgent(ctx context.Context, agent string) (*domain.Reputation, error)
	Update(ctx context.Context, rep *domain.Reputation) error
}

type AgentRepository interface {
	Create(ctx context.Context, identity *domain.AgentIdentity) error
	GetByAgentID(ctx context.Context, agentID string) (*domain.AgentIdentity, error)
}

// LedgerRepository is the value-transfer ledger: custody accounts in
// micro-units with all-or-nothing transfers.
type LedgerRepository interface {
	GetAccount(ctx context.Context, address string) (*domain.Account, error)
	Balance(ctx context.Context, address string) (int64, error)
	// Credit adds amount to an account, creating it when absent.
	Credit(ctx context.Context, address string, amount int64) error
	// Transfer debits from and credits to atomically, rejecting the
	// whole movement when from lacks the balance.
	Transfer(ctx context.Context, from, to string, amount int64) error
}

// RepoSet bundles every repository bound to one transaction.
type RepoSet struct {
	Tasks       TaskRepository
	Bids        BidRepository
	Reputations ReputationRepository
	Agents      AgentRepository
	Ledger      LedgerRepository
}

// TxManager runs fn as a single all-or-nothing transaction: either
// every mutation made through the RepoSet commits, or none do.
type TxManager interface {
	InTx(ctx context.Context, fn func(RepoSet) error) error
}
