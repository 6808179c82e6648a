package services

import (
	"context"

	"github.com/gigclaw/backend/internal/core/ports"
	"github.com/gigclaw/backend/internal/domain"
	"github.com/gigclaw/backend/internal/infrastructure/logger"
)

type reputationService struct {
	tx     ports.TxManager
	clock  ports.Clock
	logger *logger.Logger
}

type ReputationServiceConfig struct {
	Tx     ports.TxManager
	Clock  ports.Clock
	Logger *logger.Logger
}

func NewReputationService(cfg ReputationServiceConfig) ports.ReputationService {
	return &reputationService{tx: cfg.Tx, clock: cfg.Clock, logger: cfg.Logger}
}

// InitializeReputation bootstraps a zeroed ledger entry once per agent.
// Re-invoking for an existing agent fails instead of resetting counters.
func (s *reputationService) InitializeReputation(ctx context.Context, agent string) (*domain.Reputation, error) {
	if agent == "" {
		return nil, &domain.ValidationError{Field: "agent", Reason: "is required"}
	}

	var rep *domain.Reputation
	err := s.tx.InTx(ctx, func(set ports.RepoSet) error {
		existing, _ := set.Reputations.GetByAgent(ctx, agent)
		if existing != nil {
			return &domain.StateError{Op: "initialize_reputation", Reason: "reputation already initialized"}
		}
		rep = &domain.Reputation{Agent: agent, CreatedAt: s.clock.Now()}
		return set.Reputations.Create(ctx, rep)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("reputation_initialized", "agent", agent)
	return rep, nil
}

func (s *reputationService) RateAgent(ctx context.Context, taskID, caller string, rating int64) (*domain.Reputation, error) {
	if rating < MinRating || rating > MaxRating {
		return nil, &domain.ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}

	var rep *domain.Reputation
	err := s.tx.InTx(ctx, func(set ports.RepoSet) error {
		task, err := getTask(ctx, set, taskID)
		if err != nil {
			return err
		}
		if task.Status != domain.TaskStatusVerified {
			return &domain.StateError{Op: "rate_agent", Status: task.Status, Reason: "task is not verified"}
		}
		if task.Poster != caller {
			return &domain.AuthorizationError{Caller: caller, Required: "poster"}
		}

		rep, _ = set.Reputations.GetByAgent(ctx, *task.AssignedAgent)
		if rep == nil {
			return ErrReputationNotFound
		}
		if err := rep.AddRating(rating); err != nil {
			return err
		}
		return set.Reputations.Update(ctx, rep)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("agent_rated", "task_id", taskID, "agent", rep.Agent, "rating", rating)
	return rep, nil
}

func (s *reputationService) GetReputation(ctx context.Context, agent string) (*domain.Reputation, error) {
	var rep *domain.Reputation
	err := s.tx.InTx(ctx, func(set ports.RepoSet) error {
		rep, _ = set.Reputations.GetByAgent(ctx, agent)
		if rep == nil {
			return ErrReputationNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rep, nil
}
