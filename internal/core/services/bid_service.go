package services

import (
	"context"

	"github.com/gigclaw/backend/internal/core/ports"
	"github.com/gigclaw/backend/internal/domain"
	"github.com/gigclaw/backend/internal/infrastructure/logger"
	"github.com/gigclaw/backend/pkg/utils/checked"
)

// bidService records bid intents. No funds move on placement; the
// reputation stake check is a read-only gate, not a collateral lock.
type bidService struct {
	tx     ports.TxManager
	clock  ports.Clock
	logger *logger.Logger
}

type BidServiceConfig struct {
	Tx     ports.TxManager
	Clock  ports.Clock
	Logger *logger.Logger
}

func NewBidService(cfg BidServiceConfig) ports.BidService {
	return &bidService{tx: cfg.Tx, clock: cfg.Clock, logger: cfg.Logger}
}

func (s *bidService) PlaceBid(ctx context.Context, input ports.PlaceBidInput) (*domain.Bid, error) {
	now := s.clock.Now()

	var bid *domain.Bid
	err := s.tx.InTx(ctx, func(set ports.RepoSet) error {
		task, err := getTask(ctx, set, input.TaskID)
		if err != nil {
			return err
		}
		if task.Status != domain.TaskStatusPosted {
			return &domain.StateError{Op: "bid_on_task", Status: task.Status, Reason: "task is not open for bidding"}
		}
		if !task.EscrowInitialized {
			return &domain.StateError{Op: "bid_on_task", Status: task.Status, Reason: "escrow not initialized"}
		}
		if !now.Before(task.Deadline) {
			return &domain.StateError{Op: "bid_on_task", Status: task.Status, Reason: "deadline has passed"}
		}
		if input.Amount <= 0 || input.Amount > task.Budget {
			return &domain.ValidationError{Field: "amount", Reason: "must be positive and at most the task budget"}
		}
		if input.Bidder == task.Poster {
			return &domain.ValidationError{Field: "bidder", Reason: "poster cannot bid on their own task"}
		}
		if input.EstimatedDuration <= 0 || input.EstimatedDuration > MaxTaskDuration {
			return &domain.ValidationError{Field: "estimated_duration", Reason: "must be positive and within 90 days"}
		}

		rep, _ := set.Reputations.GetByAgent(ctx, input.Bidder)
		if rep == nil {
			return ErrReputationNotFound
		}
		threshold, err := checked.Div(input.Amount, ReputationStakeRatio)
		if err != nil {
			return &domain.ArithmeticError{Op: "stake threshold", Err: err}
		}
		if rep.CompletedTasks < 1 && rep.TotalEarned < threshold {
			s.logger.Warnw("bid_place_denied",
				"task_id", input.TaskID,
				"bidder", input.Bidder,
				"amount", input.Amount,
				"required_earned", threshold,
			)
			return &domain.InsufficientReputationError{Bidder: input.Bidder, RequiredEarned: threshold}
		}

		existing, _ := set.Bids.Get(ctx, input.TaskID, input.Bidder)
		if existing != nil {
			return &domain.StateError{Op: "bid_on_task", Status: task.Status, Reason: "bid already placed for this task"}
		}

		bid = &domain.Bid{
			TaskID:            input.TaskID,
			Bidder:            input.Bidder,
			Amount:            input.Amount,
			EstimatedDuration: int64(input.EstimatedDuration.Seconds()),
			CreatedAt:         now,
		}
		return set.Bids.Create(ctx, bid)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("bid_placed", "task_id", bid.TaskID, "bidder", bid.Bidder, "amount", bid.Amount)
	return bid, nil
}

func (s *bidService) GetBidsForTask(ctx context.Context, taskID string) ([]domain.Bid, error) {
	var bids []domain.Bid
	err := s.tx.InTx(ctx, func(set ports.RepoSet) error {
		if _, err := getTask(ctx, set, taskID); err != nil {
			return err
		}
		var err error
		bids, err = set.Bids.GetByTask(ctx, taskID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return bids, nil
}
