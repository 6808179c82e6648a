package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigclaw/backend/internal/core/ports"
	"github.com/gigclaw/backend/internal/core/services"
	"github.com/gigclaw/backend/internal/domain"
)

func placeBid(taskID, bidder string, amount int64) ports.PlaceBidInput {
	return ports.PlaceBidInput{
		TaskID:            taskID,
		Bidder:            bidder,
		Amount:            amount,
		EstimatedDuration: 48 * time.Hour,
	}
}

func TestPlaceBidReputationGate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.postFundedTask(t, "task-gate")

	t.Run("no reputation record at all", func(t *testing.T) {
		_, err := env.bids.PlaceBid(ctx, placeBid("task-gate", "agent-unknown", 1_000_000))
		assert.ErrorIs(t, err, services.ErrReputationNotFound)
	})

	t.Run("zero track record is rejected", func(t *testing.T) {
		env.seedReputation(t, "agent-new", 0, 0)
		_, err := env.bids.PlaceBid(ctx, placeBid("task-gate", "agent-new", 1_000_000))
		var rErr *domain.InsufficientReputationError
		require.ErrorAs(t, err, &rErr)
		// one tenth of the bid amount
		assert.Equal(t, int64(100_000), rErr.RequiredEarned)
	})

	t.Run("earnings can substitute for completions", func(t *testing.T) {
		env.seedReputation(t, "agent-earner", 0, 100_000)
		_, err := env.bids.PlaceBid(ctx, placeBid("task-gate", "agent-earner", 1_000_000))
		require.NoError(t, err)
	})

	t.Run("earnings just below the threshold fail", func(t *testing.T) {
		env.seedReputation(t, "agent-short", 0, 99_999)
		_, err := env.bids.PlaceBid(ctx, placeBid("task-gate", "agent-short", 1_000_000))
		var rErr *domain.InsufficientReputationError
		require.ErrorAs(t, err, &rErr)
	})

	t.Run("one completed task is enough regardless of earnings", func(t *testing.T) {
		env.seedReputation(t, "agent-vet", 1, 0)
		_, err := env.bids.PlaceBid(ctx, placeBid("task-gate", "agent-vet", 2_000_000))
		require.NoError(t, err)
	})
}

func TestPlaceBidPreconditions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.postFundedTask(t, "task-pre")
	env.seedReputation(t, "agent-1", 1, 0)

	t.Run("unknown task", func(t *testing.T) {
		_, err := env.bids.PlaceBid(ctx, placeBid("no-such-task", "agent-1", 1_000_000))
		assert.ErrorIs(t, err, services.ErrTaskNotFound)
	})

	t.Run("amount above budget", func(t *testing.T) {
		_, err := env.bids.PlaceBid(ctx, placeBid("task-pre", "agent-1", 2_000_001))
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "amount", vErr.Field)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		_, err := env.bids.PlaceBid(ctx, placeBid("task-pre", "agent-1", 0))
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("poster cannot bid on own task", func(t *testing.T) {
		_, err := env.bids.PlaceBid(ctx, placeBid("task-pre", "poster-1", 1_000_000))
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "bidder", vErr.Field)
	})

	t.Run("estimated duration beyond 90 days", func(t *testing.T) {
		input := placeBid("task-pre", "agent-1", 1_000_000)
		input.EstimatedDuration = 91 * 24 * time.Hour
		_, err := env.bids.PlaceBid(ctx, input)
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "estimated_duration", vErr.Field)
	})

	t.Run("escrow not initialized", func(t *testing.T) {
		_, err := env.tasks.CreateTask(ctx, env.createTaskInput("task-no-escrow"))
		require.NoError(t, err)
		_, err = env.bids.PlaceBid(ctx, placeBid("task-no-escrow", "agent-1", 1_000_000))
		var sErr *domain.StateError
		require.ErrorAs(t, err, &sErr)
	})

	t.Run("duplicate bid", func(t *testing.T) {
		_, err := env.bids.PlaceBid(ctx, placeBid("task-pre", "agent-1", 1_000_000))
		require.NoError(t, err)
		_, err = env.bids.PlaceBid(ctx, placeBid("task-pre", "agent-1", 1_200_000))
		var sErr *domain.StateError
		require.ErrorAs(t, err, &sErr)
	})

	t.Run("deadline has passed", func(t *testing.T) {
		env.postFundedTask(t, "task-expired")
		env.clock.Advance(7 * 24 * time.Hour)
		_, err := env.bids.PlaceBid(ctx, placeBid("task-expired", "agent-1", 1_000_000))
		var sErr *domain.StateError
		require.ErrorAs(t, err, &sErr)
	})
}

func TestGetBidsForTask(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.postFundedTask(t, "task-bids")
	env.seedReputation(t, "agent-a", 1, 0)
	env.seedReputation(t, "agent-b", 1, 0)

	_, err := env.bids.PlaceBid(ctx, placeBid("task-bids", "agent-a", 1_000_000))
	require.NoError(t, err)
	_, err = env.bids.PlaceBid(ctx, placeBid("task-bids", "agent-b", 1_500_000))
	require.NoError(t, err)

	bids, err := env.bids.GetBidsForTask(ctx, "task-bids")
	require.NoError(t, err)
	require.Len(t, bids, 2)

	_, err = env.bids.GetBidsForTask(ctx, "no-such-task")
	assert.ErrorIs(t, err, services.ErrTaskNotFound)
}
