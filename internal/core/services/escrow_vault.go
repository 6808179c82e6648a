package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/gigclaw/backend/internal/core/ports"
	"github.com/gigclaw/backend/internal/domain"
	"github.com/gigclaw/backend/internal/infrastructure/logger"
)

// VaultAddress derives the custody account address for a task's escrow
// vault from the task key alone. No externally supplied address is ever
// accepted for vault operations.
func VaultAddress(taskID string) string {
	sum := sha256.Sum256([]byte("escrow:" + taskID))
	return hex.EncodeToString(sum[:])
}

// releaseAuthority is the proof of control the vault demands before
// letting funds out. It can only be minted inside this package, from
// the task record the orchestrator already holds, so no external
// caller can produce a valid authorization.
type releaseAuthority struct {
	taskID string
}

func authorityFor(task *domain.Task) releaseAuthority {
	return releaseAuthority{taskID: task.TaskID}
}

// escrowVault custodies one task's budget. Fund and Release are its
// only operations; both run inside the caller's transaction so the fund
// movement commits or aborts together with the state transition.
type escrowVault struct {
	log *logger.Logger
}

func (v escrowVault) Fund(ctx context.Context, set ports.RepoSet, task *domain.Task) error {
	addr := VaultAddress(task.TaskID)
	if err := set.Ledger.Transfer(ctx, task.Poster, addr, task.Budget); err != nil {
		v.log.Warnw("vault_fund_failed", "task_id", task.TaskID, "amount", task.Budget, "error", err)
		return err
	}
	v.log.Infow("vault_funded", "task_id", task.TaskID, "vault", addr, "amount", task.Budget)
	return nil
}

func (v escrowVault) Release(ctx context.Context, set ports.RepoSet, auth releaseAuthority, destination string, amount int64) error {
	addr := VaultAddress(auth.taskID)
	if err := set.Ledger.Transfer(ctx, addr, destination, amount); err != nil {
		v.log.Errorw("vault_release_failed", "task_id", auth.taskID, "destination", destination, "amount", amount, "error", err)
		return err
	}
	v.log.Infow("vault_released", "task_id", auth.taskID, "destination", destination, "amount", amount)
	return nil
}
