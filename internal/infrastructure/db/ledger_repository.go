package db

import (
	"context"
	"errors"

	"github.com/gigclaw/backend/internal/core/ports"
	"github.com/gigclaw/backend/internal/domain"
	"github.com/gigclaw/backend/internal/infrastructure/logger"
	"gorm.io/gorm"
)

// ledgerRepository keeps one custody balance per address. Transfers are
// guarded debits: the debit and the credit either both apply (inside
// the caller's transaction) or neither does.
type ledgerRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLedgerRepository(database *gorm.DB, log *logger.Logger) ports.LedgerRepository {
	return &ledgerRepository{db: database, log: log}
}

func (r *ledgerRepository) GetAccount(ctx context.Context, address string) (*domain.Account, error) {
	var account domain.Account
	if err := r.db.WithContext(ctx).Where("address = ?", address).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *ledgerRepository) Balance(ctx context.Context, address string) (int64, error) {
	account, err := r.GetAccount(ctx, address)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return account.Balance, nil
}

func (r *ledgerRepository) Credit(ctx context.Context, address string, amount int64) error {
	account := domain.Account{Address: address}
	if err := r.db.WithContext(ctx).Where("address = ?", address).FirstOrCreate(&account).Error; err != nil {
		r.log.Errorw("ledger_repo_credit_failed", "address", address, "error", err)
		return err
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Account{}).
		Where("address = ?", address).
		Update("balance", gorm.Expr("balance + ?", amount)).Error
	if err != nil {
		r.log.Errorw("ledger_repo_credit_failed", "address", address, "error", err)
		return err
	}
	return nil
}

func (r *ledgerRepository) Transfer(ctx context.Context, from, to string, amount int64) error {
	if amount <= 0 {
		return &domain.ValidationError{Field: "amount", Reason: "must be positive"}
	}

	// Guarded debit: touches the row only while the balance covers the
	// amount, so a concurrent transfer can never overdraw.
	res := r.db.WithContext(ctx).
		Model(&domain.Account{}).
		Where("address = ? AND balance >= ?", from, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		r.log.Errorw("ledger_repo_debit_failed", "from", from, "error", res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		r.log.Warnw("ledger_repo_transfer_rejected", "from", from, "to", to, "amount", amount)
		return domain.ErrInsufficientFunds
	}

	if err := r.Credit(ctx, to, amount); err != nil {
		return err
	}

	r.log.Infow("ledger_repo_transfer_ok", "from", from, "to", to, "amount", amount)
	return nil
}
