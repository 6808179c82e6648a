package db

import (
	"context"

	"github.com/gigclaw/backend/internal/core/ports"
	"github.com/gigclaw/backend/internal/infrastructure/logger"
	"gorm.io/gorm"
)

type txManager struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTxManager(database *gorm.DB, log *logger.Logger) ports.TxManager {
	return &txManager{db: database, log: log}
}

// InTx binds a fresh RepoSet to one database transaction. An error from
// fn rolls back every mutation, so operations are all-or-nothing.
func (m *txManager) InTx(ctx context.Context, fn func(ports.RepoSet) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepoSet(tx, m.log))
	})
}

func NewRepoSet(database *gorm.DB, log *logger.Logger) ports.RepoSet {
	return ports.RepoSet{
		Tasks:       NewTaskRepository(database, log),
		Bids:        NewBidRepository(database, log),
		Reputations: NewReputationRepository(database, log),
		Agents:      NewAgentRepository(database, log),
		Ledger:      NewLedgerRepository(database, log),
	}
}
