package db

import (
	"context"

	"github.com/gigclaw/backend/internal/core/ports"
	"github.com/gigclaw/backend/internal/domain"
	"github.com/gigclaw/backend/internal/infrastructure/logger"
	"gorm.io/gorm"
)

type reputationRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReputationRepository(database *gorm.DB, log *logger.Logger) ports.ReputationRepository {
	return &reputationRepository{db: database, log: log}
}

func (r *reputationRepository) Create(ctx context.Context, rep *domain.Reputation) error {
	if err := r.db.WithContext(ctx).Create(rep).Error; err != nil {
		r.log.Errorw("reputation_repo_create_failed", "agent", rep.Agent, "error", err)
		return err
	}
	r.log.Infow("reputation_repo_create_ok", "agent", rep.Agent)
	return nil
}

func (r *reputationRepository) GetByAgent(ctx context.Context, agent string) (*domain.Reputation, error) {
	var rep domain.Reputation
	if err := r.db.WithContext(ctx).Where("agent = ?", agent).First(&rep).Error; err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *reputationRepository) Update(ctx context.Context, rep *domain.Reputation) error {
	if err := r.db.WithContext(ctx).Save(rep).Error; err != nil {
		r.log.Errorw("reputation_repo_update_failed", "agent", rep.Agent, "error", err)
		return err
	}
	r.log.Infow("reputation_repo_update_ok", "agent", rep.Agent,
		"completed_tasks", rep.CompletedTasks, "total_earned", rep.TotalEarned)
	return nil
}
