package db

import (
	"context"

	"github.com/gigclaw/backend/internal/core/ports"
	"github.com/gigclaw/backend/internal/domain"
	"github.com/gigclaw/backend/internal/infrastructure/logger"
	"gorm.io/gorm"
)

type agentRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAgentRepository(database *gorm.DB, log *logger.Logger) ports.AgentRepository {
	return &agentRepository{db: database, log: log}
}

func (r *agentRepository) Create(ctx context.Context, identity *domain.AgentIdentity) error {
	if err := r.db.WithContext(ctx).Create(identity).Error; err != nil {
		r.log.Errorw("agent_repo_create_failed", "agent_id", identity.AgentID, "error", err)
		return err
	}
	r.log.Infow("agent_repo_create_ok", "agent_id", identity.AgentID)
	return nil
}

func (r *agentRepository) GetByAgentID(ctx context.Context, agentID string) (*domain.AgentIdentity, error) {
	var identity domain.AgentIdentity
	if err := r.db.WithContext(ctx).Where("agent_id = ?", agentID).First(&identity).Error; err != nil {
		return nil, err
	}
	return &identity, nil
}
