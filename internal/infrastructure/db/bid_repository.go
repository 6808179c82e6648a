package db

import (
	"context"

	"github.com/gigclaw/backend/internal/core/ports"
	"github.com/gigclaw/backend/internal/domain"
	"github.com/gigclaw/backend/internal/infrastructure/logger"
	"gorm.io/gorm"
)

type bidRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBidRepository(database *gorm.DB, log *logger.Logger) ports.BidRepository {
	return &bidRepository{db: database, log: log}
}

func (r *bidRepository) Create(ctx context.Context, bid *domain.Bid) error {
	if err := r.db.WithContext(ctx).Create(bid).Error; err != nil {
		r.log.Errorw("bid_repo_create_failed", "task_id", bid.TaskID, "bidder", bid.Bidder, "error", err)
		return err
	}
	r.log.Infow("bid_repo_create_ok", "task_id", bid.TaskID, "bidder", bid.Bidder)
	return nil
}

func (r *bidRepository) Get(ctx context.Context, taskID, bidder string) (*domain.Bid, error) {
	var bid domain.Bid
	err := r.db.WithContext(ctx).
		Where("task_id = ? AND bidder = ?", taskID, bidder).
		First(&bid).Error
	if err != nil {
		return nil, err
	}
	return &bid, nil
}

func (r *bidRepository) GetByTask(ctx context.Context, taskID string) ([]domain.Bid, error) {
	var bids []domain.Bid
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&bids).Error
	if err != nil {
		r.log.Errorw("bid_repo_list_failed", "task_id", taskID, "error", err)
		return nil, err
	}
	return bids, nil
}
