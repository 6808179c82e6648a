package db

import (
	"context"

	"github.com/gigclaw/backend/internal/core/ports"
	"github.com/gigclaw/backend/internal/domain"
	"github.com/gigclaw/backend/internal/infrastructure/logger"
	"gorm.io/gorm"
)

type taskRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTaskRepository(database *gorm.DB, log *logger.Logger) ports.TaskRepository {
	return &taskRepository{db: database, log: log}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		r.log.Errorw("task_repo_create_failed", "task_id", task.TaskID, "error", err)
		return err
	}
	r.log.Infow("task_repo_create_ok", "task_id", task.TaskID)
	return nil
}

func (r *taskRepository) GetByTaskID(ctx context.Context, taskID string) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.WithContext(ctx).Where("task_id = ?", taskID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) GetOpen(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.TaskStatusPosted).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		r.log.Errorw("task_repo_list_open_failed", "error", err)
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		r.log.Errorw("task_repo_update_failed", "task_id", task.TaskID, "error", err)
		return err
	}
	r.log.Infow("task_repo_update_ok", "task_id", task.TaskID, "status", task.Status)
	return nil
}
