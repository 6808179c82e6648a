package db

import (
	"github.com/gigclaw/backend/internal/domain"
	"gorm.io/gorm"
)

func RunMigrations(database *gorm.DB) error {
	return database.AutoMigrate(
		&domain.Task{},
		&domain.Bid{},
		&domain.Reputation{},
		&domain.AgentIdentity{},
		&domain.Account{},
	)
}
