package repositories

import (
	"github.com/anonto42/inko/backend/internal/models"
	"gorm.io/gorm"
)

// AutoMigrateAll creates or updates the six tables and their unique indexes.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
		&models.Follow{},
		&models.Notification{},
	)
}
