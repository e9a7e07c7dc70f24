package database

import (
	"gorm.io/gorm"

	"github.com/slastice/backend/internal/models"
)

// Migrate brings the schema up to date for every aggregate.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.ShoppingList{},
	)
}
