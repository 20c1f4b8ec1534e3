package database

import (
	"linkup/internal/models"

	"gorm.io/gorm"
)

// Registry lists every persisted model in migration order. Tests reuse this
// to build identical schemas against sqlite.
func Registry() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Follow{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	}
}

// Migrate applies schema migrations for all registered models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Registry()...)
}
