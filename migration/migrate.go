package migration

import (
	"scanstock-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.KvEntry{},
	)
}
