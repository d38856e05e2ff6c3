package repositories

import (
	"errors"

	"scanstock-app/models"

	"gorm.io/gorm"
)

// Storage keys for the device-local store. The values predate this service:
// they are the localStorage keys the first version of the app shipped with,
// kept so an existing device keeps its data after upgrading.
const (
	StorageKeySettings = "inventory_app_settings"
	StorageKeyHistory  = "inventory_app_history"
)

func kvGet(db *gorm.DB, key string) (string, bool, error) {
	var entry models.KvEntry
	if err := db.Where("storage_key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

func kvSet(db *gorm.DB, key, value string) error {
	var entry models.KvEntry
	if err := db.Where("storage_key = ?", key).First(&entry).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		entry = models.KvEntry{Key: key, Value: value}
		return db.Create(&entry).Error
	}

	entry.Value = value
	return db.Save(&entry).Error
}
