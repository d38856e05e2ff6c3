package models

import "time"

// KvEntry is the device-local storage table. One row per storage key, the
// value is a JSON string owned by the repository that writes it.
type KvEntry struct {
	ID        uint   `gorm:"primaryKey"`
	Key       string `json:"key" gorm:"column:storage_key;unique;not null"`
	Value     string `json:"value" gorm:"column:storage_value"`
	UpdatedAt time.Time
}
