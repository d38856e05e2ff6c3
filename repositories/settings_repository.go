package repositories

import (
	"encoding/json"

	"scanstock-app/models"

	"gorm.io/gorm"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(DB *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: DB}
}

// Load returns the stored settings, or zero-value settings when none were
// saved yet. The composer and dispatcher apply their own fallbacks for blank
// fields.
func (r *SettingsRepository) Load() (models.AppSettings, error) {
	var settings models.AppSettings

	raw, found, err := kvGet(r.DB, StorageKeySettings)
	if err != nil || !found {
		return settings, err
	}

	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return models.AppSettings{}, err
	}
	return settings, nil
}

func (r *SettingsRepository) Save(settings models.AppSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return kvSet(r.DB, StorageKeySettings, string(raw))
}
