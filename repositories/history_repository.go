package repositories

import (
	"encoding/json"
	"log"
	"time"

	"scanstock-app/controllers/idgen"
	"scanstock-app/models"

	"gorm.io/gorm"
)

// MaxHistoryEntries caps the scan log. Oldest entries fall off the tail.
const MaxHistoryEntries = 50

type HistoryRepository struct {
	DB *gorm.DB
}

func NewHistoryRepository(DB *gorm.DB) *HistoryRepository {
	return &HistoryRepository{DB: DB}
}

// Load returns the stored scan history, newest first. A missing or
// unreadable entry yields an empty history, not an error to the caller's
// main flow.
func (r *HistoryRepository) Load() ([]models.ScanRecord, error) {
	raw, found, err := kvGet(r.DB, StorageKeyHistory)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.ScanRecord{}, nil
	}

	var history []models.ScanRecord
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil, err
	}
	return history, nil
}

// Save persists the full history list under its storage key.
func (r *HistoryRepository) Save(history []models.ScanRecord) error {
	raw, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return kvSet(r.DB, StorageKeyHistory, string(raw))
}

// RecordScan snapshots the product into a new record, prepends it to the
// given history and persists the result. The in-memory update stands even if
// the write fails; a write failure only means the entry may not survive a
// restart.
func (r *HistoryRepository) RecordScan(product models.Product, existing []models.ScanRecord) (models.ScanRecord, []models.ScanRecord) {
	record := models.ScanRecord{
		ID:          idgen.GenerateToken(),
		ProductID:   product.ID,
		ProductName: product.Name,
		SKU:         product.SKU,
		Timestamp:   time.Now().Format(time.RFC3339),
		StockAtScan: product.Stock,
	}

	updated := append([]models.ScanRecord{record}, existing...)
	if len(updated) > MaxHistoryEntries {
		updated = updated[:MaxHistoryEntries]
	}

	if err := r.Save(updated); err != nil {
		log.Println("Failed to persist scan history:", err)
	}

	return record, updated
}
