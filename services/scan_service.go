package services

import (
	"errors"

	"scanstock-app/catalog"
	"scanstock-app/models"
	"scanstock-app/repositories"

	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type ScanResult struct {
	Product models.Product     `json:"product"`
	Status  models.StockStatus `json:"status"`
	Record  models.ScanRecord  `json:"record"`
	Synced  bool               `json:"synced"`
}

// ScanService runs the full pipeline for one decode event, whether it came
// from the camera client, manual entry or the wedge scanner.
type ScanService struct {
	DB   *gorm.DB
	Sync *SyncService
}

func NewScanService(DB *gorm.DB) *ScanService {
	return &ScanService{DB: DB, Sync: NewSyncService()}
}

// ProcessScan resolves the code, records the scan and pushes the snapshot to
// the sheet. A lookup miss returns ErrProductNotFound and mutates nothing.
// A failed sync is reported in the result, never as an error: the scan is
// already recorded and the user moves on to the detail view regardless.
func (s *ScanService) ProcessScan(code string) (*ScanResult, error) {
	product, found := catalog.FindProduct(code)
	if !found {
		return nil, ErrProductNotFound
	}

	historyRepo := repositories.NewHistoryRepository(s.DB)
	history, err := historyRepo.Load()
	if err != nil {
		// An unreadable history must not block scanning. Start fresh.
		history = []models.ScanRecord{}
	}
	record, _ := historyRepo.RecordScan(product, history)

	settings, _ := repositories.NewSettingsRepository(s.DB).Load()
	synced := s.Sync.SyncProduct(product, settings, ActionManualUpdate)

	return &ScanResult{
		Product: product,
		Status:  models.GetStockStatus(product.Stock),
		Record:  record,
		Synced:  synced,
	}, nil
}
