package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"scanstock-app/models"
)

// WebhookURL is the Google Apps Script web app backing the stock sheet.
// Fixed endpoint, no auth; the sheet side filters on the payload columns.
const WebhookURL = "https://script.google.com/macros/s/AKfycbwM3CCw7_MsOVi2W-fj_o2tdxYb9Bc-8bvmnQRczOLUYP0nRfe9ZR9292f8LKUA5Q_g/exec"

const syncSheetName = "Form Webhook Data"

type ActionType string

const (
	ActionManualUpdate   ActionType = "MANUAL_UPDATE"
	ActionConnectionTest ActionType = "CONNECTION_TEST"
)

type SyncService struct {
	WebhookURL string
	Client     *http.Client
}

func NewSyncService() *SyncService {
	return &SyncService{
		WebhookURL: WebhookURL,
		Client:     http.DefaultClient,
	}
}

// SyncProduct pushes one product snapshot to the sheet webhook. Best-effort:
// the Apps Script redirect chain makes the response unreadable from this
// client, so the body and status are ignored and success only means the
// request left without a transport error. No retry on failure.
func (s *SyncService) SyncProduct(product models.Product, settings models.AppSettings, actionType ActionType) bool {

	workerName := settings.WorkerName
	if workerName == "" {
		workerName = "Anonymous"
	}

	payload := map[string]interface{}{
		"Sheet Name":    syncSheetName,
		"Worker Name":   workerName,
		"Item Name":     product.Name,
		"SKU":           product.SKU,
		"Barcode":       product.Barcode,
		"Warehouse Bin": product.Location,
		"Stock Level":   product.Stock,
		"Stock Status":  models.GetStockStatus(product.Stock),
		"Timestamp":     time.Now().Format("1/2/2006, 3:04:05 PM"),
		"Action Type":   actionType,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("[SYNC] %s failed: %v\n", actionType, err)
		return false
	}

	fmt.Printf("[SYNC] Sending %s for %s\n", actionType, product.SKU)

	resp, err := s.Client.Post(s.WebhookURL, "text/plain", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("[SYNC] %s failed: %v\n", actionType, err)
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return true
}

// TestWebhookConnection sends a dummy record through the real sync path so a
// user can verify the endpoint is reachable from the Settings screen.
func (s *SyncService) TestWebhookConnection(settings models.AppSettings) bool {
	dummyProduct := models.Product{
		ID:        0,
		Name:      "TEST PRODUCT",
		SKU:       "DEBUG-999",
		Barcode:   "0000000000",
		Stock:     100,
		Location:  "SYSTEM-TEST",
		Threshold: 10,
	}

	return s.SyncProduct(dummyProduct, settings, ActionConnectionTest)
}
