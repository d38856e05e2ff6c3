package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"scanstock-app/models"
	"scanstock-app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func historyRecord(id string, stockAtScan int, scannedAt time.Time) models.ScanRecord {
	return models.ScanRecord{
		ID:          id,
		ProductID:   1,
		ProductName: "Wireless Mouse M185",
		SKU:         "WM-185-BLK",
		Timestamp:   scannedAt.Format(time.RFC3339),
		StockAtScan: stockAtScan,
	}
}

func TestGetHistoryAggregates(t *testing.T) {
	app, db := setupTestApp(t)

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)

	// 9 and 19 scanned today, 10 and 20 yesterday: low tier covers 9/10/19,
	// critical only 9, today only the two current ones
	require.NoError(t, repositories.NewHistoryRepository(db).Save([]models.ScanRecord{
		historyRecord("a", 9, now),
		historyRecord("b", 10, yesterday),
		historyRecord("c", 19, now),
		historyRecord("d", 20, yesterday),
	}))

	resp, body := doJSON(t, app, http.MethodGet, "/mobile/history/", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["low_scan_count"])
	assert.Equal(t, float64(1), data["critical_count"])
	assert.Equal(t, float64(2), data["today_scan_count"])
	assert.Len(t, data["history"], 4)
}

func TestGetHistoryEmpty(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/mobile/history/", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["low_scan_count"])
	assert.Equal(t, float64(0), data["critical_count"])
	assert.Equal(t, float64(0), data["today_scan_count"])
}

func TestExportExcel(t *testing.T) {
	app, db := setupTestApp(t)

	require.NoError(t, repositories.NewHistoryRepository(db).Save([]models.ScanRecord{
		historyRecord("a", 8, time.Now()),
	}))

	req, err := http.NewRequest(http.MethodGet, "/mobile/history/export", nil)
	require.NoError(t, err)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))

	f, err := excelize.OpenReader(resp.Body)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Sheet1", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Scan ID", header)

	name, err := f.GetCellValue("Sheet1", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Wireless Mouse M185", name)

	status, err := f.GetCellValue("Sheet1", "E2")
	require.NoError(t, err)
	assert.Equal(t, "LOW", status)
}

func TestCreateDummyScansCapsHistory(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/mobile/history/dummy?count=%d", repositories.MaxHistoryEntries+10), nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(repositories.MaxHistoryEntries+10), data["inserted"])
	assert.Len(t, data["history"], repositories.MaxHistoryEntries)

	// the cap also holds for what was persisted
	_, listing := doJSON(t, app, http.MethodGet, "/mobile/history/", nil)
	listingData := listing["data"].(map[string]interface{})
	assert.Len(t, listingData["history"], repositories.MaxHistoryEntries)
}
