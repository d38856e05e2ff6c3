package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"scanstock-app/controllers/idgen"
	"scanstock-app/database"
	"scanstock-app/migration"
	"scanstock-app/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	idgen.Init()

	db, err := database.OpenLocalDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, migration.Migrate(db))

	app := fiber.New()
	routes.SetupProductRoutes(app)
	routes.SetupSettingsRoutes(app)
	routes.SetupHistoryRoutes(app)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, fiber.Map) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded fiber.Map
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestGetProductByCode(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/mobile/products/4902778918856", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	product := data["product"].(map[string]interface{})
	assert.Equal(t, float64(1), product["id"])
	assert.Equal(t, "LOW", data["status"])
}

func TestGetProductByCodeNotFound(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/mobile/products/NOPE", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Product not found: NOPE", body["message"])
}

func TestAdjustStockClampsAtZero(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/mobile/products/adjust",
		fiber.Map{"code": "WM-185-BLK", "delta": -100})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	product := data["product"].(map[string]interface{})
	assert.Equal(t, float64(0), product["stock"])
	assert.Equal(t, "LOW", data["status"])
}

func TestAdjustStockDoesNotTouchCatalog(t *testing.T) {
	app, _ := setupTestApp(t)

	doJSON(t, app, http.MethodPost, "/mobile/products/adjust",
		fiber.Map{"code": "WM-185-BLK", "delta": 100})

	// a fresh lookup still sees the catalog figure
	_, body := doJSON(t, app, http.MethodGet, "/mobile/products/WM-185-BLK", nil)
	data := body["data"].(map[string]interface{})
	product := data["product"].(map[string]interface{})
	assert.Equal(t, float64(15), product["stock"])
}

func TestAlertComposesLinkAndMessage(t *testing.T) {
	app, _ := setupTestApp(t)

	doJSON(t, app, http.MethodPost, "/mobile/settings/",
		fiber.Map{"workerName": "Budi", "managerPhone": "+62 812-3456"})

	resp, body := doJSON(t, app, http.MethodPost, "/mobile/products/alert",
		fiber.Map{"code": "LS-ALU-001"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "CRITICAL", data["severity"])
	assert.Equal(t, false, data["email_sent"])
	assert.True(t, strings.HasPrefix(data["link"].(string), "https://wa.me/628123456?text="))
	assert.Contains(t, data["message"], "Reported by: Budi")
}

func TestAlertWithAdjustedStock(t *testing.T) {
	app, _ := setupTestApp(t)

	// stock 18 sits above the threshold of 15, so the milder label applies
	_, body := doJSON(t, app, http.MethodPost, "/mobile/products/alert",
		fiber.Map{"code": "LS-ALU-001", "stock": 18})

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "LOW STOCK", data["severity"])
}
