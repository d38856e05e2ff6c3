package controllers

import (
	"fmt"
	"net/http"
	"time"

	"scanstock-app/catalog"
	"scanstock-app/models"
	"scanstock-app/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"golang.org/x/exp/rand"
	"gorm.io/gorm"
)

type HistoryController struct {
	DB *gorm.DB
}

func NewHistoryController(DB *gorm.DB) *HistoryController {
	return &HistoryController{DB: DB}
}

// GetHistory returns the scan log plus the counters the dashboard shows.
func (c *HistoryController) GetHistory(ctx *fiber.Ctx) error {

	history_repo := repositories.NewHistoryRepository(c.DB)
	history, err := history_repo.Load()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	today := time.Now().Format("2006-01-02")

	lowScanCount := 0
	criticalCount := 0
	todayScanCount := 0
	for _, record := range history {
		if models.GetStockStatus(record.StockAtScan) == models.StatusLow {
			lowScanCount++
		}
		if record.StockAtScan < 10 {
			criticalCount++
		}
		if scannedAt, err := time.Parse(time.RFC3339, record.Timestamp); err == nil {
			if scannedAt.Local().Format("2006-01-02") == today {
				todayScanCount++
			}
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"history":          history,
			"low_scan_count":   lowScanCount,
			"critical_count":   criticalCount,
			"today_scan_count": todayScanCount,
		},
	})
}

// ExportExcel generates and streams the scan log as an Excel file.
func (c *HistoryController) ExportExcel(ctx *fiber.Ctx) error {

	history_repo := repositories.NewHistoryRepository(c.DB)
	history, err := history_repo.Load()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Scan ID")
	f.SetCellValue(sheet, "B1", "Item Name")
	f.SetCellValue(sheet, "C1", "SKU")
	f.SetCellValue(sheet, "D1", "Stock At Scan")
	f.SetCellValue(sheet, "E1", "Status")
	f.SetCellValue(sheet, "F1", "Timestamp")

	for i, record := range history {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), record.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), record.ProductName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), record.SKU)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), record.StockAtScan)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), string(models.GetStockStatus(record.StockAtScan)))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), record.Timestamp)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="scan-history.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}

// CreateDummyScans fills the history with random scan records so the
// dashboard can be exercised without a scanner attached.
func (c *HistoryController) CreateDummyScans(ctx *fiber.Ctx) error {
	// Take the count from the query param (default 10)
	count := ctx.QueryInt("count", 10)

	history_repo := repositories.NewHistoryRepository(c.DB)
	history, err := history_repo.Load()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	for i := 0; i < count; i++ {
		product := catalog.Products[rand.Intn(len(catalog.Products))]
		product.Stock = rand.Intn(100)
		_, history = history_repo.RecordScan(product, history)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"inserted": count,
			"history":  history,
		},
	})
}
