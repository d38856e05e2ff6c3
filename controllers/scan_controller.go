package controllers

import (
	"errors"
	"fmt"

	"scanstock-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ScanController struct {
	DB *gorm.DB
	// Sync overrides the default dispatcher when set; the zero value uses
	// the fixed sheet webhook.
	Sync *services.SyncService
}

func NewScanController(DB *gorm.DB) *ScanController {
	return &ScanController{DB: DB}
}

// Scan handles one decode event from the client, camera or manual entry.
func (c *ScanController) Scan(ctx *fiber.Ctx) error {

	var scanInput struct {
		Code string `json:"code" validate:"required"`
	}

	if err := ctx.BodyParser(&scanInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	validate := validator.New()
	if err := validate.Struct(scanInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	scanService := services.NewScanService(c.DB)
	if c.Sync != nil {
		scanService.Sync = c.Sync
	}

	result, err := scanService.ProcessScan(scanInput.Code)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": fmt.Sprintf("Product not found: %s", scanInput.Code),
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": result})
}
