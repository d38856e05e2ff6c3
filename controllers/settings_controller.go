package controllers

import (
	"scanstock-app/models"
	"scanstock-app/repositories"
	"scanstock-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SettingsController struct {
	DB *gorm.DB
}

func NewSettingsController(DB *gorm.DB) *SettingsController {
	return &SettingsController{DB: DB}
}

func (c *SettingsController) GetSettings(ctx *fiber.Ctx) error {

	settings, err := repositories.NewSettingsRepository(c.DB).Load()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": settings})
}

func (c *SettingsController) SaveSettings(ctx *fiber.Ctx) error {

	var settingsInput struct {
		WorkerName string `json:"workerName" validate:"max=64"`
		// Free text on purpose: a malformed number only means the generated
		// chat link will not resolve. Length is the only guard.
		ManagerPhone string `json:"managerPhone" validate:"max=32"`
	}

	if err := ctx.BodyParser(&settingsInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	// Validate input using validator
	validate := validator.New()
	if err := validate.Struct(settingsInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	settings := models.AppSettings{
		WorkerName:   settingsInput.WorkerName,
		ManagerPhone: settingsInput.ManagerPhone,
	}

	if err := repositories.NewSettingsRepository(c.DB).Save(settings); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Settings saved successfully",
		"data":    settings,
	})
}

// TestConnection pushes a dummy record through the real sync path. The form
// values come with the request so an unsaved phone or name can be tested.
func (c *SettingsController) TestConnection(ctx *fiber.Ctx) error {

	var req models.AppSettings
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	success := services.NewSyncService().TestWebhookConnection(req)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": success})
}
