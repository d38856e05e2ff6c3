package controllers

import (
	"scanstock-app/catalog"
	"scanstock-app/config"
	"scanstock-app/models"
	"scanstock-app/repositories"
	"scanstock-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(DB *gorm.DB) *ProductController {
	return &ProductController{DB: DB}
}

// GetProductByCode is the lookup-only path used when the detail view is
// re-opened without a fresh scan.
func (c *ProductController) GetProductByCode(ctx *fiber.Ctx) error {
	code := ctx.Params("code")

	if code == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid code"})
	}

	product, found := catalog.FindProduct(code)
	if !found {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Product not found: " + code,
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"product": product,
			"status":  models.GetStockStatus(product.Stock),
		},
	})
}

// AdjustStock applies a session-local delta to a catalog copy. The catalog
// itself is never written back; the adjusted figure lives only in the detail
// view that asked for it.
func (c *ProductController) AdjustStock(ctx *fiber.Ctx) error {

	var req struct {
		Code  string `json:"code"`
		Delta int    `json:"delta"`
	}

	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Code == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Code is required"})
	}

	product, found := catalog.FindProduct(req.Code)
	if !found {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Product not found: " + req.Code,
		})
	}

	product.Stock += req.Delta
	if product.Stock < 0 {
		product.Stock = 0
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"product": product,
			"status":  models.GetStockStatus(product.Stock),
		},
	})
}

// Alert composes the manager notification for a product, at the stock level
// the detail view currently shows. Returns the wa.me deep link; when the
// station has SMTP configured a copy also goes out by mail, best-effort.
func (c *ProductController) Alert(ctx *fiber.Ctx) error {

	var req struct {
		Code  string `json:"code"`
		Stock *int   `json:"stock"`
	}

	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Code == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Code is required"})
	}

	product, found := catalog.FindProduct(req.Code)
	if !found {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Product not found: " + req.Code,
		})
	}

	if req.Stock != nil {
		product.Stock = *req.Stock
		if product.Stock < 0 {
			product.Stock = 0
		}
	}

	settings, err := repositories.NewSettingsRepository(c.DB).Load()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	message := services.ComposeAlertMessage(product, settings)
	link := services.GenerateWhatsAppLink(product, settings)

	emailSent := false
	if config.SMTPHost != "" {
		emailSent = services.SendAlertEmail(product, message) == nil
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"severity":   services.AlertSeverity(product),
			"message":    message,
			"link":       link,
			"email_sent": emailSent,
		},
	})
}
